package tree

import "github.com/mctscore/uctsearch-go/emit"

// Tree is the shared search tree every Worker descends, expands, and
// backpropagates into concurrently without taking a lock. Its root is
// an Edge with no parent Node, mirroring every other Edge in shape so
// Select and Backprop don't need a special case for it.
type Tree struct {
	root Edge

	maxDepth int

	defaultMetrics   Metrics
	defaultEmitter   emit.Emitter
	defaultPoolBlock int
}

// New creates a Tree whose rollin phase stops after maxDepth edges
// have been selected, or never stops early if maxDepth < 0.
func New(maxDepth int, opts ...Option) *Tree {
	cfg := config{
		metrics:   NullMetrics{},
		emitter:   emit.Null(),
		poolBlock: DefaultPoolBlockSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree{
		maxDepth:         maxDepth,
		defaultMetrics:   cfg.metrics,
		defaultEmitter:   cfg.emitter,
		defaultPoolBlock: cfg.poolBlock,
	}
	t.root.id = -1
	return t
}

// Root returns the tree's root edge. Its PrevState is nil and its
// State is nil until some worker expands it.
func (t *Tree) Root() *Edge { return &t.root }

// MaxDepth returns the configured rollin depth limit, or a negative
// number if rollin is unbounded.
func (t *Tree) MaxDepth() int { return t.maxDepth }
