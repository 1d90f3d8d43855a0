package tree

import "github.com/mctscore/uctsearch-go/emit"

type config struct {
	metrics   Metrics
	emitter   emit.Emitter
	poolBlock int
}

// Option configures a Tree at construction time.
type Option func(*config)

// WithMetrics sets the default Metrics sink new Workers inherit unless
// they override it with WithWorkerMetrics.
func WithMetrics(m Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithEmitter sets the default Emitter new Workers inherit unless they
// override it with WithWorkerEmitter.
func WithEmitter(e emit.Emitter) Option {
	return func(c *config) { c.emitter = e }
}

// WithPoolBlockSize sets the block size for Pools created by Workers
// that don't supply their own Pool via WithPool.
func WithPoolBlockSize(n int) Option {
	return func(c *config) { c.poolBlock = n }
}

type workerConfig struct {
	c       float64
	seed    int64
	metrics Metrics
	emitter emit.Emitter
	pool    *Pool
}

// WorkerOption configures a Worker at construction time.
type WorkerOption func(*workerConfig)

// WithExplorationConstant sets the UCT exploration constant c. Larger
// values favor exploring less-visited edges; smaller values favor
// exploiting high-reward ones.
func WithExplorationConstant(c float64) WorkerOption {
	return func(wc *workerConfig) { wc.c = c }
}

// WithSeed sets the worker's random source seed, used to shuffle the
// order in which newly expanded edges are explored.
func WithSeed(seed int64) WorkerOption {
	return func(wc *workerConfig) { wc.seed = seed }
}

// WithWorkerMetrics overrides the Tree's default Metrics for one
// Worker.
func WithWorkerMetrics(m Metrics) WorkerOption {
	return func(wc *workerConfig) { wc.metrics = m }
}

// WithWorkerEmitter overrides the Tree's default Emitter for one
// Worker.
func WithWorkerEmitter(e emit.Emitter) WorkerOption {
	return func(wc *workerConfig) { wc.emitter = e }
}

// WithPool supplies a Pool for the Worker to allocate expanded Nodes
// from. Workers sharing a Pool contend on its bump-allocation lock;
// giving each worker its own Pool (the default) avoids that
// contention at the cost of more total blocks.
func WithPool(p *Pool) WorkerOption {
	return func(wc *workerConfig) { wc.pool = p }
}
