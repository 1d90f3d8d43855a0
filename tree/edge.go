package tree

import (
	"math"
	"sync/atomic"
)

// Edge is one action out of a Node: the outgoing side of a branching
// decision. It owns the lock-free statistics accumulated across
// concurrent rollouts, plus an atomic pointer to the Node it leads to
// once some worker has expanded it.
//
// Edge never moves once allocated: the pool hands out stable
// addresses, so a *Edge held by one goroutine stays valid for the
// lifetime of the Tree.
type Edge struct {
	id        int
	prevState *Node

	state atomic.Pointer[Node]

	visits         atomic.Int64
	pendingUpdates atomic.Int64
	scoreBits      atomic.Uint64

	// Prior is a reserved placeholder for a per-edge bias term. It is
	// unused: Expand does not set it, Backprop does not update it, and
	// Select does not read it.
	Prior float64
}

// ID returns this edge's local action index within its parent Node.
// The root edge's ID is -1.
func (e *Edge) ID() int { return e.id }

// PrevState returns the Node this edge branches from, or nil for the
// root edge.
func (e *Edge) PrevState() *Node { return e.prevState }

// State returns the Node this edge currently leads to, or nil if no
// worker has expanded it yet.
func (e *Edge) State() *Node { return e.state.Load() }

// Visits returns the number of times this edge has been selected,
// including rollouts still in flight.
func (e *Edge) Visits() int64 { return e.visits.Load() }

// PendingUpdates returns the number of rollouts that have selected
// this edge but not yet backpropagated a score through it.
func (e *Edge) PendingUpdates() int64 { return e.pendingUpdates.Load() }

// Score returns the running mean of the terminal scores backpropagated
// through this edge. Reads race with concurrent backpropagation by design;
// atomic.Uint64 storage only guarantees the bits read were written by
// a single store, not that they reflect the latest one.
func (e *Edge) Score() float64 {
	return math.Float64frombits(e.scoreBits.Load())
}

func (e *Edge) setScore(v float64) {
	e.scoreBits.Store(math.Float64bits(v))
}
