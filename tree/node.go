package tree

import "sync/atomic"

// noWorstScore marks a Node whose worstScoreID has not yet been set by
// any backpropagation.
const noWorstScore = -1

// Node is a branching point in the search tree: a set of sibling
// actions (Edges) plus the solver-assigned variable each edge
// corresponds to. Nodes are allocated from a Pool and never freed
// individually; they live until the Tree itself is discarded.
type Node struct {
	prevAction *Edge

	actions    []Edge
	actionVars []int

	// worstScoreID caches the index, within actions, of the edge with
	// the highest Score seen so far (scores grow upward with cost, so
	// "worst" means numerically largest). Select uses it to locally
	// normalize reward instead of re-scanning every sibling. It starts
	// at noWorstScore and is updated by Backprop, racily, by design: a
	// stale value only biases exploration briefly, it never corrupts
	// tree structure.
	worstScoreID atomic.Int64
}

func (n *Node) init(prevAction *Edge, nActions int) {
	n.prevAction = prevAction
	n.actions = make([]Edge, nActions)
	n.actionVars = make([]int, nActions)
	n.worstScoreID.Store(noWorstScore)
	for i := range n.actions {
		n.actions[i].id = i
		n.actions[i].prevState = n
	}
}

// NActions returns the number of outgoing edges this node has.
func (n *Node) NActions() int { return len(n.actions) }

// Action returns the i'th outgoing edge.
func (n *Node) Action(i int) *Edge { return &n.actions[i] }

// ActionVar returns the solver variable ID associated with the i'th
// outgoing edge.
func (n *Node) ActionVar(i int) int { return n.actionVars[i] }

// PrevAction returns the edge this node was reached through. For the
// tree's root node this is the Tree's root edge.
func (n *Node) PrevAction() *Edge { return n.prevAction }

// WorstScoreID returns the index of the currently-worst-scoring
// outgoing edge, or noWorstScore if no edge has backpropagated a score
// yet.
func (n *Node) WorstScoreID() int { return int(n.worstScoreID.Load()) }
