package tree

import "math"

// Select picks the next edge to descend from a, using a UCT variant
// whose reward term is normalized against the locally-worst sibling
// score instead of a global min/max. It returns nil if a has not been
// expanded yet (no Node to select among) or has no outgoing edges.
//
// Select records that a has been visited, and that one more
// backpropagation is now pending on it, before it even looks at a's
// children: every worker that reaches a node, successful or not,
// counts toward that node's visit total, and Backprop is guaranteed a
// matching pendingUpdates decrement later in the same rollout.
func Select(a *Edge, c float64) *Edge {
	a.visits.Add(1)
	a.pendingUpdates.Add(1)

	s := a.state.Load()
	if s == nil || len(s.actions) == 0 {
		return nil
	}

	parentVisits := float64(a.visits.Load())
	wid := s.WorstScoreID()
	var worst float64
	if wid != noWorstScore {
		worst = s.actions[wid].Score()
	}

	best := 0
	bestUCB1 := 0.0
	for i := range s.actions {
		child := &s.actions[i]
		v := child.visits.Load()
		if v == 0 {
			// Force exploration of any never-visited child before
			// weighing scored ones against each other.
			return child
		}

		sc := child.Score()
		reward := 0.0
		if wid != noWorstScore && worst != 0 && worst != sc {
			reward = (worst - sc) / worst
			if reward < 0 {
				reward = 0
			}
		}
		ucb1 := reward + c*math.Sqrt(math.Log(parentVisits)/float64(v))

		if ucb1 >= bestUCB1 {
			best = i
			bestUCB1 = ucb1
		}
	}
	return &s.actions[best]
}
