package tree

import (
	"math/rand"

	"github.com/mctscore/uctsearch-go/channel"
)

// Expand allocates a Node for edge a's far side from pool, reads
// nActions candidate variable IDs from in, shuffles their order with
// rng, and publishes the new Node onto a.
//
// Two workers can reach an unexpanded edge at the same time; both are
// allowed to build a Node and both call a.state.Swap. The last Swap
// wins; the Node it replaces is no longer reachable from the tree but
// stays in its Pool's block until the Pool itself is discarded. The
// caller whose Swap replaced an existing Node gets raced=true, so
// callers can count the occurrence without treating it as an error.
func Expand(pool *Pool, a *Edge, nActions int, in channel.Reader, rng *rand.Rand) (raced bool, err error) {
	n := pool.Alloc(a, nActions)

	for i := 0; i < nActions; i++ {
		v, err := in.Read()
		if err != nil {
			return false, err
		}
		n.actionVars[i] = v
	}
	rng.Shuffle(nActions, func(i, j int) {
		n.actionVars[i], n.actionVars[j] = n.actionVars[j], n.actionVars[i]
	})

	prev := a.state.Swap(n)
	return prev != nil, nil
}
