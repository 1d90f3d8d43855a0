package evaluator

import (
	"math/rand"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/tree"
)

// Random is an Evaluator for stress and benchmark tests: it offers a
// random number of branching variables, drawn without repetition from
// a fixed pool, and reports a random terminal score every rollout. The
// bound on how many it offers is the same at every depth; it does not
// shrink as the search descends, so only the Tree's max depth keeps
// the tree finite.
type Random struct {
	Vars      []int
	MaxBranch int
	ScoreMax  int
	rng       *rand.Rand
}

// NewRandom creates a Random evaluator seeded from seed, offering up
// to maxBranch variables per expansion drawn from vars and scores in
// [0, scoreMax).
func NewRandom(vars []int, maxBranch, scoreMax int, seed int64) *Random {
	return &Random{
		Vars:      vars,
		MaxBranch: maxBranch,
		ScoreMax:  scoreMax,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Run implements Evaluator.
func (r *Random) Run(ch channel.Chan) error {
	for {
		msg, err := ch.Read()
		if err != nil {
			return err
		}
		switch msg {
		case tree.MsgStart:
		case tree.MsgSwitchRollout:
			n := 0
			if len(r.Vars) > 0 {
				n = r.rng.Intn(min(r.MaxBranch, len(r.Vars)) + 1)
			}
			if err := ch.Write(n); err != nil {
				return err
			}
			perm := r.rng.Perm(len(r.Vars))
			for i := 0; i < n; i++ {
				if err := ch.Write(r.Vars[perm[i]]); err != nil {
					return err
				}
			}
		case tree.MsgGetScore:
			score := 0
			if r.ScoreMax > 0 {
				score = r.rng.Intn(r.ScoreMax)
			}
			if err := ch.Write(score); err != nil {
				return err
			}
		case tree.MsgStop:
			return nil
		default:
		}
	}
}
