package evaluator

import (
	"fmt"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/tree"
)

// Expansion describes what a Mock evaluator answers with when a
// worker reaches an unexpanded leaf: the candidate variable IDs it
// offers as new actions, and the terminal score it reports for that
// rollout.
type Expansion struct {
	Vars  []int
	Score int
}

// Mock is a scripted Evaluator for deterministic tests: each
// MsgSwitchRollout it receives consumes the next Expansion from
// Script, in order, wrapping around once exhausted; the following
// MsgGetScore is answered with that Expansion's Score. A fixed Mock lets tests assert exact tree
// shape after a known number of rollouts.
type Mock struct {
	Script []Expansion
	calls  int
}

// Run implements Evaluator.
func (m *Mock) Run(ch channel.Chan) error {
	for {
		msg, err := ch.Read()
		if err != nil {
			return err
		}
		switch msg {
		case tree.MsgStart:
			// new rollout beginning; nothing to do until switch_rollout.
		case tree.MsgSwitchRollout:
			if len(m.Script) == 0 {
				return fmt.Errorf("evaluator: mock has an empty script")
			}
			exp := m.Script[m.calls%len(m.Script)]
			m.calls++
			if err := ch.Write(len(exp.Vars)); err != nil {
				return err
			}
			for _, v := range exp.Vars {
				if err := ch.Write(v); err != nil {
					return err
				}
			}
		case tree.MsgGetScore:
			exp := m.Script[(m.calls-1+len(m.Script))%len(m.Script)]
			if err := ch.Write(exp.Score); err != nil {
				return err
			}
		case tree.MsgStop:
			return nil
		default:
			// a branching variable ID written during rollin; a real
			// solver would apply it, the mock just ignores it.
		}
	}
}
