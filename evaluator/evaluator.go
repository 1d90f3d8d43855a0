// Package evaluator provides reference implementations of the
// external-solver side of the rollout protocol: test doubles and demo
// evaluators that a tree.Worker can drive over a channel.Chan, so the
// core is runnable end-to-end without a real combinatorial solver
// attached. None of these implementations are part of the search
// algorithm itself.
package evaluator

import "github.com/mctscore/uctsearch-go/channel"

// Evaluator plays the solver side of the wire protocol: it receives
// the tree.Worker's protocol messages and variable writes, and answers
// with branching decisions and a terminal score.
//
// Run blocks until it reads MsgStop (returning nil), ch is closed, or
// a protocol error occurs; it is
// meant to be started in its own goroutine, one per paired Worker.
type Evaluator interface {
	Run(ch channel.Chan) error
}
