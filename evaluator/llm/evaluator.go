package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/tree"
)

// Evaluator drives the rollout protocol by asking a ChatModel, on
// every rollout, which of Vars to offer as branching options (on
// MsgSwitchRollout) and, in a second request, what terminal score this
// rollout's path deserves (on MsgGetScore). It is a demonstration
// of wiring an LLM into the evaluator side of the protocol, not a
// substitute for a real solver's exact combinatorial reasoning.
type Evaluator struct {
	Model   ChatModel
	Vars    []int
	Timeout time.Duration
}

// NewEvaluator creates an Evaluator that proposes from vars using
// model, applying timeout to every Complete call.
func NewEvaluator(model ChatModel, vars []int, timeout time.Duration) *Evaluator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Evaluator{Model: model, Vars: vars, Timeout: timeout}
}

// Run implements evaluator.Evaluator.
func (e *Evaluator) Run(ch channel.Chan) error {
	var seen []int
	for {
		msg, err := ch.Read()
		if err != nil {
			return err
		}
		switch msg {
		case tree.MsgStart:
			seen = seen[:0]
		case tree.MsgSwitchRollout:
			proposedVars, err := e.proposeVars(seen)
			if err != nil {
				return fmt.Errorf("llm: propose vars: %w", err)
			}
			if err := ch.Write(len(proposedVars)); err != nil {
				return err
			}
			for _, v := range proposedVars {
				if err := ch.Write(v); err != nil {
					return err
				}
			}
		case tree.MsgGetScore:
			score, err := e.proposeScore(seen)
			if err != nil {
				return fmt.Errorf("llm: propose score: %w", err)
			}
			if err := ch.Write(score); err != nil {
				return err
			}
		case tree.MsgStop:
			return nil
		default:
			seen = append(seen, msg)
		}
	}
}

func (e *Evaluator) proposeVars(path []int) ([]int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Branching path so far: %v\nCandidate variables: %v\n"+
			"Reply with a single line: VARS: comma,separated,subset (possibly empty).",
		path, e.Vars)
	reply, err := e.Model.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseVars(reply), nil
}

func (e *Evaluator) proposeScore(path []int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Branching path so far: %v\nReply with a single line: SCORE: integer.", path)
	reply, err := e.Model.Complete(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseScore(reply), nil
}

func parseVars(reply string) []int {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "VARS:")
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return nil
		}
		var out []int
		for _, tok := range strings.Split(rest, ",") {
			if v, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
				out = append(out, v)
			}
		}
		return out
	}
	return nil
}

func parseScore(reply string) int {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "SCORE:")
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			return v
		}
	}
	return 0
}
