// Package llm provides an LLM-assisted reference Evaluator: instead of
// a real combinatorial solver, it asks a chat model to propose
// branching variables and a heuristic terminal score for a rollout.
// This is a demo/reference implementation only — a production solver
// integration is out of scope for the core.
package llm

import "context"

// ChatModel is the minimal surface this package needs from an LLM
// provider: one request/response round trip over a short prompt.
type ChatModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Message role names. No provider in this package uses them: every
// Complete call sends the prompt as a single user message.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
