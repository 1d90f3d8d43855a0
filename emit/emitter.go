package emit

import "context"

// Emitter receives observability events from workers.
//
// Implementations should be:
//   - Non-blocking: never slow down a rollout.
//   - Thread-safe: called concurrently by every worker.
//   - Resilient: never panic, never fail a rollout.
type Emitter interface {
	// Emit sends a single event to the configured backend.
	Emit(event Event)

	// EmitBatch sends multiple events in one operation. Implementations
	// should process events in order and return an error only for
	// catastrophic, non-event-specific failures.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush ensures all buffered events are delivered. Safe to call
	// multiple times.
	Flush(ctx context.Context) error
}
