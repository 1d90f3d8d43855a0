// Package emit provides event emission and observability for the
// search tree's workers.
package emit

// Event is one observability event emitted by a worker during a
// rollout.
//
// Events provide insight into rollout behavior:
//   - Protocol phase transitions (start, rollin, expand, score, backprop)
//   - Depth reached and edges touched
//   - Errors surfaced from the channel or evaluator
//
// Events are emitted to an Emitter which can log them, forward them to
// OpenTelemetry, or buffer them for test inspection.
type Event struct {
	// WorkerID identifies which worker emitted this event.
	WorkerID int

	// Rollout is a per-worker rollout counter. Zero if the event is not
	// scoped to a single rollout. tree.Worker does not fill it in, so
	// every event it emits carries zero here.
	Rollout int

	// EdgeID is the local action index of the edge this event concerns,
	// or -1 if not applicable.
	EdgeID int

	// Msg is a short, machine-stable event name, e.g. "rollout_start",
	// "rollin_done", "expand", "score", "backprop_done", "worker_stop".
	Msg string

	// Meta carries event-specific structured data, e.g. "depth",
	// "n_actions", "score".
	Meta map[string]any
}
