package emit

import "context"

// NullEmitter discards every event. It is the default Emitter so the
// core never pays for observability it hasn't asked for.
type NullEmitter struct{}

// Null returns the shared no-op Emitter.
func Null() Emitter { return NullEmitter{} }

// Emit implements Emitter.
func (NullEmitter) Emit(Event) {}

// EmitBatch implements Emitter.
func (NullEmitter) EmitBatch(context.Context, []Event) error { return nil }

// Flush implements Emitter.
func (NullEmitter) Flush(context.Context) error { return nil }
