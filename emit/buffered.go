package emit

import (
	"context"
	"sync"
)

// BufferedEmitter collects events in memory. Useful for tests and for
// inspecting what a rollout emitted without wiring a real backend.
type BufferedEmitter struct {
	mu     sync.Mutex
	events []Event
}

// NewBufferedEmitter returns an empty BufferedEmitter.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{}
}

// Emit implements Emitter.
func (b *BufferedEmitter) Emit(e Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

// EmitBatch implements Emitter.
func (b *BufferedEmitter) EmitBatch(_ context.Context, events []Event) error {
	b.mu.Lock()
	b.events = append(b.events, events...)
	b.mu.Unlock()
	return nil
}

// Flush implements Emitter; buffering has nothing to flush.
func (b *BufferedEmitter) Flush(context.Context) error { return nil }

// Events returns a snapshot copy of everything buffered so far.
func (b *BufferedEmitter) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}
