package emit

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelEmitter records each event as a short-lived span, letting a trace
// backend correlate rollout activity across workers.
type OTelEmitter struct {
	tracer trace.Tracer
}

// NewOTelEmitter wraps tracer for use as an Emitter.
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

// Emit implements Emitter.
func (o *OTelEmitter) Emit(e Event) {
	_, span := o.tracer.Start(context.Background(), e.Msg)
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.Int("worker_id", e.WorkerID),
		attribute.Int("rollout", e.Rollout),
		attribute.Int("edge_id", e.EdgeID),
	}
	for k, v := range e.Meta {
		attrs = append(attrs, attribute.String(k, fmt.Sprintf("%v", v)))
	}
	span.SetAttributes(attrs...)
	span.SetStatus(codes.Ok, "")
}

// EmitBatch implements Emitter.
func (o *OTelEmitter) EmitBatch(_ context.Context, events []Event) error {
	for _, e := range events {
		o.Emit(e)
	}
	return nil
}

// Flush implements Emitter; spans are exported individually as they end.
func (o *OTelEmitter) Flush(context.Context) error { return nil }
