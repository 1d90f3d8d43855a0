package emit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// LogEmitter writes structured event output to a writer, in either
// human-readable text or JSON-lines form.
//
// Example text output:
//
//	[rollin_done] worker=0 rollout=0 edge=2 depth=3
//
// Example JSON output:
//
//	{"WorkerID":0,"Rollout":0,"EdgeID":2,"Msg":"rollin_done","Meta":{"depth":3}}
type LogEmitter struct {
	w        io.Writer
	jsonMode bool
}

// NewLogEmitter creates a LogEmitter. A nil writer defaults to os.Stdout.
func NewLogEmitter(w io.Writer, jsonMode bool) *LogEmitter {
	if w == nil {
		w = os.Stdout
	}
	return &LogEmitter{w: w, jsonMode: jsonMode}
}

// Emit implements Emitter.
func (l *LogEmitter) Emit(e Event) {
	if l.jsonMode {
		_ = json.NewEncoder(l.w).Encode(e)
		return
	}
	fmt.Fprintf(l.w, "[%s] worker=%d rollout=%d edge=%d", e.Msg, e.WorkerID, e.Rollout, e.EdgeID)
	if len(e.Meta) > 0 {
		keys := make([]string, 0, len(e.Meta))
		for k := range e.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(l.w, " %s=%v", k, e.Meta[k])
		}
	}
	fmt.Fprintln(l.w)
}

// EmitBatch implements Emitter.
func (l *LogEmitter) EmitBatch(_ context.Context, events []Event) error {
	for _, e := range events {
		l.Emit(e)
	}
	return nil
}

// Flush implements Emitter; writes are unbuffered.
func (l *LogEmitter) Flush(context.Context) error { return nil }
