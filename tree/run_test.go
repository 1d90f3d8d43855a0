package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/evaluator"
)

// errStopAfterN is a sentinel RunWorkers uses to unwind once a fixed
// rollout budget is spent, since the core itself doesn't arbitrate
// when a search stops (spec.md §1 Non-goals).
var errStopAfterN = errors.New("tree: rollout budget exhausted")

// TestRunWorkersConcurrentInvariants drives several workers against a
// shared Tree concurrently, each paired with a Random evaluator over
// an in-process channel.Mem, and checks P1 (visits >= pendingUpdates
// >= 0 for every edge) and P2 (every traversed edge's pendingUpdates
// settles at 0 once all rollouts are quiescent) hold under real
// contention. Run with -race to catch any lock-free discipline
// violations.
func TestRunWorkersConcurrentInvariants(t *testing.T) {
	const numWorkers = 8
	const rolloutsPerWorker = 100

	tr := New(6)
	workers := make([]*Worker, numWorkers)
	evalDone := make(chan error, numWorkers)

	for i := 0; i < numWorkers; i++ {
		a, b := channel.NewMemPair(4)
		workers[i] = NewWorker(i, tr, a, WithExplorationConstant(1.0), WithSeed(int64(i)))
		ev := evaluator.NewRandom([]int{1, 2, 3, 4, 5, 6, 7, 8}, 4, 100, int64(i))
		go func() { evalDone <- ev.Run(b) }()
	}

	counts := make([]int, numWorkers)
	err := RunWorkers(context.Background(), workers, func(_ context.Context, w *Worker) error {
		if err := w.Rollout(); err != nil {
			return err
		}
		counts[w.ID()]++
		if counts[w.ID()] >= rolloutsPerWorker {
			return errStopAfterN
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopAfterN) {
		t.Fatalf("RunWorkers() error = %v", err)
	}

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			t.Fatalf("Stop() error = %v", err)
		}
	}
	for i := 0; i < numWorkers; i++ {
		if err := <-evalDone; err != nil {
			t.Fatalf("evaluator %d Run() error = %v", i, err)
		}
	}

	for _, s := range Snapshot(tr.Root(), -1) {
		if s.Visits < s.PendingUpdates {
			t.Fatalf("edge %v: visits %d < pendingUpdates %d, violates P1", s.Path, s.Visits, s.PendingUpdates)
		}
		if s.PendingUpdates < 0 {
			t.Fatalf("edge %v: pendingUpdates %d < 0, violates P1", s.Path, s.PendingUpdates)
		}
		if s.PendingUpdates != 0 {
			t.Fatalf("edge %v: pendingUpdates %d != 0 after quiescence, violates P2", s.Path, s.PendingUpdates)
		}
	}
}
