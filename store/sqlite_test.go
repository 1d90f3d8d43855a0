package store

import (
	"context"
	"testing"

	"github.com/mctscore/uctsearch-go/tree"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreSaveAndLoadLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	runID := NewRunID()

	stats := []tree.EdgeStat{{Path: []int{-1}, Visits: 5, Score: 2.5, NActions: 3}}
	if err := s.SaveSnapshot(ctx, runID, 1, stats); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
	if err := s.SaveSnapshot(ctx, runID, 2, stats); err != nil {
		t.Fatalf("SaveSnapshot() #2 error = %v", err)
	}

	got, err := s.LoadLatest(ctx, runID)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}
	if got.Step != 2 {
		t.Fatalf("LoadLatest().Step = %d, want 2", got.Step)
	}
	if len(got.Stats) != 1 || got.Stats[0].Visits != 5 {
		t.Fatalf("LoadLatest().Stats = %+v, want visits 5", got.Stats)
	}
}

func TestSQLiteStoreLoadLatestNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	_, err := s.LoadLatest(context.Background(), "unknown-run")
	if err != ErrNotFound {
		t.Fatalf("LoadLatest() error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStoreUpsertOnSameStep(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	runID := NewRunID()

	if err := s.SaveSnapshot(ctx, runID, 1, []tree.EdgeStat{{Visits: 1}}); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
	if err := s.SaveSnapshot(ctx, runID, 1, []tree.EdgeStat{{Visits: 9}}); err != nil {
		t.Fatalf("SaveSnapshot() (same step) error = %v", err)
	}

	got, err := s.LoadLatest(ctx, runID)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}
	if len(got.Stats) != 1 || got.Stats[0].Visits != 9 {
		t.Fatalf("LoadLatest().Stats = %+v, want the upserted visits=9 row", got.Stats)
	}
}
