// Package store persists periodic tree statistics snapshots, keyed by
// a run ID, for monitoring and post-hoc analysis of a search in
// progress. It never stores the combinatorial solution the external
// solver arrives at; that ranking and persistence is explicitly out of
// scope for the core.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mctscore/uctsearch-go/tree"
)

// ErrNotFound is returned when a requested run ID has no saved
// snapshot.
var ErrNotFound = errors.New("store: not found")

// NewRunID generates a fresh run identifier for a search, suitable for
// keying snapshots saved across the lifetime of a Tree. Callers that
// need reproducible run IDs (e.g. replaying a recorded search) should
// supply their own string instead of calling this.
func NewRunID() string {
	return uuid.NewString()
}

// Snapshot is one saved observation of a run's tree statistics.
type Snapshot struct {
	RunID     string
	Step      int
	Stats     []tree.EdgeStat
	CreatedAt time.Time
}

// Store persists and retrieves tree statistics snapshots.
//
// Implementations can use in-memory maps (for tests, see memory.go)
// or a relational database (sqlite.go, mysql.go) for snapshots that
// should survive a process restart.
type Store interface {
	// SaveSnapshot saves a snapshot for runID at step. Saving the same
	// step again replaces the snapshot stored for it.
	SaveSnapshot(ctx context.Context, runID string, step int, stats []tree.EdgeStat) error

	// LoadLatest returns the snapshot with the highest step saved for
	// runID.
	LoadLatest(ctx context.Context, runID string) (Snapshot, error)

	// Close releases any resources the store holds open.
	Close() error
}
