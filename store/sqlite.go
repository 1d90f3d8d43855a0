package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mctscore/uctsearch-go/tree"
)

// SQLiteStore persists tree statistics snapshots to a single SQLite
// file, in WAL mode so a monitoring process can read snapshots while
// the search itself keeps writing new ones.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) a SQLite-backed Store
// at path. Use ":memory:" for an ephemeral in-process database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS tree_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			step INTEGER NOT NULL,
			stats TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(run_id, step)
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: create tree_snapshots: %w", err)
	}
	_, err := s.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_snapshots_run_id ON tree_snapshots(run_id)")
	if err != nil {
		return fmt.Errorf("store: create index: %w", err)
	}
	return nil
}

// SaveSnapshot implements Store.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, runID string, step int, stats []tree.EdgeStat) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("store: marshal stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tree_snapshots (run_id, step, stats) VALUES (?, ?, ?)
		 ON CONFLICT(run_id, step) DO UPDATE SET stats = excluded.stats`,
		runID, step, string(data))
	if err != nil {
		return fmt.Errorf("store: insert snapshot: %w", err)
	}
	return nil
}

// LoadLatest implements Store.
func (s *SQLiteStore) LoadLatest(ctx context.Context, runID string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT step, stats, created_at FROM tree_snapshots
		 WHERE run_id = ? ORDER BY step DESC LIMIT 1`, runID)

	var step int
	var data string
	var createdAt time.Time
	if err := row.Scan(&step, &data, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("store: load snapshot: %w", err)
	}

	var stats []tree.EdgeStat
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return Snapshot{}, fmt.Errorf("store: unmarshal stats: %w", err)
	}
	return Snapshot{RunID: runID, Step: step, Stats: stats, CreatedAt: createdAt}, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }
