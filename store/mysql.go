package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/mctscore/uctsearch-go/tree"
)

// MySQLStore persists tree statistics snapshots to a MySQL/MariaDB
// database, for searches run across multiple machines where a single
// SQLite file isn't shareable.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore opens a MySQL-backed Store using dsn, in the
// go-sql-driver/mysql DSN format.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open mysql: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	s := &MySQLStore{db: db}
	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) createTables(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS tree_snapshots (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(191) NOT NULL,
			step INT NOT NULL,
			stats JSON NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_run_step (run_id, step),
			KEY idx_run_id (run_id)
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: create tree_snapshots: %w", err)
	}
	return nil
}

// SaveSnapshot implements Store.
func (s *MySQLStore) SaveSnapshot(ctx context.Context, runID string, step int, stats []tree.EdgeStat) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("store: marshal stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tree_snapshots (run_id, step, stats) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE stats = VALUES(stats)`,
		runID, step, string(data))
	if err != nil {
		return fmt.Errorf("store: insert snapshot: %w", err)
	}
	return nil
}

// LoadLatest implements Store.
func (s *MySQLStore) LoadLatest(ctx context.Context, runID string) (Snapshot, error) {
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
func (s *MySQLStore) Close() error { return s.db.Close() }
