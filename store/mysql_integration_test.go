package store

import (
	"context"
	"os"
	"testing"

	"github.com/mctscore/uctsearch-go/tree"
)

// TestMySQLIntegration validates MySQLStore against a real MySQL/MariaDB
// database.
//
// Prerequisites:
//   - MySQL server running (local, Docker, or cloud).
//   - TEST_MYSQL_DSN environment variable set, in go-sql-driver/mysql
//     DSN format, e.g. "user:password@tcp(localhost:3306)/test_db".
//
// To run: TEST_MYSQL_DSN="..." go test -run TestMySQLIntegration ./store
func TestMySQLIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set, skipping MySQL integration test")
	}

	s, err := NewMySQLStore(dsn)
	if err != nil {
		t.Fatalf("NewMySQLStore() error = %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	runID := NewRunID()
	stats := []tree.EdgeStat{{Path: []int{-1}, Visits: 3, Score: 1.25}}

	if err := s.SaveSnapshot(ctx, runID, 1, stats); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
	got, err := s.LoadLatest(ctx, runID)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}
	if got.Step != 1 || len(got.Stats) != 1 || got.Stats[0].Visits != 3 {
		t.Fatalf("LoadLatest() = %+v, want step 1 visits 3", got)
	}
}
