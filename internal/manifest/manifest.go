// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest keeps an optional SQLite ledger of batch runs: one
// row per job with its terminal status. The ledger is advisory — it is
// never on the critical path, and a failed insert only costs a log line.
package manifest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	indexDir = "index"
	dbFile   = "extract.db"
)

// Store manages the run ledger database.
type Store struct {
	db    *sql.DB
	runID string
}

// JobRow is one recorded job outcome.
type JobRow struct {
	RunID      string
	SourceFile string
	Status     string
	Method     string
	Message    string
	DurationMS int64
}

// Open opens or creates the ledger database at dir/index/extract.db and
// starts a new run identified by a fresh UUID.
func Open(dir string) (*Store, error) {
	dbDir := filepath.Join(dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, runID: uuid.NewString()}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// RunID returns the identifier of the current run.
func (s *Store) RunID() string {
	return s.runID
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS jobs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			source_file TEXT NOT NULL,
			status      TEXT NOT NULL,
			method      TEXT NOT NULL DEFAULT '',
			message     TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_jobs_run ON jobs(run_id);
		CREATE INDEX IF NOT EXISTS idx_jobs_source ON jobs(source_file);
	`)
	return err
}

// RecordJob appends one job outcome to the ledger under the current run.
func (s *Store) RecordJob(sourceFile, status, method, message string, duration time.Duration) error {
	_, err := s.db.Exec(
		`INSERT INTO jobs (run_id, source_file, status, method, message, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.runID, sourceFile, status, method, message, duration.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording job %s: %w", sourceFile, err)
	}
	return nil
}

// RunSummary returns the status counts for a run, keyed by status.
func (s *Store) RunSummary(runID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT status, COUNT(*) FROM jobs WHERE run_id = ? GROUP BY status`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", runID, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// Jobs returns the recorded rows for a run in insertion order.
func (s *Store) Jobs(runID string) ([]JobRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, source_file, status, method, message, duration_ms
		 FROM jobs WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []JobRow
	for rows.Next() {
		var r JobRow
		if err := rows.Scan(&r.RunID, &r.SourceFile, &r.Status, &r.Method, &r.Message, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
