package db

import (
	"database/sql"
	"fmt"

	"sumbench/internal/benchmark"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements benchmark.Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at INTEGER NOT NULL,
			git_commit TEXT NOT NULL DEFAULT '',
			payload BLOB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_recorded ON runs(recorded_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save appends a run
func (s *SQLiteStore) Save(run benchmark.Run) error {
	payload, err := encodeRun(run)
	if err != nil {
		return err
	}
	query := `INSERT INTO runs (recorded_at, git_commit, payload) VALUES (?, ?, ?)`
	_, err = s.db.Exec(query, run.Timestamp.UnixNano(), run.Commit, payload)
	return err
}

// LoadAll returns every run, oldest first
func (s *SQLiteStore) LoadAll() ([]benchmark.Run, error) {
	rows, err := s.db.Query(`SELECT payload FROM runs ORDER BY recorded_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// LoadLatest returns the most recent run, or nil if there is none
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT payload FROM runs ORDER BY recorded_at DESC, id DESC LIMIT 1`)
	return scanLatest(row)
}
