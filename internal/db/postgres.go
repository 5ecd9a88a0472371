package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"sumbench/internal/benchmark"

	_ "github.com/lib/pq"
)

// PostgresStore implements benchmark.Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id SERIAL PRIMARY KEY,
			recorded_at BIGINT NOT NULL,
			git_commit TEXT NOT NULL DEFAULT '',
			payload JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_recorded ON runs(recorded_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	slog.Debug("postgres history schema ready")
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Save appends a run
func (s *PostgresStore) Save(run benchmark.Run) error {
	payload, err := encodeRun(run)
	if err != nil {
		return err
	}
	query := `INSERT INTO runs (recorded_at, git_commit, payload) VALUES ($1, $2, $3)`
	_, err = s.db.Exec(query, run.Timestamp.UnixNano(), run.Commit, payload)
	return err
}

// LoadAll returns every run, oldest first
func (s *PostgresStore) LoadAll() ([]benchmark.Run, error) {
	rows, err := s.db.Query(`SELECT payload FROM runs ORDER BY recorded_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// LoadLatest returns the most recent run, or nil if there is none
func (s *PostgresStore) LoadLatest() (*benchmark.Run, error) {
	row := s.db.QueryRow(`SELECT payload FROM runs ORDER BY recorded_at DESC, id DESC LIMIT 1`)
	return scanLatest(row)
}
