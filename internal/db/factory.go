package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sumbench/internal/benchmark"
)

const (
	DefaultJSONPath   = ".sumbench/history.json"
	DefaultSQLitePath = ".sumbench/history.db"
)

// StoreConfig holds configuration for the history backend
type StoreConfig struct {
	Type             string // "json", "sqlite" or "postgres"
	ConnectionString string // File path for JSON/SQLite, DSN for Postgres
}

// NewStore creates a new benchmark.Store based on the provided configuration
func NewStore(config StoreConfig) (benchmark.Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		store, err := NewPostgresStore(config.ConnectionString)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "sqlite":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultSQLitePath
		}
		if err := ensureDir(config.ConnectionString); err != nil {
			return nil, err
		}
		store, err := NewSQLiteStore(config.ConnectionString)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "json", "":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultJSONPath
		}
		store, err := benchmark.NewFileStore(config.ConnectionString)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
