package cmdutils

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/viper"

	"sumbench/internal/benchmark"
	"sumbench/internal/db"
)

// GetHistoryStore opens the history backend selected by configuration.
var GetHistoryStore = func() (benchmark.Store, error) {
	backend := viper.GetString("history.backend")

	conn := viper.GetString("history.path")
	if strings.EqualFold(backend, "postgres") {
		conn = viper.GetString("history.dsn")
		if conn == "" {
			conn = os.Getenv("DATABASE_URL")
		}
	} else if strings.EqualFold(backend, "sqlite") && conn == db.DefaultJSONPath {
		conn = db.DefaultSQLitePath
	}

	store, err := db.NewStore(db.StoreConfig{Type: backend, ConnectionString: conn})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s history: %w", backend, err)
	}
	return store, nil
}

// execCommand allows mocking in tests.
var execCommand = exec.Command

// GetGitCommit returns the short hash of HEAD in the working directory.
var GetGitCommit = func() (string, error) {
	out, err := execCommand("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
