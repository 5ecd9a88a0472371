package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sumbench/internal/benchmark"
	"sumbench/internal/stats"
	"sumbench/internal/sum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Empty(t *testing.T) {
	setupCLI(t)
	store := new(mockStore)
	store.On("LoadAll").Return([]benchmark.Run{}, nil)
	store.On("Close").Return(nil)
	useStore(t, store)

	stdout, _, err := executeCommand("history")
	require.NoError(t, err)
	assert.Equal(t, "No saved runs.\n", stdout)
}

func TestHistoryCmd_NewestFirstWithLimit(t *testing.T) {
	setupCLI(t)
	now := time.Now()
	runs := []benchmark.Run{
		{Timestamp: now.Add(-3 * time.Hour), Commit: "aaa", Results: []benchmark.Result{{Name: sum.LoopName, Summary: stats.Summary{Avg: 11}}}},
		{Timestamp: now.Add(-2 * time.Hour), Commit: "bbb", Results: []benchmark.Result{{Name: sum.LoopName, Summary: stats.Summary{Avg: 22}}}},
		{Timestamp: now.Add(-1 * time.Hour), Results: []benchmark.Result{
			{Name: sum.LoopName, Summary: stats.Summary{Avg: 33}},
			{Name: sum.AccumulateName, Summary: stats.Summary{Avg: 44}},
		}},
	}
	store := new(mockStore)
	store.On("LoadAll").Return(runs, nil)
	store.On("Close").Return(nil)
	useStore(t, store)

	stdout, _, err := executeCommand("history", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "LOOP AVG MS")
	assert.Contains(t, lines[0], "ACCUMULATE AVG MS")
	assert.Contains(t, lines[1], "1h ago")
	assert.Regexp(t, `1h ago\s+-\s+33\s+44`, lines[1])
	assert.Regexp(t, `2h ago\s+bbb\s+22\s+-`, lines[2])
	store.AssertExpectations(t)
}

func TestHistoryCmd_LoadError(t *testing.T) {
	setupCLI(t)
	store := new(mockStore)
	store.On("LoadAll").Return(nil, errors.New("disk on fire"))
	store.On("Close").Return(nil)
	useStore(t, store)

	_, _, err := executeCommand("history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestHistoryCmd_NegativeLimit(t *testing.T) {
	setupCLI(t)

	_, _, err := executeCommand("history", "--limit", "-1")
	assert.EqualError(t, err, "limit must not be negative, got -1")
}

func TestSaveThenHistory_SQLite(t *testing.T) {
	setupCLI(t)
	t.Setenv("SUMBENCH_HISTORY_BACKEND", "sqlite")
	t.Setenv("SUMBENCH_HISTORY_PATH", filepath.Join(t.TempDir(), "runs.db"))

	for i := 0; i < 2; i++ {
		_, _, err := executeCommand("run", "--save")
		require.NoError(t, err)
	}

	stdout, _, err := executeCommand("history")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "abc1234")
}

func TestHistoryCmd_IgnoresReportFormat(t *testing.T) {
	setupCLI(t)
	t.Setenv("SUMBENCH_FORMAT", "bogus")
	store := new(mockStore)
	store.On("LoadAll").Return([]benchmark.Run{}, nil)
	store.On("Close").Return(nil)
	useStore(t, store)

	stdout, _, err := executeCommand("history")
	require.NoError(t, err)
	assert.Equal(t, "No saved runs.\n", stdout)
}

func TestHistoryCmd_InvalidBackend(t *testing.T) {
	setupCLI(t)
	t.Setenv("SUMBENCH_HISTORY_BACKEND", "redis")

	_, _, err := executeCommand("history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.backend must be one of")
}
