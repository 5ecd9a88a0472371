package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sumbench/internal/benchmark"
)

// Both SQL backends keep the full run as a JSON payload next to the columns
// used for ordering.

func encodeRun(run benchmark.Run) ([]byte, error) {
	payload, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run: %w", err)
	}
	return payload, nil
}

func scanRuns(rows *sql.Rows) ([]benchmark.Run, error) {
	defer rows.Close()

	runs := []benchmark.Run{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var run benchmark.Run
		if err := json.Unmarshal(payload, &run); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanLatest(row *sql.Row) (*benchmark.Run, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var run benchmark.Run
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}
