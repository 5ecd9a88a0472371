package benchmark

import (
	"time"

	benchErrors "sumbench/internal/errors"
	"sumbench/internal/stats"
)

const (
	// Size is the number of integers each strategy sums.
	Size = 10_000_000
	// Trials is the number of timed executions per strategy.
	Trials = 10
)

// Result holds the per-trial durations of one strategy and their summary.
// Samples are whole milliseconds; PreciseSamples keep the fraction.
type Result struct {
	Name           string        `json:"name" yaml:"name"`
	Label          string        `json:"label" yaml:"label"`
	Samples        []int64       `json:"samples_ms" yaml:"samples_ms"`
	PreciseSamples []float64     `json:"precise_samples_ms,omitempty" yaml:"precise_samples_ms,omitempty"`
	Summary        stats.Summary `json:"summary" yaml:"summary"`
	Precise        stats.Precise `json:"precise" yaml:"precise"`
	Sum            int64         `json:"sum" yaml:"sum"`
}

// Run represents a collection of benchmark results from a single execution.
type Run struct {
	Timestamp  time.Time              `json:"timestamp" yaml:"timestamp"`
	Commit     string                 `json:"commit,omitempty" yaml:"commit,omitempty"` // Git commit hash
	Size       int32                  `json:"size" yaml:"size"`
	Trials     int                    `json:"trials" yaml:"trials"`
	Results    []Result               `json:"results" yaml:"results"`
	Mismatches benchErrors.Mismatches `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// Result returns the result for the named strategy.
func (r *Run) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Verify returns the collected sum mismatches, or nil if every trial matched
// the closed form.
func (r *Run) Verify() error {
	if len(r.Mismatches) == 0 {
		return nil
	}
	return r.Mismatches
}
