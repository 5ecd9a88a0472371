package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	benchErrors "sumbench/internal/errors"
	"sumbench/internal/stats"
	"sumbench/internal/sum"
	"sumbench/internal/timing"
)

// Observer is notified after every timed trial.
type Observer interface {
	ObserveTrial(strategy string, trial int, ms int64, result int64)
}

// Driver times each strategy for a fixed number of trials.
type Driver struct {
	Size       int32
	Trials     int
	Strategies []sum.Strategy
	Observer   Observer
	Logger     *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(d *Driver) { d.Observer = o }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.Logger = l }
}

// WithStrategies replaces the default strategies.
func WithStrategies(s ...sum.Strategy) Option {
	return func(d *Driver) { d.Strategies = s }
}

// NewDriver returns a Driver with the compiled-in size and trial count.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		Size:       Size,
		Trials:     Trials,
		Strategies: sum.Default(),
		Logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes every trial sequentially. Within a trial the strategies run in
// order, each exactly once. Cancellation is only observed between trials.
func (d *Driver) Run(ctx context.Context) (*Run, error) {
	if len(d.Strategies) == 0 {
		return nil, fmt.Errorf("no strategies configured")
	}
	if d.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", d.Trials)
	}

	run := &Run{
		Timestamp: time.Now(),
		Size:      d.Size,
		Trials:    d.Trials,
		Results:   make([]Result, len(d.Strategies)),
	}
	for i, s := range d.Strategies {
		run.Results[i] = Result{
			Name:    s.Name,
			Label:   s.Label,
			Samples:        make([]int64, 0, d.Trials),
			PreciseSamples: make([]float64, 0, d.Trials),
		}
	}

	want := sum.Expected(d.Size)
	d.Logger.Debug("starting benchmark", "size", d.Size, "trials", d.Trials, "strategies", len(d.Strategies))

	for trial := 0; trial < d.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("benchmark interrupted after %d trials: %w", trial, err)
		}

		for i, s := range d.Strategies {
			got, elapsed := timing.Time1(s.Fn, d.Size)
			ms := elapsed.Milliseconds()

			res := &run.Results[i]
			res.Samples = append(res.Samples, ms)
			res.PreciseSamples = append(res.PreciseSamples, timing.Millis(elapsed))
			res.Sum = got

			if got != want {
				run.Mismatches = append(run.Mismatches, &benchErrors.MismatchError{
					Strategy: s.Name,
					Trial:    trial,
					Got:      got,
					Want:     want,
				})
			}
			if d.Observer != nil {
				d.Observer.ObserveTrial(s.Name, trial, ms, got)
			}
			d.Logger.Debug("trial complete", "strategy", s.Name, "trial", trial, "ms", ms)
		}
	}

	for i := range run.Results {
		summary, err := stats.Reduce(run.Results[i].Samples)
		if err != nil {
			return nil, fmt.Errorf("failed to reduce %s samples: %w", run.Results[i].Name, err)
		}
		run.Results[i].Summary = summary

		precise, err := stats.ReducePrecise(run.Results[i].PreciseSamples)
		if err != nil {
			return nil, fmt.Errorf("failed to reduce %s samples: %w", run.Results[i].Name, err)
		}
		run.Results[i].Precise = precise
	}

	if len(run.Mismatches) > 0 {
		d.Logger.Warn("strategy results disagree with closed form", "mismatches", len(run.Mismatches), "want", want)
	}

	return run, nil
}
