package telemetry

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sumbench/internal/sum"
)

// Metrics records per-trial benchmark observations.
type Metrics struct {
	TrialDuration *prometheus.HistogramVec
	TrialsTotal   *prometheus.CounterVec
	Mismatches    *prometheus.CounterVec
	LastSum       *prometheus.GaugeVec

	size     int32
	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg. size is the
// input length the observed strategies are run with.
func NewMetrics(reg *prometheus.Registry, size int32) *Metrics {
	m := &Metrics{size: size, gatherer: reg}

	m.TrialDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sumbench_trial_duration_ms",
			Help:    "Wall-clock duration of a single trial in milliseconds",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"strategy"},
	)

	m.TrialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sumbench_trials_total",
			Help: "Total number of timed trials",
		},
		[]string{"strategy"},
	)

	m.Mismatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sumbench_sum_mismatches_total",
			Help: "Trials whose sum disagreed with the closed form",
		},
		[]string{"strategy"},
	)

	m.LastSum = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sumbench_last_sum",
			Help: "Sum returned by the most recent trial",
		},
		[]string{"strategy"},
	)

	reg.MustRegister(
		m.TrialDuration,
		m.TrialsTotal,
		m.Mismatches,
		m.LastSum,
	)

	return m
}

// ObserveTrial implements benchmark.Observer.
func (m *Metrics) ObserveTrial(strategy string, trial int, ms int64, result int64) {
	m.TrialDuration.WithLabelValues(strategy).Observe(float64(ms))
	m.TrialsTotal.WithLabelValues(strategy).Inc()
	m.LastSum.WithLabelValues(strategy).Set(float64(result))
	if result != sum.Expected(m.size) {
		m.Mismatches.WithLabelValues(strategy).Inc()
	}
}

// WriteTextfile dumps the registered metrics in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

var (
	metricsMu      sync.Mutex
	metricsRunning bool
)

// StartMetricsServer starts a HTTP server exposing g on /metrics. Only the
// first call per process starts a server; later calls return nil.
func StartMetricsServer(port int, g prometheus.Gatherer) error {
	metricsMu.Lock()
	if metricsRunning {
		metricsMu.Unlock()
		return nil
	}
	metricsRunning = true
	metricsMu.Unlock()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", port)
	LogInfo("Starting metrics server", "addr", addr)
	err := http.ListenAndServe(addr, mux)

	metricsMu.Lock()
	metricsRunning = false
	metricsMu.Unlock()
	return err
}
