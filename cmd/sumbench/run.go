package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sumbench/internal/benchmark"
	"sumbench/internal/cmdutils"
	"sumbench/internal/config"
	"sumbench/internal/report"
	"sumbench/internal/telemetry"
)

// newDriverFunc allows shrinking the workload in tests.
var newDriverFunc = func(opts ...benchmark.Option) *benchmark.Driver {
	return benchmark.NewDriver(opts...)
}

var runFlagKeys = map[string]string{
	"format":         "format",
	"save":           "save",
	"compare":        "compare",
	"threshold":      "threshold",
	"fail-threshold": "fail_threshold",
	"metrics-file":   "metrics.file",
	"metrics":        "metrics.enabled",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark and print the report",
	Long: `Times both strategies for 10 trials over 10,000,000 integers and prints
min/max/avg milliseconds per strategy. With --save the run is appended to
the history store; with --compare it is checked against the latest saved run.`,
	Args: cobra.NoArgs,
	RunE: runBenchmark,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "text", "Report format: "+strings.Join(config.Formats, ", "))
	cmd.Flags().Bool("save", false, "Save results to history")
	cmd.Flags().Bool("compare", false, "Compare with the latest saved run")
	cmd.Flags().Float64("threshold", 10.0, "Percentage change marked as regression or improvement")
	cmd.Flags().Float64("fail-threshold", 0, "Fail if any strategy's average slows down by more than this percentage (0 disables)")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format to this file")
	cmd.Flags().Bool("metrics", false, "Serve Prometheus metrics on metrics_port while running")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(cmd.Flags(), runFlagKeys); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := viper.GetString("format")
	threshold := viper.GetFloat64("threshold")
	failThreshold := viper.GetFloat64("fail_threshold")
	save := viper.GetBool("save")
	compare := viper.GetBool("compare") || failThreshold > 0

	driver := newDriverFunc(benchmark.WithLogger(slog.Default()))

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg, driver.Size)
	driver.Observer = metrics
	if viper.GetBool("metrics.enabled") {
		go func() {
			if err := telemetry.StartMetricsServer(viper.GetInt("metrics_port"), reg); err != nil {
				telemetry.LogError("metrics server stopped", err)
			}
		}()
	}

	run, err := driver.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	if commit, err := cmdutils.GetGitCommit(); err == nil {
		run.Commit = commit
	}

	if err := report.Write(out, format, run); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if path := viper.GetString("metrics.file"); path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			return err
		}
	}

	if err := run.Verify(); err != nil {
		telemetry.LogError("strategy sums disagree with the closed form", err)
		return fmt.Errorf("sum verification failed: %w", err)
	}

	if !save && !compare {
		return nil
	}
	return recordHistory(cmd, run, save, compare, threshold, failThreshold)
}

func recordHistory(cmd *cobra.Command, run *benchmark.Run, save, compare bool, threshold, failThreshold float64) error {
	store, err := cmdutils.GetHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var regressions []benchmark.Comparison
	if compare {
		prev, err := store.LoadLatest()
		if err != nil {
			return fmt.Errorf("failed to load previous run: %w", err)
		}
		if prev == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "No previous run to compare against.")
		} else {
			comps := benchmark.Compare(*prev, *run)
			fmt.Fprintln(cmd.OutOrStdout())
			if err := report.Comparison(cmd.OutOrStdout(), comps, threshold); err != nil {
				return err
			}
			if failThreshold > 0 {
				regressions = benchmark.Regressions(comps, failThreshold)
			}
		}
	}

	if save {
		if err := store.Save(*run); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Results saved to %s history\n", viper.GetString("history.backend"))
	}

	if len(regressions) > 0 {
		parts := make([]string, len(regressions))
		for i, r := range regressions {
			parts[i] = fmt.Sprintf("%s %.2f%% slower", r.Name, r.AvgDiff)
		}
		return fmt.Errorf("performance regression detected: %s", strings.Join(parts, ", "))
	}
	return nil
}
