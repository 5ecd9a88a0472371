package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sumbench/internal/config"
	"sumbench/internal/report"
	"sumbench/internal/telemetry"
)

var exit = os.Exit

var (
	cfgFile string
	noColor bool
)

var persistentFlagKeys = map[string]string{
	"verbose":  "verbose",
	"log-file": "log_file",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sumbench",
	Short: "Time a hand-written loop against a library accumulate",
	Long: `sumbench sums the integers 0..9,999,999 two ways, a plain counting loop
and an accumulate over a materialized slice, ten times each. It reports the
minimum, maximum and average wall-clock time of each in milliseconds.

Run without a subcommand it behaves like 'sumbench run'.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd.Root()); err != nil {
			return err
		}
		if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			report.NoColor()
		}
		return nil
	},
	RunE: runBenchmark,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sumbench --help' for usage.")
		stop()
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	addRunFlags(rootCmd)
}

// initConfig reads in config file and ENV variables if set. Values are
// validated by the command that reads them, once its own flags are bound.
func initConfig(root *cobra.Command) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.BindFlags(root.PersistentFlags(), persistentFlagKeys); err != nil {
		return err
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
	return nil
}
