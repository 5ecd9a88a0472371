package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sumbench/internal/cmdutils"
	"sumbench/internal/config"
	"sumbench/internal/sum"
	"sumbench/internal/utils"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", historyLimit)
	}
	if err := config.ValidateHistoryConfig(); err != nil {
		return err
	}

	store, err := cmdutils.GetHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
		return nil
	}

	strategies := sum.Default()
	header := []string{"WHEN", "AGE", "COMMIT"}
	for _, s := range strategies {
		header = append(header, strings.ToUpper(s.Name)+" AVG MS")
	}

	now := time.Now()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))

	shown := 0
	for i := len(runs) - 1; i >= 0; i-- {
		if historyLimit > 0 && shown == historyLimit {
			break
		}
		run := runs[i]
		row := []string{
			run.Timestamp.Format("2006-01-02 15:04:05"),
			utils.Age(run.Timestamp, now),
			utils.OrDash(run.Commit),
		}
		for _, s := range strategies {
			if res, ok := run.Result(s.Name); ok {
				row = append(row, fmt.Sprintf("%d", res.Summary.Avg))
			} else {
				row = append(row, "-")
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
		shown++
	}
	return w.Flush()
}
