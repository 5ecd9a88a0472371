package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"sumbench/internal/benchmark"
)

// Status classifies an average change against threshold percent.
func Status(diff, threshold float64) string {
	switch {
	case diff > threshold:
		return "FAIL"
	case diff < -threshold:
		return "IMPR"
	default:
		return "PASS"
	}
}

// Comparison writes a table of per-strategy average changes.
func Comparison(w io.Writer, comps []benchmark.Comparison, threshold float64) error {
	if _, err := fmt.Fprintln(w, "Comparison with previous run:"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tPREV AVG\tAVG\tDIFF %\tSTATUS")
	for _, c := range comps {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%+.2f%%\t%s\n",
			c.Name, c.Prev.Summary.Avg, c.Curr.Summary.Avg, c.AvgDiff, styleStatus(Status(c.AvgDiff, threshold)))
	}
	return tw.Flush()
}

// styleStatus only colours the last column so tabwriter alignment holds.
func styleStatus(status string) string {
	if !colorEnabled {
		return status
	}
	switch status {
	case "FAIL":
		return failStyle.Render(status)
	case "IMPR":
		return improvedStyle.Render(status)
	default:
		return passStyle.Render(status)
	}
}
