package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"sumbench/internal/benchmark"
)

// Write renders run in the named format.
func Write(w io.Writer, format string, run *benchmark.Run) error {
	switch strings.ToLower(format) {
	case "", "text":
		return Text(w, run)
	case "precise":
		return Precise(w, run)
	case "table":
		return Table(w, run)
	case "json":
		return JSON(w, run)
	case "yaml":
		return YAML(w, run)
	case "markdown":
		return Markdown(w, run)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Text writes one block per strategy:
//
//	<Label> Implementation Results (ms):
//	Min: <int>, Max: <int>, Avg: <int>
//
// Blocks are separated by a blank line.
func Text(w io.Writer, run *benchmark.Run) error {
	var b strings.Builder
	for i, r := range run.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s Implementation Results (ms):\n", r.Label)
		fmt.Fprintf(&b, "Min: %d, Max: %d, Avg: %d\n", r.Summary.Min, r.Summary.Max, r.Summary.Avg)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Precise is Text with fractional milliseconds to two decimals and a float
// mean, so sub-millisecond trials do not all read as 0.
func Precise(w io.Writer, run *benchmark.Run) error {
	var b strings.Builder
	for i, r := range run.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s Implementation Results (ms):\n", r.Label)
		fmt.Fprintf(&b, "Min: %.2f, Max: %.2f, Avg: %.2f\n", r.Precise.Min, r.Precise.Max, r.Precise.Mean)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Table writes a tab-aligned summary with one row per strategy.
func Table(w io.Writer, run *benchmark.Run) error {
	title := fmt.Sprintf("sum of 0..%d, %d trials", run.Size-1, run.Trials)
	if colorEnabled {
		title = titleStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tMIN MS\tMAX MS\tAVG MS\tSUM")
	for _, r := range run.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n",
			r.Name, r.Summary.Min, r.Summary.Max, r.Summary.Avg, r.Sum)
	}
	return tw.Flush()
}

// JSON writes the run as indented JSON.
func JSON(w io.Writer, run *benchmark.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// YAML writes the run as a YAML document.
func YAML(w io.Writer, run *benchmark.Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
