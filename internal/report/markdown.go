package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"sumbench/internal/benchmark"
)

// MarkdownSource returns the unrendered markdown summary of run.
func MarkdownSource(run *benchmark.Run) string {
	var b strings.Builder
	b.WriteString("# Sum benchmark\n\n")
	fmt.Fprintf(&b, "N = %d, %d trials", run.Size, run.Trials)
	if run.Commit != "" {
		fmt.Fprintf(&b, ", commit `%s`", run.Commit)
	}
	b.WriteString("\n\n")
	b.WriteString("| Strategy | Min (ms) | Max (ms) | Avg (ms) | Sum |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: |\n")
	for _, r := range run.Results {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d |\n",
			r.Name, r.Summary.Min, r.Summary.Max, r.Summary.Avg, r.Sum)
	}
	if len(run.Mismatches) > 0 {
		fmt.Fprintf(&b, "\n**%d trial(s) disagreed with the closed form.**\n", len(run.Mismatches))
	}
	return b.String()
}

// Markdown renders the markdown summary for the terminal.
func Markdown(w io.Writer, run *benchmark.Run) error {
	style := glamour.WithAutoStyle()
	if !colorEnabled {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(MarkdownSource(run))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
