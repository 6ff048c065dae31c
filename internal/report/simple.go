package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/repocheck/internal/model"
)

// SimpleWriter outputs the human-readable summary block.
// Plain ASCII formatting keeps the output pipeable and terminal-safe.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary: run metadata, per-status counts, and the
// dead-link list. Counts always partition the input, and dead links
// appear in input order.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	summary := model.NewSummary(report)

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\nSUMMARY\n")
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Source:   %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("Checked:  %d URLs\n", report.Total()))
	sb.WriteString(fmt.Sprintf("Elapsed:  %s\n", report.Elapsed.Round(time.Millisecond)))
	if report.Authenticated {
		sb.WriteString("Auth:     token\n")
	} else {
		sb.WriteString("Auth:     anonymous\n")
	}
	sb.WriteString("\n")

	for _, status := range model.AllStatuses() {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", status.String()+":", summary.Counts[status]))
	}

	if summary.HasDeadLinks() {
		sb.WriteString(fmt.Sprintf("\nDead/Problematic Links (%d):\n", len(summary.DeadLinks)))
		for _, url := range summary.DeadLinks {
			sb.WriteString(fmt.Sprintf("  %s\n", url))
		}
	}

	return w.output.Write([]byte(sb.String()))
}
