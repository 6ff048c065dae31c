package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/repocheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	summary := model.NewSummary(report)
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report, summary)
	w.writeDeadLinks(md, summary)
	w.writeResults(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("Repository Check Report")
	md.PlainText("")

	auth := "anonymous"
	if report.Authenticated {
		auth = "token"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Date Checked", report.DateChecked.Format("2006-01-02 15:04:05 MST")},
			{"URLs Checked", strconv.Itoa(report.Total())},
			{"Authentication", auth},
			{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")
}

// writeSummary writes the per-status summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport, summary *model.Summary) {
	md.H2("Status Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.AllStatuses())+1)
	for _, status := range model.AllStatuses() {
		rows = append(rows, []string{
			status.Glyph() + " " + status.String(),
			strconv.Itoa(summary.Counts[status]),
		})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(summary.TotalChecked()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.Total() > 0 {
		w.writePieChart(md, summary)
	}

	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart for status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Status Distribution"),
		piechart.WithShowData(true),
	)

	for _, status := range model.AllStatuses() {
		if count := summary.Counts[status]; count > 0 {
			chart.LabelAndIntValue(status.String(), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on status counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *model.Summary) {
	switch {
	case summary.Counts[model.StatusError] > 0:
		md.Warningf(
			"%d URL(s) failed with errors. Network conditions or the API may be unstable.",
			summary.Counts[model.StatusError],
		)
	case summary.Counts[model.StatusNotFound] > 0:
		md.Importantf(
			"%d repository link(s) are dead and should be removed or replaced.",
			summary.Counts[model.StatusNotFound],
		)
	case summary.HasDeadLinks():
		md.Note("Some links could not be verified. Review the list below.")
	default:
		md.Tip("All repository links are alive.")
	}
	md.PlainText("")
}

// writeDeadLinks writes the dead and problematic links section.
func (w *MarkdownWriter) writeDeadLinks(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Dead/Problematic Links")
	md.PlainText("")

	if !summary.HasDeadLinks() {
		md.PlainText("No dead or problematic links found.")
		md.PlainText("")
		return
	}

	md.BulletList(summary.DeadLinks...)
	md.PlainText("")
}

// writeResults writes the per-URL result table in input order.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Results")
	md.PlainText("")

	if report.Total() == 0 {
		md.PlainText("No URLs were checked.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Results))
	for i, r := range report.Results {
		detail := r.Detail
		if detail == "" {
			detail = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			truncateString(r.Target(), 60),
			r.Status.Glyph() + " " + r.Status.String(),
			truncateString(detail, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Repository", "Status", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [repocheck](https://github.com/nao1215/repocheck)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
