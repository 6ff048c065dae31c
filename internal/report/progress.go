package report

import (
	"fmt"
	"io"
	"sync"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/nao1215/repocheck/internal/model"
)

// Progress streams per-URL feedback while a check run is in flight.
type Progress interface {
	// Report records one finished URL check.
	Report(result model.CheckResult)
	// Finish flushes any remaining progress output.
	Finish()
}

// LinePrinter streams one "[i/total]" line per completed check.
// The counter reflects completion order, so lines stay dense even when
// checks run concurrently.
type LinePrinter struct {
	mu        sync.Mutex
	output    io.Writer
	total     int
	completed int
}

// NewLinePrinter creates a LinePrinter for a run of total URLs.
func NewLinePrinter(output io.Writer, total int) *LinePrinter {
	return &LinePrinter{output: output, total: total}
}

// Report prints a progress line for the given result.
func (p *LinePrinter) Report(result model.CheckResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	line := fmt.Sprintf("[%d/%d] %s %s", p.completed, p.total, result.Status.Glyph(), result.Target())
	if result.Detail != "" {
		line += " - " + result.Detail
	}
	fmt.Fprintln(p.output, line)
}

// Finish is a no-op; every line is flushed as it is printed.
func (p *LinePrinter) Finish() {}

// BarPrinter renders a single progress bar instead of per-URL lines.
// Used in quiet mode where only the final summary matters.
type BarPrinter struct {
	bar *pb.ProgressBar
}

// NewBarPrinter creates a started progress bar for a run of total URLs.
func NewBarPrinter(output io.Writer, total int) *BarPrinter {
	bar := pb.New(total)
	bar.SetWriter(output)
	bar.Start()
	return &BarPrinter{bar: bar}
}

// Report advances the bar by one.
func (p *BarPrinter) Report(_ model.CheckResult) {
	p.bar.Increment()
}

// Finish stops the bar and releases the terminal line.
func (p *BarPrinter) Finish() {
	p.bar.Finish()
}
