package checker

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/repocheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// Runner processes a URL list through a Checker.
//
// Design decision: Results are stored into per-index slots of a
// pre-allocated slice rather than appended on completion, so the final
// report always follows input order even when workers finish out of
// order. Progress callbacks fire on completion and may interleave at
// higher concurrency; the summary stays order-stable either way.
type Runner struct {
	checker *Checker

	// concurrency is the maximum number of in-flight checks.
	// 1 reproduces the strictly sequential behavior.
	concurrency int

	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency sets the maximum number of concurrent checks.
// Values below 1 are ignored.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for run-level logging.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner for the given Checker.
func NewRunner(checker *Checker, opts ...RunnerOption) *Runner {
	r := &Runner{
		checker:     checker,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Callback receives each result as soon as it is produced, together
// with the index of its line in the input. It is called from the worker
// goroutine that completed the check, so it must be thread-safe when
// concurrency is above 1.
type Callback func(result model.CheckResult, index int)

// Run checks every URL and returns the completed report, results in
// input order. The run always attempts every line; per-URL failures are
// classified, never propagated. The returned error is non-nil only when
// the context was cancelled before all lines completed.
func (r *Runner) Run(ctx context.Context, source string, urls []string, callback Callback) (*model.RunReport, error) {
	r.logger.Info("starting check run",
		"total", len(urls),
		"concurrency", r.concurrency,
	)

	report := model.NewRunReport(source, false)
	report.Results = make([]model.CheckResult, len(urls))
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, rawURL := range urls {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := r.checker.CheckURL(ctx, rawURL)
			report.Results[i] = result

			if callback != nil {
				callback(result, i)
			}
			return nil
		})
	}

	err := g.Wait()
	report.Elapsed = time.Since(startTime)

	r.logger.Info("check run complete",
		"total", len(urls),
		"elapsed", report.Elapsed,
	)
	return report, err
}
