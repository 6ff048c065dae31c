package checker

import (
	"context"
	"log/slog"

	"github.com/nao1215/repocheck/internal/github"
	"github.com/nao1215/repocheck/internal/model"
	"github.com/nao1215/repocheck/internal/ratelimit"
)

// Checker classifies a single input line. It holds the prober and the
// shared rate limiter; both are read-only after construction, so a
// Checker is safe for concurrent use by multiple workers.
type Checker struct {
	prober  *github.Prober
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// NewChecker creates a Checker backed by the given prober and limiter.
func NewChecker(prober *github.Prober, limiter *ratelimit.Limiter, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		prober:  prober,
		limiter: limiter,
		logger:  logger,
	}
}

// CheckURL processes one raw URL line: parse, throttle, probe.
//
// A line that fails to parse is classified INVALID_URL immediately, with
// no network call and no throttle wait. For parsed references the shared
// limiter is consulted before the request, which spaces requests by the
// configured interval across all workers.
func (c *Checker) CheckURL(ctx context.Context, rawURL string) model.CheckResult {
	ref, err := github.ParseRepoURL(rawURL)
	if err != nil {
		c.logger.Debug("unparseable URL", "url", rawURL, "error", err)
		return model.NewInvalidResult(rawURL, "could not parse GitHub URL")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return model.NewCheckResult(ref, model.StatusError, err.Error())
	}

	result := c.prober.Probe(ctx, ref)
	c.logger.Debug("probed repository",
		"repo", ref.FullName(),
		"status", result.Status.String(),
	)
	return result
}
