package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a fixed minimum interval between requests.
//
// This is a blunt, non-adaptive throttle: it does not read rate-limit
// headers or back off, it simply caps the maximum request rate. With a
// single worker it degenerates to a plain sleep between requests; with
// multiple workers each Wait reserves the next available slot, so the
// per-credential ceiling holds regardless of concurrency.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// New creates a Limiter with the given inter-request interval.
// An interval of zero disables throttling entirely.
func New(interval time.Duration) *Limiter {
	return &Limiter{interval: interval}
}

// Wait blocks until the caller may issue its request, or until the
// context is cancelled. The first caller proceeds immediately.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.interval <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := time.Now()
	if l.next.Before(now) {
		l.next = now
	}
	wait := l.next.Sub(now)
	l.next = l.next.Add(l.interval)
	l.mu.Unlock()

	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Interval returns the configured inter-request interval.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
