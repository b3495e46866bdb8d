package util

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RescanLimiter gates how often file events may trigger a full diagram
// regeneration, independent of the watcher's debounce window.
type RescanLimiter struct {
	inner *rate.Limiter
}

// NewRescanLimiter creates a token bucket allowing r regenerations per
// second with bursts of up to b.
func NewRescanLimiter(r float64, b int) *RescanLimiter {
	return &RescanLimiter{
		inner: rate.NewLimiter(rate.Limit(r), b),
	}
}

// Allow reports whether a regeneration may start now.
func (l *RescanLimiter) Allow() bool {
	return l.inner.AllowN(time.Now(), 1)
}

// Wait blocks until the next regeneration is permitted.
func (l *RescanLimiter) Wait(ctx context.Context) error {
	return l.inner.Wait(ctx)
}
