package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle spaces out calls to a remote provider by at least a fixed
// interval. It does not queue or retry, callers block in Wait.
type Throttle struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewThrottle creates a Throttle permitting one call per interval. The first
// call is never delayed. An interval <= 0 disables throttling.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		return &Throttle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Throttle{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Wait blocks until the interval since the previous permitted call has
// elapsed or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
