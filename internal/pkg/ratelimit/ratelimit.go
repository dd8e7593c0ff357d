package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counter increments key and makes sure it expires after ttl.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// FixedWindow allows limit hits per window and key.
type FixedWindow struct {
	counter Counter
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindow(counter Counter, limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		counter: counter,
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *FixedWindow) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	windowStart := now.Truncate(l.window)
	bucket := fmt.Sprintf("ratelimit:%s:%d", key, windowStart.Unix())

	count, err := l.counter.Incr(ctx, bucket, l.window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit counter: %w", err)
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetIn:   windowStart.Add(l.window).Sub(now),
	}, nil
}

// Unlimited is used when no counter store is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}
