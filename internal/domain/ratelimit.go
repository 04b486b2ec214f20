package domain

import "time"

// RateLimiter is a sliding-window admission control over inbound
// requests: it retains the timestamps of admitted requests within the
// trailing window and rejects once the count reaches the limit.
//
// It is not safe for concurrent use on its own; the supplier serializes
// access under its lock.
type RateLimiter struct {
	limit      int
	window     time.Duration
	timestamps []time.Time
}

// NewRateLimiter creates a limiter admitting at most limit requests per
// window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
	}
}

// Admit purges timestamps older than the window relative to now, then
// either records now and admits, or rejects without recording. A pure
// admission decision; there are no error conditions.
func (r *RateLimiter) Admit(now time.Time) bool {
	retained := r.timestamps[:0]
	for _, t := range r.timestamps {
		if now.Sub(t) < r.window {
			retained = append(retained, t)
		}
	}
	r.timestamps = retained

	if len(r.timestamps) >= r.limit {
		return false
	}
	r.timestamps = append(r.timestamps, now)
	return true
}

// Limit returns the configured admission limit.
func (r *RateLimiter) Limit() int { return r.limit }
