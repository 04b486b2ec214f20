package domain

import "time"

// UpstreamBudget caps the number of generator calls per calendar day.
// The counter resets exactly once when the date advances past the
// window date; within one date the rollover check is idempotent.
//
// Like RateLimiter, it relies on the supplier's lock for serialization.
type UpstreamBudget struct {
	dailyLimit int
	callsToday int
	windowDate time.Time // midnight UTC of the current accounting day
}

// NewUpstreamBudget creates a budget of dailyLimit calls per day,
// with the accounting window starting on the given instant's date.
func NewUpstreamBudget(dailyLimit int, now time.Time) *UpstreamBudget {
	return &UpstreamBudget{
		dailyLimit: dailyLimit,
		windowDate: civilDate(now),
	}
}

// TryReserve rolls the window over if the date advanced, then reserves
// one upstream call if the daily limit has room. On true the caller may
// make exactly one call; the reservation is never rolled back, even if
// the call fails, since the attempt cost is already paid.
func (b *UpstreamBudget) TryReserve(now time.Time) bool {
	today := civilDate(now)
	if today.After(b.windowDate) {
		b.callsToday = 0
		b.windowDate = today
	}

	if b.callsToday >= b.dailyLimit {
		return false
	}
	b.callsToday++
	return true
}

// CallsToday returns the number of reservations in the current window.
func (b *UpstreamBudget) CallsToday() int { return b.callsToday }

// DailyLimit returns the configured daily cap.
func (b *UpstreamBudget) DailyLimit() int { return b.dailyLimit }

// civilDate truncates an instant to its UTC calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
