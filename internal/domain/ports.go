package domain

import (
	"context"
	"time"
)

// QuizGenerator is the outbound port to the generative backend. It
// returns the raw model text; extracting and parsing the quiz JSON is
// the caller's concern.
type QuizGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Clock supplies the current instant for the rate limiter and, through
// it, the calendar date for the daily budget. Injectable so tests can
// drive window expiry and day rollover deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() Clock { return systemClock{} }
