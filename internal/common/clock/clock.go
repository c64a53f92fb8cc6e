package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/quizlabs/triviacore/internal/common/clock Clock

// Clock abstracts wall-clock reads so the persistence layer can stamp
// snapshots while staying testable. The deterministic core never reads a
// clock; all game timing is tick-based.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New creates a new DefaultClock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
