package harness

import (
	"errors"
	"time"
)

// ErrClockUnavailable reports that the monotonic clock could not be read
// or went backwards. A run that hits it is aborted.
var ErrClockUnavailable = errors.New("monotonic clock unavailable")

// Clock reads a monotonic clock. Readings are offsets from an arbitrary
// fixed origin and only differences between them are meaningful.
type Clock interface {
	Now() (time.Duration, error)
}

// MonotonicClock is the system monotonic clock. It is immune to wall
// clock adjustments.
type MonotonicClock struct{}

// ClockFunc adapts a function to Clock.
type ClockFunc func() (time.Duration, error)

// Now calls f.
func (f ClockFunc) Now() (time.Duration, error) {
	return f()
}
