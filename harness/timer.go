package harness

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRegionActive is returned by Start on a region already started.
	ErrRegionActive = errors.New("timed region already active")
	// ErrRegionIdle is returned by Stop on a region never started.
	ErrRegionIdle = errors.New("timed region not started")
)

// Timer delimits one timed region. It is not reentrant: a region must be
// stopped before it can start again.
type Timer struct {
	clock  Clock
	start  time.Duration
	active bool
}

// NewTimer returns a Timer reading clock.
func NewTimer(clock Clock) *Timer {
	return &Timer{clock: clock}
}

// Start records the start instant.
func (t *Timer) Start() error {
	if t.active {
		return ErrRegionActive
	}

	now, err := t.clock.Now()
	if err != nil {
		return err
	}

	t.start = now
	t.active = true

	return nil
}

// Stop records the stop instant and returns the elapsed time, which is
// never negative.
func (t *Timer) Stop() (time.Duration, error) {
	if !t.active {
		return 0, ErrRegionIdle
	}

	t.active = false

	now, err := t.clock.Now()
	if err != nil {
		return 0, err
	}

	if now < t.start {
		return 0, fmt.Errorf(
			"%w: stop reading %v precedes start reading %v",
			ErrClockUnavailable, now, t.start,
		)
	}

	return now - t.start, nil
}
