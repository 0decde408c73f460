//go:build linux

package harness

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Now reads CLOCK_MONOTONIC.
func (MonotonicClock) Now() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("%w: clock_gettime: %v", ErrClockUnavailable, err)
	}

	return time.Duration(ts.Nano()), nil
}
