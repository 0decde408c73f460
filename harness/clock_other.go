//go:build !linux

package harness

import "time"

// epoch carries the runtime's monotonic reading; Since on it never
// observes wall clock steps.
var epoch = time.Now()

// Now returns the monotonic time elapsed since process start.
func (MonotonicClock) Now() (time.Duration, error) {
	return time.Since(epoch), nil
}
