//go:build linux

package harness

import (
	"os"
	"syscall"
)

// peakRSS returns the child's maximum resident set size in bytes.
func peakRSS(state *os.ProcessState) uint64 {
	if state == nil {
		return 0
	}

	ru, ok := state.SysUsage().(*syscall.Rusage)
	if !ok || ru.Maxrss <= 0 {
		return 0
	}

	// Linux reports kilobytes.
	return uint64(ru.Maxrss) * 1024
}
