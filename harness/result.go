// Package harness times kernels, either in process or by running their
// standalone binaries as child processes.
package harness

import "github.com/weiihann/kernbench/kernel"

// Result holds the outcome of one timed kernel run.
type Result struct {
	Kernel          string         `json:"kernel"`
	Category        string         `json:"category"`
	Seed            int64          `json:"seed"`
	Run             int            `json:"run"`
	Witness         kernel.Witness `json:"witness"`
	ElapsedSeconds  float64        `json:"elapsed_seconds"`
	WallSeconds     float64        `json:"wall_seconds,omitempty"`
	PeakMemoryBytes uint64         `json:"peak_memory_bytes"`
}
