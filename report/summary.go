package report

import (
	"slices"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
)

// Summary aggregates the runs of one kernel.
type Summary struct {
	Kernel          string         `json:"kernel"`
	Category        string         `json:"category"`
	Seed            int64          `json:"seed"`
	Runs            int            `json:"runs"`
	Times           []float64      `json:"times"`
	MedianSeconds   float64        `json:"median_seconds"`
	MinSeconds      float64        `json:"min_seconds"`
	MaxSeconds      float64        `json:"max_seconds"`
	Witness         kernel.Witness `json:"witness"`
	WitnessStable   bool           `json:"witness_stable"`
	Witnesses       []string       `json:"witnesses,omitempty"`
	PeakMemoryBytes uint64         `json:"peak_memory_bytes"`
}

// Summarize groups results by kernel, keeping the order in which kernels
// first appear.
func Summarize(results []harness.Result) []Summary {
	index := make(map[string]int)

	var out []Summary

	for _, r := range results {
		i, ok := index[r.Kernel]
		if !ok {
			i = len(out)
			index[r.Kernel] = i
			out = append(out, Summary{
				Kernel:        r.Kernel,
				Category:      r.Category,
				Seed:          r.Seed,
				Witness:       r.Witness,
				WitnessStable: true,
			})
		}

		s := &out[i]
		s.Runs++
		s.Times = append(s.Times, r.ElapsedSeconds)
		s.PeakMemoryBytes = max(s.PeakMemoryBytes, r.PeakMemoryBytes)

		w := r.Witness.String()
		if !slices.Contains(s.Witnesses, w) {
			s.Witnesses = append(s.Witnesses, w)
		}
	}

	for i := range out {
		s := &out[i]
		s.MedianSeconds = median(s.Times)
		s.MinSeconds = slices.Min(s.Times)
		s.MaxSeconds = slices.Max(s.Times)
		s.WitnessStable = len(s.Witnesses) == 1

		if s.WitnessStable {
			s.Witnesses = nil
		}
	}

	return out
}

// median returns the middle value, or the mean of the two middle values
// for an even count.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
