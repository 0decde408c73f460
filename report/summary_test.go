package report

import (
	"testing"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.in); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMedianLeavesInputUnsorted(t *testing.T) {
	in := []float64{3, 1, 2}
	median(in)

	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input reordered: %v", in)
	}
}

func TestSummarize(t *testing.T) {
	primes := kernel.Witness{kernel.Int("primes", 25)}

	results := []harness.Result{
		{Kernel: "sieve", Category: "compute", Run: 1, Witness: primes, ElapsedSeconds: 0.3, PeakMemoryBytes: 10},
		{Kernel: "fibonacci", Category: "recursion", Run: 1, Witness: kernel.Witness{kernel.Int("fib", 55)}, ElapsedSeconds: 0.1},
		{Kernel: "sieve", Category: "compute", Run: 2, Witness: primes, ElapsedSeconds: 0.1, PeakMemoryBytes: 30},
		{Kernel: "sieve", Category: "compute", Run: 3, Witness: primes, ElapsedSeconds: 0.2, PeakMemoryBytes: 20},
	}

	got := Summarize(results)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	sieve := got[0]
	if sieve.Kernel != "sieve" {
		t.Fatalf("first summary = %q, want sieve", sieve.Kernel)
	}
	if sieve.Runs != 3 {
		t.Errorf("runs = %d, want 3", sieve.Runs)
	}
	if sieve.MedianSeconds != 0.2 {
		t.Errorf("median = %v, want 0.2", sieve.MedianSeconds)
	}
	if sieve.MinSeconds != 0.1 || sieve.MaxSeconds != 0.3 {
		t.Errorf("min/max = %v/%v, want 0.1/0.3", sieve.MinSeconds, sieve.MaxSeconds)
	}
	if sieve.PeakMemoryBytes != 30 {
		t.Errorf("peak = %d, want 30", sieve.PeakMemoryBytes)
	}
	if !sieve.WitnessStable || sieve.Witnesses != nil {
		t.Errorf("expected stable witness, got %v", sieve.Witnesses)
	}

	if got[1].Kernel != "fibonacci" || got[1].Runs != 1 {
		t.Errorf("second summary = %+v", got[1])
	}
}

func TestSummarizeDetectsUnstableWitness(t *testing.T) {
	results := []harness.Result{
		{Kernel: "sort", Witness: kernel.Witness{kernel.Int("first", 1)}, ElapsedSeconds: 1},
		{Kernel: "sort", Witness: kernel.Witness{kernel.Int("first", 2)}, ElapsedSeconds: 1},
		{Kernel: "sort", Witness: kernel.Witness{kernel.Int("first", 1)}, ElapsedSeconds: 1},
	}

	got := Summarize(results)
	if got[0].WitnessStable {
		t.Fatal("expected unstable witness")
	}
	if len(got[0].Witnesses) != 2 {
		t.Errorf("distinct witnesses = %v, want 2", got[0].Witnesses)
	}
}
