// Package workload generates deterministic synthetic inputs for the
// benchmark kernels. Every buffer is derived from an explicit seed so the
// same (size, seed) pair yields identical input on every run and platform.
package workload

import (
	"fmt"
	"math"
	mrand "math/rand"
)

// Generator produces deterministic input buffers from a seed.
type Generator struct {
	seed int64
	rng  *mrand.Rand
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  mrand.New(mrand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SortedEvens returns [0, 2, 4, ..., 2(n-1)], a strictly ascending sequence.
func (g *Generator) SortedEvens(n int) ([]int, error) {
	if err := checkSize("sorted evens", n); err != nil {
		return nil, err
	}

	data := make([]int, n)
	for i := range data {
		data[i] = i * 2
	}

	return data, nil
}

// UniformInts returns n values drawn uniformly from [lo, hi].
func (g *Generator) UniformInts(n, lo, hi int) ([]int, error) {
	if err := checkSize("uniform ints", n); err != nil {
		return nil, err
	}

	if hi < lo {
		return nil, fmt.Errorf(
			"%w: uniform ints: hi %d below lo %d",
			ErrInvalidConfiguration, hi, lo,
		)
	}

	// The span hi-lo+1 must be a positive int.
	if span := hi - lo; span < 0 || span == math.MaxInt {
		return nil, fmt.Errorf(
			"%w: uniform ints: range [%d, %d] is too wide",
			ErrInvalidConfiguration, lo, hi,
		)
	}

	span := hi - lo + 1
	out := make([]int, n)
	for i := range out {
		out[i] = lo + g.rng.Intn(span)
	}

	return out, nil
}

// FillInts returns n copies of v.
func (g *Generator) FillInts(n int, v int64) ([]int64, error) {
	if err := checkSize("fill ints", n); err != nil {
		return nil, err
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}

	return out, nil
}

// FillFloats returns n copies of v.
func (g *Generator) FillFloats(n int, v float64) ([]float64, error) {
	if err := checkSize("fill floats", n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out, nil
}

// SuccessorPermutation returns next[i] = (i+1) % n shuffled in place with
// a Fisher-Yates pass driven by the seeded source. The result is a
// permutation of 0..n-1 whose layout defeats strided prefetching.
func (g *Generator) SuccessorPermutation(n int) ([]int32, error) {
	if err := checkSize("successor permutation", n); err != nil {
		return nil, err
	}

	next := make([]int32, n)
	for i := range next {
		next[i] = int32((i + 1) % n)
	}

	for i := n - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		next[i], next[j] = next[j], next[i]
	}

	return next, nil
}

// Text returns n bytes of lowercase letters in which each position is a
// space with probability 1/spaceEvery.
func (g *Generator) Text(n, spaceEvery int) ([]byte, error) {
	if err := checkSize("text", n); err != nil {
		return nil, err
	}

	if spaceEvery <= 0 {
		return nil, fmt.Errorf(
			"%w: text: space frequency %d must be positive",
			ErrInvalidConfiguration, spaceEvery,
		)
	}

	buf := make([]byte, n)
	for i := range buf {
		if g.rng.Intn(spaceEvery) == 0 {
			buf[i] = ' '

			continue
		}

		buf[i] = byte('a' + g.rng.Intn(26))
	}

	return buf, nil
}

// Grid returns an n×n row-major matrix with A[i][j] = i*0.001 + j*0.002.
func (g *Generator) Grid(n int) ([]float64, error) {
	if err := CheckArea("grid", n, n); err != nil {
		return nil, err
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = float64(i)*0.001 + float64(j)*0.002
		}
	}

	return out, nil
}

// CheckArea reports whether an h×w buffer has positive sides and a
// length that fits in an int.
func CheckArea(what string, h, w int) error {
	if err := checkSize(what, h); err != nil {
		return err
	}

	if err := checkSize(what, w); err != nil {
		return err
	}

	if h > math.MaxInt/w {
		return fmt.Errorf(
			"%w: %s: %d×%d overflows",
			ErrInvalidConfiguration, what, h, w,
		)
	}

	return nil
}

func checkSize(what string, n int) error {
	if n <= 0 {
		return fmt.Errorf(
			"%w: %s: size %d must be positive",
			ErrInvalidConfiguration, what, n,
		)
	}

	return nil
}
