package kernel

import (
	"slices"

	"github.com/weiihann/kernbench/workload"
)

// NewBinarySearch returns the binary search kernel: Q uniformly drawn
// queries against a sorted run of N even numbers.
func NewBinarySearch(p BinarySearchParams) Kernel {
	return &paramKernel[BinarySearchParams]{
		name:     NameBinarySearch,
		category: CategorySearch,
		seed:     p.Seed,
		params:   p,
		prepare:  prepareBinarySearch,
	}
}

func prepareBinarySearch(
	p BinarySearchParams, gen *workload.Generator,
) (Task, error) {
	data, err := gen.SortedEvens(p.N)
	if err != nil {
		return nil, err
	}

	queries, err := gen.UniformInts(p.Queries, 0, 4*p.N)
	if err != nil {
		return nil, err
	}

	return newTask(
		func() int { return CountHits(data, queries) },
		func(hits int) Witness {
			return Witness{Int("hits", int64(hits))}
		},
	), nil
}

// Contains reports whether q is present in sorted, which must be in
// ascending order.
func Contains(sorted []int, q int) bool {
	_, found := slices.BinarySearch(sorted, q)

	return found
}

// CountHits returns how many queries are present in sorted.
func CountHits(sorted, queries []int) int {
	hits := 0
	for _, q := range queries {
		if Contains(sorted, q) {
			hits++
		}
	}

	return hits
}
