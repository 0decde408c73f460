package kernel

import (
	"slices"

	"github.com/weiihann/kernbench/workload"
)

// NewSort returns the comparison sort kernel.
func NewSort(p SortParams) Kernel {
	return &paramKernel[SortParams]{
		name:     NameSort,
		category: CategorySort,
		seed:     p.Seed,
		params:   p,
		prepare:  prepareSort,
	}
}

func prepareSort(p SortParams, gen *workload.Generator) (Task, error) {
	data, err := gen.UniformInts(p.M, p.Min, p.Max)
	if err != nil {
		return nil, err
	}

	return newTask(
		func() []int {
			Sort(data)

			return data
		},
		func(sorted []int) Witness {
			return Witness{
				Int("sorted", int64(len(sorted))),
				Int("first", int64(sorted[0])),
				Int("last", int64(sorted[len(sorted)-1])),
			}
		},
	), nil
}

// Sort sorts data ascending in place with the standard library's
// pattern-defeating quicksort.
func Sort(data []int) {
	slices.Sort(data)
}
