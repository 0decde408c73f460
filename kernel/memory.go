package kernel

import "github.com/weiihann/kernbench/workload"

// NewPointerChase returns the pointer chase kernel. Each hop depends on
// the value loaded by the previous one.
func NewPointerChase(p PointerChaseParams) Kernel {
	return &paramKernel[PointerChaseParams]{
		name:     NamePointerChase,
		category: CategoryMemory,
		seed:     p.Seed,
		params:   p,
		prepare:  preparePointerChase,
	}
}

func preparePointerChase(
	p PointerChaseParams, gen *workload.Generator,
) (Task, error) {
	next, err := gen.SuccessorPermutation(p.N)
	if err != nil {
		return nil, err
	}

	steps := p.N

	return newTask(
		func() int64 { return Chase(next, steps) },
		func(sum int64) Witness { return Witness{Int("sum", sum)} },
	), nil
}

// Chase follows next from index 0 for steps hops and returns the sum of
// the visited indices.
func Chase(next []int32, steps int) int64 {
	var (
		idx int32
		sum int64
	)

	for s := 0; s < steps; s++ {
		idx = next[idx]
		sum += int64(idx)
	}

	return sum
}

// NewPrefixSum returns the sequential inclusive scan kernel.
func NewPrefixSum(p PrefixSumParams) Kernel {
	return &paramKernel[PrefixSumParams]{
		name:     NamePrefixSum,
		category: CategoryMemory,
		params:   p,
		prepare:  preparePrefixSum,
	}
}

func preparePrefixSum(p PrefixSumParams, gen *workload.Generator) (Task, error) {
	arr, err := gen.FillInts(p.N, 1)
	if err != nil {
		return nil, err
	}

	index := p.Index
	prefix := make([]int64, len(arr))

	return newTask(
		func() []int64 {
			PrefixSumInto(prefix, arr)

			return prefix
		},
		func(prefix []int64) Witness {
			return Witness{Int("prefix", prefix[index])}
		},
	), nil
}

// PrefixSum returns the inclusive scan of arr.
func PrefixSum(arr []int64) []int64 {
	prefix := make([]int64, len(arr))
	PrefixSumInto(prefix, arr)

	return prefix
}

// PrefixSumInto writes the inclusive scan of arr into prefix.
func PrefixSumInto(prefix, arr []int64) {
	if len(arr) == 0 {
		return
	}

	prefix[0] = arr[0]
	for i := 1; i < len(arr); i++ {
		prefix[i] = prefix[i-1] + arr[i]
	}
}
