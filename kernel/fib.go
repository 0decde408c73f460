package kernel

import "github.com/weiihann/kernbench/workload"

// NewFibonacci returns the naive recursive Fibonacci kernel, a measure of
// call overhead.
func NewFibonacci(p FibonacciParams) Kernel {
	return &paramKernel[FibonacciParams]{
		name:     NameFibonacci,
		category: CategoryRecursion,
		params:   p,
		prepare:  prepareFibonacci,
	}
}

func prepareFibonacci(p FibonacciParams, _ *workload.Generator) (Task, error) {
	n := p.N

	return newTask(
		func() int64 { return Fib(n) },
		func(v int64) Witness { return Witness{Int("fib", v)} },
	), nil
}

// Fib computes fib(n) by double recursion, fib(0)=0 and fib(1)=1.
func Fib(n int) int64 {
	if n <= 1 {
		return int64(n)
	}

	return Fib(n-1) + Fib(n-2)
}
