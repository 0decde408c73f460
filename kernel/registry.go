package kernel

import (
	"fmt"

	"github.com/weiihann/kernbench/workload"
)

// Kernel names, also used as the names of the standalone binaries.
const (
	NameBinarySearch = "binary-search"
	NameBranch       = "branch-classifier"
	NameConvolution  = "convolution"
	NameFibonacci    = "fibonacci"
	NameMatMul       = "matmul"
	NamePointerChase = "pointer-chase"
	NamePrefixSum    = "prefix-sum"
	NameSieve        = "sieve"
	NameSort         = "sort"
	NameStringParse  = "string-parse"
	NameDotProduct   = "dot-product"
	NameTranspose    = "transpose"
)

// Names returns every kernel name in registry order.
func Names() []string {
	return []string{
		NameBinarySearch, NameBranch, NameConvolution, NameFibonacci,
		NameMatMul, NamePointerChase, NamePrefixSum, NameSieve,
		NameSort, NameStringParse, NameDotProduct, NameTranspose,
	}
}

// Registry builds every kernel from p, in the order of Names.
func Registry(p Params) []Kernel {
	return []Kernel{
		NewBinarySearch(p.BinarySearch),
		NewBranchClassifier(p.Branch),
		NewConvolution(p.Convolution),
		NewFibonacci(p.Fibonacci),
		NewMatMul(p.MatMul),
		NewPointerChase(p.PointerChase),
		NewPrefixSum(p.PrefixSum),
		NewSieve(p.Sieve),
		NewSort(p.Sort),
		NewStringParse(p.StringParse),
		NewDotProduct(p.DotProduct),
		NewTranspose(p.Transpose),
	}
}

// Lookup returns the kernel called name.
func Lookup(kernels []Kernel, name string) (Kernel, error) {
	for _, k := range kernels {
		if k.Name() == name {
			return k, nil
		}
	}

	return nil, fmt.Errorf("unknown kernel %q", name)
}

// Select returns the kernels called names, in the order given. An empty
// list selects every kernel.
func Select(kernels []Kernel, names []string) ([]Kernel, error) {
	if len(names) == 0 {
		return kernels, nil
	}

	out := make([]Kernel, 0, len(names))
	for _, name := range names {
		k, err := Lookup(kernels, name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// paramKernel adapts a parameter struct and a prepare function to Kernel.
type paramKernel[P any] struct {
	name     string
	category Category
	seed     int64
	params   P
	prepare  func(P, *workload.Generator) (Task, error)
}

func (k *paramKernel[P]) Name() string       { return k.name }
func (k *paramKernel[P]) Category() Category { return k.category }
func (k *paramKernel[P]) Seed() int64        { return k.seed }

// Parameters returns the kernel's parameter struct.
func (k *paramKernel[P]) Parameters() any { return k.params }

func (k *paramKernel[P]) Prepare(gen *workload.Generator) (Task, error) {
	if err := workload.Validate(k.params); err != nil {
		return nil, fmt.Errorf("%s: %w", k.name, err)
	}

	t, err := k.prepare(k.params, gen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k.name, err)
	}

	return t, nil
}
