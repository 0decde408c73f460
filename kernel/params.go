package kernel

// Parameter structs carry every size and seed a kernel uses. Defaults
// reproduce the sizes of the original benchmark programs.

// BinarySearchParams sizes the binary search kernel.
type BinarySearchParams struct {
	N       int   `yaml:"n" json:"n" validate:"gt=0"`
	Queries int   `yaml:"queries" json:"queries" validate:"gt=0"`
	Seed    int64 `yaml:"seed" json:"seed"`
}

// BranchParams sizes the branch classifier kernel.
type BranchParams struct {
	N    int   `yaml:"n" json:"n" validate:"gt=0"`
	Seed int64 `yaml:"seed" json:"seed"`
}

// ConvolutionParams sizes the convolution kernel. Both sides need an
// interior, so three is the smallest canvas.
type ConvolutionParams struct {
	Height int     `yaml:"height" json:"height" validate:"gte=3,lte=46340"`
	Width  int     `yaml:"width" json:"width" validate:"gte=3,lte=46340"`
	Fill   float32 `yaml:"fill" json:"fill"`
}

// FibonacciParams sizes the recursive Fibonacci kernel. fib(92) is the
// largest value that fits in an int64.
type FibonacciParams struct {
	N int `yaml:"n" json:"n" validate:"gt=0,lte=92"`
}

// MatMulParams sizes the dense matrix multiply kernel. Square sizes are
// capped so N*N fits in 32 bits.
type MatMulParams struct {
	N int     `yaml:"n" json:"n" validate:"gt=0,lte=46340"`
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
}

// PointerChaseParams sizes the pointer chase kernel.
type PointerChaseParams struct {
	N    int   `yaml:"n" json:"n" validate:"gt=0,lte=2147483647"`
	Seed int64 `yaml:"seed" json:"seed"`
}

// PrefixSumParams sizes the prefix sum kernel. Index selects the output
// element reported as the witness.
type PrefixSumParams struct {
	N     int `yaml:"n" json:"n" validate:"gt=0"`
	Index int `yaml:"index" json:"index" validate:"gte=0,ltfield=N"`
}

// SieveParams sizes the sieve of Eratosthenes.
type SieveParams struct {
	N int `yaml:"n" json:"n" validate:"gt=0"`
}

// SortParams sizes the comparison sort kernel.
type SortParams struct {
	M    int   `yaml:"m" json:"m" validate:"gt=0"`
	Min  int   `yaml:"min" json:"min"`
	Max  int   `yaml:"max" json:"max" validate:"gtefield=Min"`
	Seed int64 `yaml:"seed" json:"seed"`
}

// StringParseParams sizes the tokenizer kernel.
type StringParseParams struct {
	Chars      int   `yaml:"chars" json:"chars" validate:"gt=0"`
	SpaceEvery int   `yaml:"space_every" json:"space_every" validate:"gt=0"`
	Seed       int64 `yaml:"seed" json:"seed"`
}

// DotProductParams sizes the dot product kernel. Every element of the
// first vector is A and every element of the second is B.
type DotProductParams struct {
	N int   `yaml:"n" json:"n" validate:"gt=0"`
	A int64 `yaml:"a" json:"a"`
	B int64 `yaml:"b" json:"b"`
}

// TransposeParams sizes the matrix transpose kernel.
type TransposeParams struct {
	N int `yaml:"n" json:"n" validate:"gt=0,lte=46340"`
}

// Params holds the parameters of every kernel.
type Params struct {
	BinarySearch BinarySearchParams `yaml:"binary_search" json:"binary_search"`
	Branch       BranchParams       `yaml:"branch_classifier" json:"branch_classifier"`
	Convolution  ConvolutionParams  `yaml:"convolution" json:"convolution"`
	Fibonacci    FibonacciParams    `yaml:"fibonacci" json:"fibonacci"`
	MatMul       MatMulParams       `yaml:"matmul" json:"matmul"`
	PointerChase PointerChaseParams `yaml:"pointer_chase" json:"pointer_chase"`
	PrefixSum    PrefixSumParams    `yaml:"prefix_sum" json:"prefix_sum"`
	Sieve        SieveParams        `yaml:"sieve" json:"sieve"`
	Sort         SortParams         `yaml:"sort" json:"sort"`
	StringParse  StringParseParams  `yaml:"string_parse" json:"string_parse"`
	DotProduct   DotProductParams   `yaml:"dot_product" json:"dot_product"`
	Transpose    TransposeParams    `yaml:"transpose" json:"transpose"`
}

// DefaultParams returns the parameters of the original benchmark programs.
// The sort kernel's input is seeded like every other kernel.
func DefaultParams() Params {
	return Params{
		BinarySearch: BinarySearchParams{N: 500_000, Queries: 200_000, Seed: 12345},
		Branch:       BranchParams{N: 2_000_000, Seed: 123456},
		Convolution:  ConvolutionParams{Height: 2000, Width: 2000, Fill: 1},
		Fibonacci:    FibonacciParams{N: 35},
		MatMul:       MatMulParams{N: 600, A: 1, B: 1},
		PointerChase: PointerChaseParams{N: 2_500_000, Seed: 12345},
		PrefixSum:    PrefixSumParams{N: 2_000_000, Index: 5},
		Sieve:        SieveParams{N: 2_000_000},
		Sort:         SortParams{M: 100_000, Min: 1, Max: 1_000_000, Seed: 1},
		StringParse:  StringParseParams{Chars: 10_000_000, SpaceEvery: 8, Seed: 42},
		DotProduct:   DotProductParams{N: 1_000_000, A: 1, B: 2},
		Transpose:    TransposeParams{N: 1700},
	}
}

// WithSeed returns a copy of p in which every seeded kernel uses seed.
func (p Params) WithSeed(seed int64) Params {
	p.BinarySearch.Seed = seed
	p.Branch.Seed = seed
	p.PointerChase.Seed = seed
	p.Sort.Seed = seed
	p.StringParse.Seed = seed

	return p
}
