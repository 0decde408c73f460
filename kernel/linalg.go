package kernel

import "github.com/weiihann/kernbench/workload"

// Number is the element type of the transpose kernel.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NewMatMul returns the dense matrix multiply kernel.
func NewMatMul(p MatMulParams) Kernel {
	return &paramKernel[MatMulParams]{
		name:     NameMatMul,
		category: CategoryCompute,
		params:   p,
		prepare:  prepareMatMul,
	}
}

func prepareMatMul(p MatMulParams, gen *workload.Generator) (Task, error) {
	if err := workload.CheckArea("matmul", p.N, p.N); err != nil {
		return nil, err
	}

	a, err := gen.FillFloats(p.N*p.N, p.A)
	if err != nil {
		return nil, err
	}

	b, err := gen.FillFloats(p.N*p.N, p.B)
	if err != nil {
		return nil, err
	}

	n := p.N
	c := make([]float64, n*n)

	return newTask(
		func() []float64 {
			MatMulInto(c, a, b, n)

			return c
		},
		func(c []float64) Witness { return Witness{Float("c00", c[0])} },
	), nil
}

// MatMul returns C = A·B for n×n row-major matrices. The loop order is
// i-k-j so the innermost loop walks B and C by row.
func MatMul(a, b []float64, n int) []float64 {
	c := make([]float64, n*n)
	MatMulInto(c, a, b, n)

	return c
}

// MatMulInto accumulates A·B into c, which must start zeroed.
func MatMulInto(c, a, b []float64, n int) {
	for i := 0; i < n; i++ {
		ci := c[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			bk := b[k*n : (k+1)*n]
			for j := range ci {
				ci[j] += aik * bk[j]
			}
		}
	}
}

// NewDotProduct returns the dot product reduction kernel.
func NewDotProduct(p DotProductParams) Kernel {
	return &paramKernel[DotProductParams]{
		name:     NameDotProduct,
		category: CategoryCompute,
		params:   p,
		prepare:  prepareDotProduct,
	}
}

func prepareDotProduct(
	p DotProductParams, gen *workload.Generator,
) (Task, error) {
	a, err := gen.FillInts(p.N, p.A)
	if err != nil {
		return nil, err
	}

	b, err := gen.FillInts(p.N, p.B)
	if err != nil {
		return nil, err
	}

	return newTask(
		func() int64 { return Dot(a, b) },
		func(sum int64) Witness { return Witness{Int("sum", sum)} },
	), nil
}

// Dot returns the sum of a[i]*b[i]. The vectors must have equal length.
func Dot(a, b []int64) int64 {
	var sum int64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// NewTranspose returns the out-of-place matrix transpose kernel.
func NewTranspose(p TransposeParams) Kernel {
	return &paramKernel[TransposeParams]{
		name:     NameTranspose,
		category: CategoryMemory,
		params:   p,
		prepare:  prepareTranspose,
	}
}

func prepareTranspose(p TransposeParams, gen *workload.Generator) (Task, error) {
	a, err := gen.Grid(p.N)
	if err != nil {
		return nil, err
	}

	n := p.N
	b := make([]float64, n*n)

	return newTask(
		func() []float64 {
			TransposeInto(b, a, n)

			return b
		},
		func(b []float64) Witness {
			return Witness{Float("checksum", Checksum(b))}
		},
	), nil
}

// Transpose returns the transpose of an n×n row-major matrix.
func Transpose[T Number](a []T, n int) []T {
	b := make([]T, n*n)
	TransposeInto(b, a, n)

	return b
}

// TransposeInto writes the transpose of a into b.
func TransposeInto[T Number](b, a []T, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b[j*n+i] = a[i*n+j]
		}
	}
}

// Checksum returns the sum of all elements.
func Checksum[T Number](xs []T) T {
	var sum T
	for _, x := range xs {
		sum += x
	}

	return sum
}
