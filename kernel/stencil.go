package kernel

import "github.com/weiihann/kernbench/workload"

// sharpen is the 3x3 Laplacian sharpening kernel.
var sharpen = [3][3]float32{
	{0, -1, 0},
	{-1, 5, -1},
	{0, -1, 0},
}

// NewConvolution returns the 2D convolution kernel.
func NewConvolution(p ConvolutionParams) Kernel {
	return &paramKernel[ConvolutionParams]{
		name:     NameConvolution,
		category: CategoryStencil,
		params:   p,
		prepare:  prepareConvolution,
	}
}

func prepareConvolution(
	p ConvolutionParams, gen *workload.Generator,
) (Task, error) {
	if err := workload.CheckArea("convolution", p.Height, p.Width); err != nil {
		return nil, err
	}

	src, err := gen.FillFloats(p.Height*p.Width, float64(p.Fill))
	if err != nil {
		return nil, err
	}

	canvas := make([]float32, len(src))
	for i, v := range src {
		canvas[i] = float32(v)
	}

	h, w := p.Height, p.Width
	dst := make([]float32, h*w)

	return newTask(
		func() []float32 {
			ConvolveInto(dst, canvas, h, w)

			return dst
		},
		func(out []float32) Witness {
			return Witness{Float("center", float64(out[(h/2)*w+w/2]))}
		},
	), nil
}

// Convolve applies the sharpening kernel to the interior of an h×w
// row-major canvas. Border pixels of the result are zero.
func Convolve(src []float32, h, w int) []float32 {
	dst := make([]float32, h*w)
	ConvolveInto(dst, src, h, w)

	return dst
}

// ConvolveInto writes the interior of the convolution to dst. Border
// pixels of dst are left untouched.
func ConvolveInto(dst, src []float32, h, w int) {
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var sum float32
			for ky := -1; ky <= 1; ky++ {
				row := (y + ky) * w
				for kx := -1; kx <= 1; kx++ {
					sum += sharpen[ky+1][kx+1] * src[row+x+kx]
				}
			}
			dst[y*w+x] = sum
		}
	}
}
