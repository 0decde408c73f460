// Command convolution is the 3x3 sharpen stencil benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewConvolution(kernel.DefaultParams().Convolution))
}
