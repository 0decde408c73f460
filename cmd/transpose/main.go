// Command transpose is the square matrix transpose benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewTranspose(kernel.DefaultParams().Transpose))
}
