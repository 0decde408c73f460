// Command matmul is the dense matrix multiply benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewMatMul(kernel.DefaultParams().MatMul))
}
