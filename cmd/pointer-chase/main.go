// Command pointer-chase walks a random single-cycle permutation to measure memory
// latency.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewPointerChase(kernel.DefaultParams().PointerChase))
}
