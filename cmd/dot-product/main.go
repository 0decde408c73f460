// Command dot-product is the integer dot product benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewDotProduct(kernel.DefaultParams().DotProduct))
}
