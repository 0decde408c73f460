// Command sort is the comparison sort benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewSort(kernel.DefaultParams().Sort))
}
