// Command fibonacci is the naive recursive Fibonacci benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewFibonacci(kernel.DefaultParams().Fibonacci))
}
