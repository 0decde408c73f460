// Command prefix-sum is the inclusive scan benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewPrefixSum(kernel.DefaultParams().PrefixSum))
}
