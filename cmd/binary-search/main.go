// Command binary-search is the binary search benchmark: hit count of random queries
// against a sorted array of even numbers.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewBinarySearch(kernel.DefaultParams().BinarySearch))
}
