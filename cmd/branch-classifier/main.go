// Command branch-classifier is the branch-heavy classification benchmark.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewBranchClassifier(kernel.DefaultParams().Branch))
}
