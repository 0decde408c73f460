// Command string-parse tokenizes generated text on spaces.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewStringParse(kernel.DefaultParams().StringParse))
}
