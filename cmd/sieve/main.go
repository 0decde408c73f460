// Command sieve counts primes with the sieve of Eratosthenes.
package main

import (
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/standalone"
)

func main() {
	standalone.Main(kernel.NewSieve(kernel.DefaultParams().Sieve))
}
