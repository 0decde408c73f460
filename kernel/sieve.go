package kernel

import "github.com/weiihann/kernbench/workload"

// NewSieve returns the sieve of Eratosthenes kernel.
func NewSieve(p SieveParams) Kernel {
	return &paramKernel[SieveParams]{
		name:     NameSieve,
		category: CategoryCompute,
		params:   p,
		prepare:  prepareSieve,
	}
}

func prepareSieve(p SieveParams, _ *workload.Generator) (Task, error) {
	isPrime := SieveTable(p.N)

	return newTask(
		func() []bool {
			SieveInto(isPrime)

			return isPrime
		},
		func(isPrime []bool) Witness {
			return Witness{Int("primes", int64(CountTrue(isPrime)))}
		},
	), nil
}

// Sieve returns isPrime for 0..n.
func Sieve(n int) []bool {
	isPrime := SieveTable(n)
	SieveInto(isPrime)

	return isPrime
}

// SieveTable returns the initial table for 0..n: every entry from 2 on is
// marked prime.
func SieveTable(n int) []bool {
	if n < 0 {
		n = -1
	}

	isPrime := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		isPrime[i] = true
	}

	return isPrime
}

// SieveInto crosses off composites in a table from SieveTable, starting at
// p*p for every prime p with p*p <= n.
func SieveInto(isPrime []bool) {
	n := len(isPrime) - 1

	for p := 2; p*p <= n; p++ {
		if !isPrime[p] {
			continue
		}
		for m := p * p; m <= n; m += p {
			isPrime[m] = false
		}
	}
}

// CountPrimes returns the number of primes in [2, n].
func CountPrimes(n int) int {
	return CountTrue(Sieve(n))
}

// CountTrue returns the number of set entries.
func CountTrue(flags []bool) int {
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}

	return count
}
