package euclid_test

import (
	"testing"

	"github.com/katalvlaran/numgraph/euclid"
)

// sink keeps the compiler from discarding benchmark results.
var sink int64

// BenchmarkGCD_Consecutive uses consecutive Fibonacci numbers, Euclid's worst case.
func BenchmarkGCD_Consecutive(b *testing.B) {
	const fibA, fibB = 7540113804746346429, 4660046610375530309
	for i := 0; i < b.N; i++ {
		sink, _ = euclid.GCD(int64(fibA), int64(fibB))
	}
}

// BenchmarkGCD_Small benchmarks small operands that finish in a few steps.
func BenchmarkGCD_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = euclid.GCD(int64(1000+i%7), int64(100))
	}
}
