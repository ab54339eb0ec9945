// SPDX-License-Identifier: MIT

package euclid

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of |a| and |b|.
//
// Returns ErrOverflow only when the result is 2^(n-1) for an n-bit signed T,
// which happens for GCD(MinInt, 0), GCD(0, MinInt) and GCD(MinInt, MinInt).
//
// Complexity: O(log min(|a|, |b|)).
func GCD[T constraints.Integer](a, b T) (T, error) {
	return narrow[T](gcd(magnitude(a), magnitude(b)))
}

// GCDOf folds GCD over values. A single value yields its absolute value.
// Returns ErrNoOperands for an empty list, ErrOverflow as GCD does.
//
// Complexity: O(n · log max|v|).
func GCDOf[T constraints.Integer](values ...T) (T, error) {
	if len(values) == 0 {
		return 0, ErrNoOperands
	}

	var acc uint64
	for _, v := range values {
		acc = gcd(acc, magnitude(v))
		if acc == 1 {
			break // nothing left to divide out
		}
	}

	return narrow[T](acc)
}

// LCM returns the least common multiple of |a| and |b|; LCM(x, 0) == 0.
// Returns ErrOverflow if the multiple does not fit in T.
//
// The product is formed as (|a| / gcd) · |b| so intermediate values never exceed
// the result.
func LCM[T constraints.Integer](a, b T) (T, error) {
	ua, ub := magnitude(a), magnitude(b)
	if ua == 0 || ub == 0 {
		return 0, nil
	}

	hi, lo := bits.Mul64(ua/gcd(ua, ub), ub)
	if hi != 0 {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrOverflow, a, b)
	}

	return narrow[T](lo)
}

// GCDFloat is GCD for integral values carried in float64.
//
// Validation (per operand, a first):
//   - NaN or ±Inf          → ErrNotFinite
//   - fractional part      → ErrNotIntegral
//   - |x| > MaxExactFloat  → ErrOutOfRange
//
// Validation happens before any arithmetic; on error the result is 0.
func GCDFloat(a, b float64) (float64, error) {
	ua, err := exactMagnitude(a)
	if err != nil {
		return 0, err
	}
	ub, err := exactMagnitude(b)
	if err != nil {
		return 0, err
	}

	return float64(gcd(ua, ub)), nil
}

// gcd is Euclid's remainder loop on magnitudes.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// magnitude returns |x| as uint64. For signed types the negation happens after
// the conversion, so |MinInt64| == 1<<63 is exact.
func magnitude[T constraints.Integer](x T) uint64 {
	if x < 0 {
		return -uint64(x)
	}

	return uint64(x)
}

// narrow converts a magnitude back to T, reporting values T cannot hold.
func narrow[T constraints.Integer](u uint64) (T, error) {
	v := T(u)
	if v < 0 || uint64(v) != u {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, u)
	}

	return v, nil
}

// exactMagnitude validates a float operand and returns its magnitude.
func exactMagnitude(x float64) (uint64, error) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, x)
	case math.Trunc(x) != x:
		return 0, fmt.Errorf("%w: %v", ErrNotIntegral, x)
	case math.Abs(x) > MaxExactFloat:
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}

	return uint64(math.Abs(x)), nil
}
