// Package euclid computes greatest common divisors and least common multiples
// with Euclid's remainder algorithm.
//
// Overview:
//
//   - GCD repeatedly replaces (a, b) with (b, a mod b) until b reaches zero; the
//     last non-zero a is the result. The loop runs O(log min(|a|, |b|)) times.
//   - All functions operate on absolute values, so the sign of an operand never
//     changes the result and no host remainder convention leaks through:
//     GCD(-12, 18) == GCD(12, -18) == 6.
//   - GCD(a, 0) == |a|, GCD(0, b) == |b|, GCD(0, 0) == 0.
//
// API reference:
//
//	func GCD[T constraints.Integer](a, b T) (T, error)
//	func GCDOf[T constraints.Integer](values ...T) (T, error)
//	func LCM[T constraints.Integer](a, b T) (T, error)
//	func GCDFloat(a, b float64) (float64, error)
//
// Arithmetic is carried out in uint64, so every magnitude of every integer type
// is representable during the computation. The result is then narrowed back to
// T; the only results that do not fit are 2^(n-1) for an n-bit signed type,
// e.g. GCD(math.MinInt64, 0). Those report ErrOverflow instead of wrapping.
//
// GCDFloat serves callers whose numbers arrive as float64 (parsed tables, JSON).
// It accepts only finite, integral values within ±2^53, where float64 still
// represents every integer exactly.
//
// Error handling (sentinel errors):
//
//   - ErrOverflow:    the result does not fit in the operand type.
//   - ErrNoOperands:  GCDOf called with no values.
//   - ErrNotFinite:   GCDFloat operand is NaN or ±Inf.
//   - ErrNotIntegral: GCDFloat operand has a fractional part.
//   - ErrOutOfRange:  GCDFloat operand magnitude exceeds 2^53.
//
// All but ErrOverflow wrap core.ErrInvalidArgument.
//
// Thread safety: every function is pure and safe for concurrent use.
package euclid
