// SPDX-License-Identifier: MIT

package euclid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numgraph/core"
)

// Sentinel errors returned by the euclid functions.
var (
	// ErrOverflow indicates that the mathematically correct result cannot be
	// represented in the operand type.
	ErrOverflow = errors.New("euclid: result overflows operand type")

	// ErrNoOperands indicates that GCDOf received an empty list.
	ErrNoOperands = fmt.Errorf("euclid: no operands: %w", core.ErrInvalidArgument)

	// ErrNotFinite indicates a NaN or infinite float operand.
	ErrNotFinite = fmt.Errorf("euclid: operand is not finite: %w", core.ErrInvalidArgument)

	// ErrNotIntegral indicates a float operand with a fractional part.
	ErrNotIntegral = fmt.Errorf("euclid: operand is not an integer: %w", core.ErrInvalidArgument)

	// ErrOutOfRange indicates a float operand whose magnitude exceeds MaxExactFloat.
	ErrOutOfRange = fmt.Errorf("euclid: operand exceeds exact float range: %w", core.ErrInvalidArgument)
)

// MaxExactFloat is the largest magnitude GCDFloat accepts: 2^53, the end of the
// range in which float64 represents every integer exactly.
const MaxExactFloat = 1 << 53
