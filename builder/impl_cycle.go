// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// impl_cycle.go - Cycle(n): edges i→(i+1) mod n.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sink) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.edge(i, (i+1)%n)
		}

		return nil
	}
}
