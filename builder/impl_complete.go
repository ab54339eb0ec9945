// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// impl_complete.go - Complete(n): every ordered pair i→j, i != j, row-major.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor for the complete directed graph K_n, with
// n·(n-1) edges each drawing its own weight. Combined with WithMirror every
// ordered pair gets two parallel edges.
func Complete(n int) Constructor {
	return func(s *sink) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					s.edge(i, j)
				}
			}
		}

		return nil
	}
}
