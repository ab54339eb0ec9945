// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// impl_path.go - Path(n): edges (i-1)→i for i = 1..n-1.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sink) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			s.edge(i-1, i)
		}

		return nil
	}
}
