// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// impl_star.go - Star(n): center 0 with spokes 0→i for i = 1..n-1.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds an out-star with n nodes.
func Star(n int) Constructor {
	return func(s *sink) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			s.edge(0, i)
		}

		return nil
	}
}
