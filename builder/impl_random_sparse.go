// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): each ordered pair i→j (i != j)
// is kept independently with probability p.
//
// Determinism: pairs are visited row-major, so a fixed seed yields a fixed graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a G(n, p) directed random graph.
// An rng is required when 0 < p < 1. Nodes that end up with no incident edge
// are not part of the resulting node set.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := s.cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p == probMax || (p > probMin && rng.Float64() < p) {
					s.edge(i, j)
				}
			}
		}

		return nil
	}
}
