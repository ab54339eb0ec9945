// SPDX-License-Identifier: MIT
// File: methods.go
// Role: read-only queries over the edge columns and structural validation.
// Determinism:
//   - Edges() preserves row order.
//   - Nodes() returns ids sorted ascending.

package core

import (
	"fmt"
	"math"
	"slices"
)

// Len returns the number of edges (rows). On a misaligned graph it returns the
// length of the shortest column, which is the number of complete rows.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return min(len(g.From), len(g.To), len(g.Weight))
}

// Edge returns row i as an Edge. It panics if i is out of range, like a slice
// index would.
func (g *Graph) Edge(i int) Edge {
	return Edge{From: g.From[i], To: g.To[i], Weight: g.Weight[i]}
}

// Edges returns a copy of all complete rows in order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	n := g.Len()
	out := make([]Edge, n)
	for i := 0; i < n; i++ {
		out[i] = g.Edge(i)
	}

	return out
}

// Columns returns copies of the three columns, trimmed to Len.
func (g *Graph) Columns() (from, to []NodeID, weight []float64) {
	n := g.Len()
	if n == 0 {
		return nil, nil, nil
	}

	return slices.Clone(g.From[:n]), slices.Clone(g.To[:n]), slices.Clone(g.Weight[:n])
}

// Nodes returns the node set: every id appearing in From or To, sorted ascending
// and de-duplicated.
// Complexity: O(E log E).
func (g *Graph) Nodes() []NodeID {
	n := g.Len()
	if n == 0 {
		return nil
	}
	ids := make([]NodeID, 0, 2*n)
	ids = append(ids, g.From[:n]...)
	ids = append(ids, g.To[:n]...)
	slices.Sort(ids)

	return slices.Compact(ids)
}

// HasNode reports whether id appears in any edge.
// Complexity: O(E).
func (g *Graph) HasNode(id NodeID) bool {
	n := g.Len()
	for i := 0; i < n; i++ {
		if g.From[i] == id || g.To[i] == id {
			return true
		}
	}

	return false
}

// MaxNodeID returns the largest id appearing in any edge, or 0 for an empty graph.
// Complexity: O(E).
func (g *Graph) MaxNodeID() NodeID {
	var hi NodeID
	n := g.Len()
	for i := 0; i < n; i++ {
		hi = max(hi, g.From[i], g.To[i])
	}

	return hi
}

// Validate checks the structural contract every algorithm relies on.
//
// Checks, in order (the first failure wins):
//  1. g != nil                                  (ErrNilGraph)
//  2. len(From) == len(To) == len(Weight)       (ErrColumnMismatch)
//  3. at least one edge                         (ErrEmptyGraph)
//  4. every From/To id in [1, MaxSupportedNodeID] (ErrBadNodeID)
//  5. no NaN weight                             (ErrBadWeight)
//
// Sign of the weights is deliberately not checked here: whether a negative
// weight is acceptable is up to the algorithm.
//
// Complexity: O(E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	if len(g.From) != len(g.To) || len(g.From) != len(g.Weight) {
		return fmt.Errorf("%w: len(From)=%d len(To)=%d len(Weight)=%d",
			ErrColumnMismatch, len(g.From), len(g.To), len(g.Weight))
	}
	if len(g.From) == 0 {
		return ErrEmptyGraph
	}

	for i := range g.From {
		if !validID(g.From[i]) || !validID(g.To[i]) {
			return fmt.Errorf("%w: edge %d is %d→%d", ErrBadNodeID, i, g.From[i], g.To[i])
		}
		if math.IsNaN(g.Weight[i]) {
			return fmt.Errorf("%w: edge %d is %d→%d", ErrBadWeight, i, g.From[i], g.To[i])
		}
	}

	return nil
}

// validID reports whether id is usable as an array index by the algorithms.
func validID(id NodeID) bool {
	return id >= 1 && id <= MaxSupportedNodeID
}
