// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: deep copies of a Graph.

package core

// Clone returns a deep copy of g: the three columns are copied, including a
// misaligned tail, so Validate on the clone reports exactly what it reports on g.
// A nil graph clones to nil.
//
// Complexity: O(E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}

	return &Graph{
		From:   append([]NodeID(nil), g.From...),
		To:     append([]NodeID(nil), g.To...),
		Weight: append([]float64(nil), g.Weight...),
	}
}
