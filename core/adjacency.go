// SPDX-License-Identifier: MIT
// File: adjacency.go
// Role: compressed outgoing-arc arena indexed by contiguous node id.
//
// Layout (offset array, as in a static adjacency-array graph):
//
//	offsets[id] .. offsets[id+1]   → slice of heads/weights holding the arcs of id
//	present[id]                    → id occurs in at least one edge
//
// Ids run 1..MaxNodeID; slot 0 is unused so an id indexes the arrays directly.

package core

// Adjacency is a read-only, id-indexed view of a validated Graph's outgoing arcs.
type Adjacency struct {
	offsets []int     // len maxID+2
	heads   []NodeID  // arc destinations, grouped by origin
	weights []float64 // arc weights, aligned with heads
	present []bool    // len maxID+1
}

// NewAdjacency builds the arena for g with a counting sort on the origin column.
// Within one origin, arcs keep their edge-list order.
//
// The caller is expected to have run g.Validate(); ids outside
// [1, MaxSupportedNodeID] would index out of range or over-allocate.
//
// Complexity: O(V + E) time and space, where V = MaxNodeID.
func NewAdjacency(g *Graph) *Adjacency {
	n := g.Len()
	maxID := g.MaxNodeID()

	a := &Adjacency{
		offsets: make([]int, maxID+2),
		heads:   make([]NodeID, n),
		weights: make([]float64, n),
		present: make([]bool, maxID+1),
	}

	// Count arcs per origin, shifted by one so the prefix sum yields start offsets.
	for i := 0; i < n; i++ {
		a.offsets[g.From[i]+1]++
		a.present[g.From[i]] = true
		a.present[g.To[i]] = true
	}
	for id := 1; id < len(a.offsets); id++ {
		a.offsets[id] += a.offsets[id-1]
	}

	// Scatter rows into their origin's bucket.
	cursor := make([]int, maxID+1)
	copy(cursor, a.offsets[:maxID+1])
	var u NodeID
	for i := 0; i < n; i++ {
		u = g.From[i]
		a.heads[cursor[u]] = g.To[i]
		a.weights[cursor[u]] = g.Weight[i]
		cursor[u]++
	}

	return a
}

// Arcs returns the destinations and weights of the arcs leaving id. The returned
// slices alias the arena and must not be modified. Ids outside [1, MaxNodeID]
// have no arcs.
// Complexity: O(1).
func (a *Adjacency) Arcs(id NodeID) ([]NodeID, []float64) {
	if id < 1 || id >= len(a.present) {
		return nil, nil
	}
	lo, hi := a.offsets[id], a.offsets[id+1]

	return a.heads[lo:hi], a.weights[lo:hi]
}

// Present reports whether id occurs in at least one edge.
func (a *Adjacency) Present(id NodeID) bool {
	return id >= 1 && id < len(a.present) && a.present[id]
}

// MaxNodeID returns the largest id the arena covers.
func (a *Adjacency) MaxNodeID() NodeID { return len(a.present) - 1 }

// ArcCount returns the total number of arcs.
func (a *Adjacency) ArcCount() int { return len(a.heads) }
