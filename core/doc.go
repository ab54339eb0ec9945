// Package core defines the edge-list Graph consumed by the numgraph algorithms,
// plus the dense adjacency arena the algorithms build from it.
//
// A Graph G = (V,E) is stored as three aligned columns:
//
//	From   []NodeID   // origin of edge i
//	To     []NodeID   // destination of edge i
//	Weight []float64  // cost of edge i
//
// Row i across the three columns is one directed edge. The node set V is implicit:
// it is every id that appears in From or To. Node ids are positive integers and
// need not be contiguous; algorithms index their output over the contiguous range
// [1, MaxNodeID()].
//
// Why columns instead of a map-backed graph?
//
//   - The input is static. There is no mutation API; a Graph is built once
//     (NewGraph, FromColumns or a struct literal) and only read afterwards.
//   - Columns map one-to-one onto the tabular edge lists these graphs usually
//     come from, and Validate can check them in a single O(E) pass.
//   - NewAdjacency turns them into a compressed, id-indexed arena so the hot loop
//     of an algorithm never performs a keyed lookup.
//
// Core Methods:
//
//	// Construction
//	NewGraph(edges ...Edge) *Graph                        // O(E)
//	FromColumns(from, to []NodeID, w []float64) (*Graph, error) // O(E)
//
//	// Query
//	Len() int                 // O(1)
//	Edge(i int) Edge          // O(1)
//	Edges() []Edge            // O(E)
//	Nodes() []NodeID          // O(E log E), sorted unique
//	HasNode(id NodeID) bool   // O(E)
//	MaxNodeID() NodeID        // O(E)
//	Validate() error          // O(E)
//
//	// Arena
//	NewAdjacency(g *Graph) *Adjacency                     // O(V + E)
//	(*Adjacency).Arcs(id) (heads []NodeID, w []float64)   // O(1)
//
// Errors:
//
//	ErrInvalidArgument – root class; every validation sentinel below wraps it
//	ErrNilGraph        – nil *Graph
//	ErrColumnMismatch  – From/To/Weight have different lengths
//	ErrEmptyGraph      – no edges, hence no nodes
//	ErrBadNodeID       – node id < 1 or > MaxSupportedNodeID
//	ErrBadWeight       – NaN weight
//
// Thread safety: a Graph is a plain value with no internal locking. Concurrent
// reads are safe as long as nobody writes to the columns at the same time.
package core
