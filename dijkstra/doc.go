// Package dijkstra computes single-source shortest-path distances on static,
// directed graphs with non-negative edge weights.
//
// Overview:
//
//   - The graph is a core.Graph: three aligned columns (From, To, Weight). Node
//     ids are positive integers and need not be contiguous.
//   - ShortestPaths returns one Distance per id in [1, MaxNodeID], in ascending
//     id order. Only distances are produced; paths are not reconstructed.
//   - The next node to finalize is chosen by a linear scan of an id-indexed array
//     (ties go to the lowest id). There is no priority queue: the intended graphs
//     are small, and the scan keeps the visiting order fully deterministic.
//
// Result encoding:
//
//	Distance{Value: 0,    Exists: true}   the source
//	Distance{Value: 12.5, Exists: true}   reachable, shortest cost 12.5
//	Distance{Value: +Inf, Exists: true}   in the graph but unreachable
//	NonExistent (Exists: false, NaN)      id in range but in no edge
//
// Performance and complexity:
//
//   - Time:  O(V² + E), where V = MaxNodeID.
//   - At most V rounds; each round scans V ids and relaxes the arcs of one node.
//   - The loop ends early once the closest unvisited node is at +Inf, which is
//     also what guarantees termination on disconnected graphs.
//   - Space: O(V + E): distance and visited arrays plus the adjacency arena.
//
// Error handling (sentinel errors, all wrapping core.ErrInvalidArgument):
//
//   - ErrSourceNotFound:  source does not appear in any edge.
//   - ErrNegativeWeight:  an edge has a negative weight (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance received a negative or NaN value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold received a zero, negative or NaN value.
//   - core.ErrNilGraph, core.ErrColumnMismatch, core.ErrEmptyGraph,
//     core.ErrBadNodeID, core.ErrBadWeight: structural problems with the graph.
//
// Validation always completes before any computation; a failed call returns a
// nil result, never a partial one.
//
// API reference:
//
//	func ShortestPaths(g *core.Graph, source core.NodeID, opts ...Option) (Distances, error)
//	func AllPairs(g *core.Graph, opts ...Option) ([]Distances, error)
//
//	  - opts:
//	      • WithMaxDistance(float64):      do not finalize nodes beyond this distance.
//	      • WithInfEdgeThreshold(float64): treat arcs with weight ≥ threshold as walls.
//
// Thread safety:
//
//   - Each call allocates its own working state; there is no package-level
//     mutable state, so concurrent calls are safe.
//   - The graph is only read. Do not modify its columns while a call is running.
//
// Example usage:
//
//	g := builder.Canonical()
//	dist, err := dijkstra.ShortestPaths(g, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist) // [0 7 9 20 20 11]
package dijkstra
