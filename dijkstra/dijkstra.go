// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on a static directed graph with non-negative edge weights.
//
// The minimum-distance node is found with a linear scan over an id-indexed
// distance array rather than a priority queue:
//
//   - Time:  O(V² + E), V = MaxNodeID, E = |edges|.
//   - Space: O(V + E) for the distance/visited arrays and the adjacency arena.
//
// Notes on implementation choices:
//
//   - All input is validated before any working state is allocated.
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - The loop stops as soon as the closest unvisited node is at +Inf. Everything
//     left is disconnected from the source, and this bounds the loop at V rounds.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numgraph/core"
)

// ShortestPaths computes the shortest distance from source to every node id in
// [1, g.MaxNodeID()].
//
// Returns:
//
//   - Distances of length MaxNodeID: 0 for the source, the path cost for
//     reachable nodes, +Inf for unreachable ones, NonExistent for ids that appear
//     in no edge.
//   - err: a validation error, in which case nothing was computed.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g passes core.Graph.Validate (nil, aligned columns, non-empty, ids in range, no NaN).
//  3. No edge has a negative weight (ErrNegativeWeight).
//  4. source appears in some edge (ErrSourceNotFound).
//
// Every error wraps core.ErrInvalidArgument.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source core.NodeID, opts ...Option) (Distances, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if source < 1 || !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	r := newRunner(core.NewAdjacency(g), cfg)
	r.init(source)
	r.process()

	return r.result(), nil
}

// AllPairs runs ShortestPaths from every id in [1, g.MaxNodeID()] over a single
// shared adjacency arena. Row i holds the distances from id i+1, or nil when that
// id is not in the node set.
//
// Validation is the same as ShortestPaths minus the source check.
//
// Complexity: O(V · (V² + E)) time, O(V²) space for the result.
func AllPairs(g *core.Graph, opts ...Option) ([]Distances, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	adj := core.NewAdjacency(g)
	rows := make([]Distances, adj.MaxNodeID())
	r := newRunner(adj, cfg)
	for src := 1; src <= adj.MaxNodeID(); src++ {
		if !adj.Present(src) {
			continue
		}
		r.init(src)
		r.process()
		rows[src-1] = r.result()
	}

	return rows, nil
}

// prepare resolves options and validates everything except the source.
func prepare(g *core.Graph, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	if err := g.Validate(); err != nil {
		return cfg, fmt.Errorf("dijkstra: %w", err)
	}
	for i, w := range g.Weight {
		if w < 0 {
			return cfg, fmt.Errorf("%w: edge %d is %d→%d weight=%v",
				ErrNegativeWeight, i, g.From[i], g.To[i], w)
		}
	}

	return cfg, nil
}

// runner holds the mutable state for Dijkstra executions over one arena.
// Slices are indexed by node id; slot 0 is unused.
type runner struct {
	adj     *core.Adjacency // read-only arcs
	options Options
	dist    []float64 // current best distance from the source
	visited []bool    // distance is final
}

// newRunner allocates the per-id arrays once, sized to the arena.
func newRunner(adj *core.Adjacency, cfg Options) *runner {
	n := adj.MaxNodeID() + 1

	return &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
	}
}

// init resets the arrays for a new source: dist = +Inf, visited = false,
// dist[source] = 0.
func (r *runner) init(source core.NodeID) {
	inf := math.Inf(1)
	for id := range r.dist {
		r.dist[id] = inf
		r.visited[id] = false
	}
	r.dist[source] = 0
}

// process is the main loop. Each round finalizes the closest unvisited node.
//
// Loop termination conditions:
//
//   - Every id has been visited.
//   - The closest unvisited id is at +Inf: the rest is disconnected.
func (r *runner) process() {
	for round := 1; round < len(r.dist); round++ {
		u := r.closest()
		if u == 0 || math.IsInf(r.dist[u], 1) {
			return
		}
		r.relax(u)
		r.visited[u] = true
	}
}

// closest scans ids in ascending order and returns the unvisited id with the
// smallest distance, or 0 when every id is visited. The strict comparison keeps
// the lowest id on ties.
func (r *runner) closest() core.NodeID {
	var best core.NodeID
	for id := 1; id < len(r.dist); id++ {
		if r.visited[id] {
			continue
		}
		if best == 0 || r.dist[id] < r.dist[best] {
			best = id
		}
	}

	return best
}

// relax examines each arc leaving u and lowers the distance of unvisited heads
// when going through u is strictly shorter.
//
// Arcs at or above InfEdgeThreshold are skipped, and so are candidates beyond
// MaxDistance; those nodes keep +Inf unless another path brings them in range.
func (r *runner) relax(u core.NodeID) {
	heads, weights := r.adj.Arcs(u)
	var v core.NodeID
	var cand float64
	for i, w := range weights {
		v = heads[i]
		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		cand = r.dist[u] + w
		if cand > r.options.MaxDistance {
			continue
		}
		if cand < r.dist[v] {
			r.dist[v] = cand
		}
	}
}

// result shapes the working array into Distances over [1, max], marking ids
// outside the node set as NonExistent.
func (r *runner) result() Distances {
	out := make(Distances, len(r.dist)-1)
	for id := 1; id < len(r.dist); id++ {
		if !r.adj.Present(id) {
			out[id-1] = NonExistent
			continue
		}
		out[id-1] = Distance{Value: r.dist[id], Exists: true}
	}

	return out
}
