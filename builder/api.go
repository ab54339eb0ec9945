// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// api.go - public entry points: BuildGraph, Mirror, Canonical.

package builder

import (
	"fmt"

	"github.com/katalvlaran/numgraph/core"
)

// Constructor appends the edges of one topology to s. Constructors validate
// their parameters first and return sentinel errors; they never panic.
type Constructor func(s *sink) error

// sink collects emitted edges under one resolved configuration.
type sink struct {
	cfg   builderConfig
	edges []core.Edge
}

// edge emits i→j (constructor-local indices) and, in mirror mode, j→i with the
// same weight.
func (s *sink) edge(i, j int) {
	u, v := s.cfg.id(i), s.cfg.id(j)
	w := s.cfg.weightFn(s.cfg.rng)
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: w})
	if s.cfg.mirror {
		s.edges = append(s.edges, core.Edge{From: v, To: u, Weight: w})
	}
}

// BuildGraph resolves opts and applies all constructors in order, returning the
// concatenated edge list as a Graph.
//
// Errors:
//   - ErrBadOffset if the last WithOffset was negative.
//   - ErrBadWeight if the last weight option was invalid (including a nil WithWeightFn).
//   - ErrNeedRandSource if a random weight option was used without WithSeed/WithRand.
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: %w".
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.offsetErr != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.offsetErr)
	}
	if cfg.weightErr != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.weightErr)
	}
	if cfg.needsRand && cfg.rng == nil {
		return nil, fmt.Errorf("BuildGraph: random weights: %w", ErrNeedRandSource)
	}

	s := &sink{cfg: cfg}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(s.edges...), nil
}

// Mirror returns a graph holding every edge followed by its reverse.
func Mirror(edges ...core.Edge) *core.Graph {
	out := make([]core.Edge, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e, core.Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	return core.NewGraph(out...)
}

// Canonical graph dimensions.
const (
	CanonicalNodes = 6
	CanonicalEdges = 18
)

// canonicalRoads is the undirected worked example; Canonical mirrors it.
//
//	(5)────9────(6)
//	 │        ╱  │
//	 6      2    │
//	 │    ╱      14
//	(4)─11─(3)   │
//	 │   ╱   │   │
//	15 10    9   │
//	 │╱      │   │
//	(2)──7──(1)──┘
var canonicalRoads = [...]core.Edge{
	{From: 1, To: 2, Weight: 7},
	{From: 1, To: 3, Weight: 9},
	{From: 1, To: 6, Weight: 14},
	{From: 2, To: 3, Weight: 10},
	{From: 2, To: 4, Weight: 15},
	{From: 3, To: 4, Weight: 11},
	{From: 3, To: 6, Weight: 2},
	{From: 4, To: 5, Weight: 6},
	{From: 5, To: 6, Weight: 9},
}

// Canonical returns a fresh copy of the classic Dijkstra worked example:
// 6 nodes and 9 undirected roads, stored as 18 directed edges.
//
// Shortest distances from node 1 are [0 7 9 20 20 11]; from node 3 they are
// [9 10 0 11 11 2].
func Canonical() *core.Graph {
	return Mirror(canonicalRoads[:]...)
}
