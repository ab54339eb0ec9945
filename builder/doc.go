// Package builder produces deterministic core.Graph fixtures: the canonical
// six-node worked example used throughout the docs and tests, plus parametric
// topologies (path, cycle, star, complete, random sparse) for property tests and
// benchmarks.
//
// Every constructor numbers its nodes 1..n (shifted by WithOffset) and emits
// directed edges. WithMirror adds the reverse of every emitted edge with the
// same weight, which is how undirected graphs are expressed in the edge-list
// model.
//
// Determinism: for the same options, seed and constructor order, BuildGraph
// returns identical column contents.
//
// Quick reference:
//
//	Canonical() *core.Graph                         // 6 nodes, 18 directed edges
//	Mirror(edges ...core.Edge) *core.Graph          // edges plus their reverses
//	BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error)
//	Path(n), Cycle(n), Star(n), Complete(n), RandomSparse(n, p)
package builder
