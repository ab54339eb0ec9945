// Package numgraph is a small numeric and graph toolkit: Euclid's greatest
// common divisor and Dijkstra's single-source shortest paths over an edge-list
// graph.
//
// What is inside?
//
//	• core/     – the edge-list Graph (three aligned columns), validation,
//	              node-set queries and the id-indexed Adjacency arena
//	• dijkstra/ – ShortestPaths and AllPairs with linear-scan minimum selection
//	• euclid/   – generic GCD, GCDOf, LCM and the integrality-checking GCDFloat
//	• builder/  – the canonical six-city fixture and deterministic generators
//	              (Path, Cycle, Star, Complete, RandomSparse)
//	• examples/ – runnable programs
//
// Every call is synchronous and keeps its working state local, so a single
// Graph may be shared by any number of goroutines.
//
// Errors are sentinels matched with errors.Is. All input validation failures
// wrap core.ErrInvalidArgument.
//
// Quick example:
//
//	g := builder.Canonical()
//	dist, err := dijkstra.ShortestPaths(g, 1)
//	// dist: [0 7 9 20 20 11]
//
//	d, err := euclid.GCD(123612, 13892347912)
//	// d: 4
//
//	go get github.com/katalvlaran/numgraph
package numgraph
