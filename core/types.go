// SPDX-License-Identifier: MIT
// Package core defines NodeID, Edge, Graph, the sentinel errors shared by the
// module, and the Graph constructors.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every validation failure in this module.
// Callers that only need to know "the input was rejected" should branch on
// errors.Is(err, core.ErrInvalidArgument).
var ErrInvalidArgument = errors.New("invalid argument")

// Sentinel errors for graph validation. Each wraps ErrInvalidArgument.
var (
	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = fmt.Errorf("core: graph is nil: %w", ErrInvalidArgument)

	// ErrColumnMismatch indicates that the From, To and Weight columns do not
	// have the same length, so rows cannot be read as edges.
	ErrColumnMismatch = fmt.Errorf("core: edge columns are not aligned: %w", ErrInvalidArgument)

	// ErrEmptyGraph indicates a graph with no edges. Its node set is empty, so
	// no source can belong to it.
	ErrEmptyGraph = fmt.Errorf("core: graph has no edges: %w", ErrInvalidArgument)

	// ErrBadNodeID indicates a node identifier outside [1, MaxSupportedNodeID].
	ErrBadNodeID = fmt.Errorf("core: node id out of range: %w", ErrInvalidArgument)

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = fmt.Errorf("core: edge weight is NaN: %w", ErrInvalidArgument)
)

// NodeID identifies a node. Valid ids lie in [1, MaxSupportedNodeID].
type NodeID = int

// MaxSupportedNodeID is the largest id Validate accepts. Algorithms allocate
// arrays indexed by id, so the ceiling bounds their memory to a few hundred MiB.
const MaxSupportedNodeID NodeID = 1 << 24

// Edge is one directed, weighted row of a Graph.
type Edge struct {
	// From is the origin node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Weight is the traversal cost From→To.
	Weight float64
}

// Graph is a static directed graph stored as three aligned columns.
//
// Row i (From[i], To[i], Weight[i]) is edge i. The columns are exported so a
// graph can be declared as a literal; Validate reports a misaligned literal with
// ErrColumnMismatch before any algorithm touches it.
type Graph struct {
	From   []NodeID  // origin column
	To     []NodeID  // destination column
	Weight []float64 // weight column
}

// NewGraph builds a Graph from a list of edges, preserving their order.
// Complexity: O(E).
func NewGraph(edges ...Edge) *Graph {
	g := &Graph{
		From:   make([]NodeID, len(edges)),
		To:     make([]NodeID, len(edges)),
		Weight: make([]float64, len(edges)),
	}
	for i, e := range edges {
		g.From[i] = e.From
		g.To[i] = e.To
		g.Weight[i] = e.Weight
	}

	return g
}

// FromColumns builds a Graph from three columns. The columns are copied, so
// later writes to the caller's slices do not affect the graph.
//
// Returns ErrColumnMismatch if the lengths differ.
// Complexity: O(E).
func FromColumns(from, to []NodeID, weight []float64) (*Graph, error) {
	if len(from) != len(to) || len(from) != len(weight) {
		return nil, fmt.Errorf("%w: len(from)=%d len(to)=%d len(weight)=%d",
			ErrColumnMismatch, len(from), len(to), len(weight))
	}

	return &Graph{
		From:   append([]NodeID(nil), from...),
		To:     append([]NodeID(nil), to...),
		Weight: append([]float64(nil), weight...),
	}, nil
}
