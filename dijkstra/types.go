// Package dijkstra defines the result types, sentinel errors and configuration
// options for the linear-scan Dijkstra implementation.
//
// Options:
//
//	– MaxDistance:      nodes farther than this from the source are not finalized
//	                    and are reported as unreachable (+Inf).
//	– InfEdgeThreshold: arcs with weight >= this threshold are impassable.
//
// Errors (sentinel, all wrap core.ErrInvalidArgument):
//
//	– ErrSourceNotFound  if the source id does not appear in any edge.
//	– ErrNegativeWeight  if any edge weight is negative.
//	– ErrBadMaxDistance  if MaxDistance is negative or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold is zero, negative or NaN.
//
// Structural graph errors (core.ErrNilGraph, core.ErrColumnMismatch,
// core.ErrEmptyGraph, core.ErrBadNodeID, core.ErrBadWeight) are passed through
// with a "dijkstra:" prefix.
package dijkstra

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numgraph/core"
)

// Sentinel errors returned by ShortestPaths and AllPairs.
var (
	// ErrSourceNotFound indicates that the source id is not in the node set.
	ErrSourceNotFound = fmt.Errorf("dijkstra: source node not found in graph: %w", core.ErrInvalidArgument)

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", core.ErrInvalidArgument)

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = fmt.Errorf("dijkstra: MaxDistance must be non-negative: %w", core.ErrInvalidArgument)

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or
	// NaN, which would make every edge impassable.
	ErrBadInfThreshold = fmt.Errorf("dijkstra: InfEdgeThreshold must be positive: %w", core.ErrInvalidArgument)
)

// Distance is the shortest-path result for one node id.
//
// The four cases a caller can observe:
//
//	source       Exists && Value == 0
//	reachable    Exists && finite Value
//	unreachable  Exists && Value == +Inf
//	non-existent !Exists (the id lies in [1, max] but is in no edge); Value is NaN
type Distance struct {
	Value  float64 // path cost from the source
	Exists bool    // id is part of the node set
}

// NonExistent marks an id in range that does not belong to the graph.
var NonExistent = Distance{Value: math.NaN(), Exists: false}

// Reachable reports whether the node exists and has a finite distance.
func (d Distance) Reachable() bool {
	return d.Exists && !math.IsInf(d.Value, 1)
}

// String renders the distance as a number, "+Inf" for unreachable nodes, and
// "NA" for ids outside the node set.
func (d Distance) String() string {
	if !d.Exists {
		return "NA"
	}

	return strconv.FormatFloat(d.Value, 'g', -1, 64)
}

// Distances holds one Distance per node id in ascending order: index i is id i+1.
type Distances []Distance

// At returns the distance for id and whether id is within [1, len(ds)].
func (ds Distances) At(id core.NodeID) (Distance, bool) {
	if id < 1 || id > len(ds) {
		return Distance{}, false
	}

	return ds[id-1], true
}

// Values returns the raw distance values; non-existent ids become NaN.
func (ds Distances) Values() []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		if !d.Exists {
			out[i] = math.NaN()
			continue
		}
		out[i] = d.Value
	}

	return out
}

// String renders the vector as "[0 7 +Inf NA]".
func (ds Distances) String() string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Options configures ShortestPaths and AllPairs.
//
// MaxDistance      – cap on explored distance. Must be >= 0. Default +Inf (no cap).
// InfEdgeThreshold – arcs with weight >= threshold are skipped. Must be > 0.
//
//	Default +Inf, so only arcs whose weight is itself +Inf are skipped.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Nodes whose shortest
// distance would exceed it are reported as +Inf.
// A negative or NaN value makes ShortestPaths return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which arcs are treated as
// impassable walls.
// A zero, negative or NaN value makes ShortestPaths return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable threshold below +Inf.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// validate checks the resolved options.
func (o Options) validate() error {
	if math.IsNaN(o.MaxDistance) || o.MaxDistance < 0 {
		return fmt.Errorf("%w: got %v", ErrBadMaxDistance, o.MaxDistance)
	}
	if math.IsNaN(o.InfEdgeThreshold) || o.InfEdgeThreshold <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadInfThreshold, o.InfEdgeThreshold)
	}

	return nil
}
