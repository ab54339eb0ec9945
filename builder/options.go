// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// options.go - builder configuration and its functional options.
//
// Options are applied left to right; the last write to a setting wins, including
// an invalid one, which BuildGraph reports.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/numgraph/core"
)

// DefaultEdgeWeight is the weight of every edge unless a weight option is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight. It must be deterministic for a given rng state.
type WeightFn func(rng *rand.Rand) float64

// builderConfig is the resolved, immutable configuration a Constructor sees.
type builderConfig struct {
	offset    int        // node i is emitted as id i+1+offset
	offsetErr error      // last WithOffset was invalid
	mirror    bool       // also emit v→u for every u→v
	rng       *rand.Rand // nil means no randomness available
	weightFn  WeightFn
	needsRand bool  // weightFn draws from rng
	weightErr error // last weight option was invalid
}

// BuilderOption configures BuildGraph.
type BuilderOption func(*builderConfig)

// newBuilderConfig starts from deterministic defaults and applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a node id.
func (c builderConfig) id(i int) core.NodeID {
	return core.NodeID(i + 1 + c.offset)
}

// WithOffset shifts every emitted id by k, so several BuildGraph results can be
// concatenated into one graph with disjoint components. A negative k would emit
// ids below 1 and makes BuildGraph return ErrBadOffset.
func WithOffset(k int) BuilderOption {
	return func(c *builderConfig) {
		if k < 0 {
			c.offsetErr = fmt.Errorf("offset=%d: %w", k, ErrBadOffset)
			return
		}
		c.offset = k
		c.offsetErr = nil
	}
}

// WithMirror emits the reverse of every edge with the same weight.
func WithMirror() BuilderOption {
	return func(c *builderConfig) { c.mirror = true }
}

// WithRand supplies the random source for stochastic constructors and weights.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithConstantWeight gives every edge weight w (w >= 0).
func WithConstantWeight(w float64) BuilderOption {
	return func(c *builderConfig) {
		if math.IsNaN(w) || w < 0 {
			c.weightErr = ErrBadWeight
			return
		}
		c.weightFn = func(*rand.Rand) float64 { return w }
		c.needsRand = false
		c.weightErr = nil
	}
}

// WithUniformWeight draws each weight uniformly from [lo, hi). Requires a random
// source and 0 <= lo <= hi.
func WithUniformWeight(lo, hi float64) BuilderOption {
	return func(c *builderConfig) {
		if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi < lo {
			c.weightErr = ErrBadWeight
			return
		}
		c.weightFn = func(rng *rand.Rand) float64 { return lo + rng.Float64()*(hi-lo) }
		c.needsRand = true
		c.weightErr = nil
	}
}

// WithIntWeight draws each weight uniformly from the integers [lo, hi]. Integer
// weights keep path sums exact, which makes them convenient in property tests.
func WithIntWeight(lo, hi int) BuilderOption {
	return func(c *builderConfig) {
		if lo < 0 || hi < lo {
			c.weightErr = ErrBadWeight
			return
		}
		c.weightFn = func(rng *rand.Rand) float64 { return float64(lo + rng.Intn(hi-lo+1)) }
		c.needsRand = true
		c.weightErr = nil
	}
}

// WithWeightFn installs a custom weight function. The function receives the
// configured random source, which may be nil. A nil fn makes BuildGraph return
// ErrBadWeight.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.weightErr = fmt.Errorf("nil weight function: %w", ErrBadWeight)
			return
		}
		c.weightFn = fn
		c.needsRand = false
		c.weightErr = nil
	}
}
