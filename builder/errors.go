// SPDX-License-Identifier: MIT
// Package: numgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is(err, ErrX). Implementations attach context with
// %w; sentinels never carry parameters themselves.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the minimum for the requested
// constructor (Path/Star/Complete need 2, Cycle needs 3, RandomSparse needs 1).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or weight function
// ran without a random source (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeight indicates a weight option that would produce negative or NaN weights.
var ErrBadWeight = errors.New("builder: weight must be a non-negative number")

// ErrBadOffset indicates a negative WithOffset, which would produce ids below 1.
var ErrBadOffset = errors.New("builder: offset must be non-negative")

// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
