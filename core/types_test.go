// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction, queries and validation.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numgraph/core"
)

// triangle is a small directed graph with a gap at id 3.
func triangle() *core.Graph {
	return core.NewGraph(
		core.Edge{From: 1, To: 2, Weight: 1.5},
		core.Edge{From: 2, To: 4, Weight: 2},
		core.Edge{From: 4, To: 1, Weight: 0},
	)
}

func TestNewGraph_PreservesRowOrder(t *testing.T) {
	g := triangle()

	require.Equal(t, 3, g.Len())
	assert.Equal(t, []core.NodeID{1, 2, 4}, g.From)
	assert.Equal(t, []core.NodeID{2, 4, 1}, g.To)
	assert.Equal(t, []float64{1.5, 2, 0}, g.Weight)
	assert.Equal(t, core.Edge{From: 2, To: 4, Weight: 2}, g.Edge(1))
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 1.5},
		{From: 2, To: 4, Weight: 2},
		{From: 4, To: 1, Weight: 0},
	}, g.Edges())
}

func TestFromColumns(t *testing.T) {
	from := []core.NodeID{1, 2}
	to := []core.NodeID{2, 3}
	w := []float64{5, 6}

	g, err := core.FromColumns(from, to, w)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	// The graph owns its columns.
	from[0] = 99
	w[1] = -1
	assert.Equal(t, core.NodeID(1), g.From[0])
	assert.Equal(t, 6.0, g.Weight[1])

	_, err = core.FromColumns(from, to, []float64{1})
	assert.ErrorIs(t, err, core.ErrColumnMismatch)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestGraph_Nodes(t *testing.T) {
	g := triangle()

	assert.Equal(t, []core.NodeID{1, 2, 4}, g.Nodes())
	assert.Equal(t, core.NodeID(4), g.MaxNodeID())
	assert.True(t, g.HasNode(4))
	assert.False(t, g.HasNode(3), "id 3 is inside the range but not in any edge")
	assert.False(t, g.HasNode(5))

	var empty core.Graph
	assert.Nil(t, empty.Nodes())
	assert.Equal(t, core.NodeID(0), empty.MaxNodeID())
	assert.False(t, empty.HasNode(1))
}

func TestGraph_NilReceiverQueries(t *testing.T) {
	var g *core.Graph

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Edges())
	assert.Nil(t, g.Nodes())
	assert.Nil(t, g.Clone())
	assert.ErrorIs(t, g.Validate(), core.ErrNilGraph)
}

func TestGraph_Validate(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want error
	}{
		{"valid", triangle(), nil},
		{"misaligned weight", &core.Graph{From: []int{1}, To: []int{2}, Weight: nil}, core.ErrColumnMismatch},
		{"misaligned to", &core.Graph{From: []int{1, 2}, To: []int{2}, Weight: []float64{1, 1}}, core.ErrColumnMismatch},
		{"empty", &core.Graph{}, core.ErrEmptyGraph},
		{"zero origin", core.NewGraph(core.Edge{From: 0, To: 1, Weight: 1}), core.ErrBadNodeID},
		{"negative destination", core.NewGraph(core.Edge{From: 1, To: -3, Weight: 1}), core.ErrBadNodeID},
		{"largest supported id", core.NewGraph(core.Edge{From: 1, To: core.MaxSupportedNodeID, Weight: 1}), nil},
		{"id above ceiling", core.NewGraph(core.Edge{From: core.MaxSupportedNodeID + 1, To: 1, Weight: 1}), core.ErrBadNodeID},
		{"max int destination", core.NewGraph(core.Edge{From: 1, To: math.MaxInt, Weight: 1}), core.ErrBadNodeID},
		{"nan weight", core.NewGraph(core.Edge{From: 1, To: 2, Weight: math.NaN()}), core.ErrBadWeight},
		{"infinite weight is allowed", core.NewGraph(core.Edge{From: 1, To: 2, Weight: math.Inf(1)}), nil},
		{"negative weight is left to algorithms", core.NewGraph(core.Edge{From: 1, To: 2, Weight: -1}), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, errors.Is(err, core.ErrInvalidArgument), "every validation error is an invalid argument")
		})
	}
}

func TestGraph_Clone(t *testing.T) {
	g := triangle()
	c := g.Clone()

	require.Equal(t, g, c)
	c.Weight[0] = 42
	c.From[2] = 7
	assert.Equal(t, 1.5, g.Weight[0], "clone must not share the weight column")
	assert.Equal(t, core.NodeID(4), g.From[2], "clone must not share the origin column")
}

func TestGraph_Columns(t *testing.T) {
	g := triangle()
	from, to, w := g.Columns()
	assert.Equal(t, g.From, from)
	assert.Equal(t, g.To, to)
	assert.Equal(t, g.Weight, w)

	from[0] = 99
	assert.NotEqual(t, 99, g.From[0], "Columns must return copies")

	var empty *core.Graph
	f, tt, ww := empty.Columns()
	assert.Nil(t, f)
	assert.Nil(t, tt)
	assert.Nil(t, ww)
}
