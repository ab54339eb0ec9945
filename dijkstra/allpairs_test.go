package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numgraph/builder"
	"github.com/katalvlaran/numgraph/core"
	"github.com/katalvlaran/numgraph/dijkstra"
)

func TestAllPairs_Canonical(t *testing.T) {
	g := builder.Canonical()
	rows, err := dijkstra.AllPairs(g)
	require.NoError(t, err)
	require.Len(t, rows, builder.CanonicalNodes)

	for src := 1; src <= builder.CanonicalNodes; src++ {
		want, err := dijkstra.ShortestPaths(g, src)
		require.NoError(t, err)
		assert.Equal(t, want, rows[src-1], "row %d", src)
	}

	// Undirected input gives a symmetric matrix.
	for i := range rows {
		for j := range rows {
			assert.Equal(t, rows[i][j].Value, rows[j][i].Value, "d(%d,%d)", i+1, j+1)
		}
	}
}

func TestAllPairs_GapRowIsNil(t *testing.T) {
	g := core.NewGraph(
		core.Edge{From: 1, To: 3, Weight: 1},
		core.Edge{From: 3, To: 1, Weight: 2},
	)
	rows, err := dijkstra.AllPairs(g)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "[0 NA 1]", rows[0].String())
	assert.Nil(t, rows[1])
	assert.Equal(t, "[2 NA 0]", rows[2].String())
}

func TestAllPairs_Validation(t *testing.T) {
	_, err := dijkstra.AllPairs(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	g := core.NewGraph(core.Edge{From: 1, To: 2, Weight: -1})
	_, err = dijkstra.AllPairs(g)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.AllPairs(builder.Canonical(), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

func TestAllPairs_AppliesOptions(t *testing.T) {
	rows, err := dijkstra.AllPairs(builder.Canonical(), dijkstra.WithMaxDistance(9))
	require.NoError(t, err)
	assert.Equal(t, "[0 7 9 +Inf +Inf +Inf]", rows[0].String())
	assert.Equal(t, "[9 +Inf 0 +Inf +Inf 2]", rows[2].String())
}
