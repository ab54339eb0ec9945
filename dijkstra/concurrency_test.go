package dijkstra_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numgraph/builder"
	"github.com/katalvlaran/numgraph/dijkstra"
)

// TestShortestPaths_ConcurrentCallers shares one graph between many goroutines.
// Each call owns its working arrays, so results must match the sequential ones.
func TestShortestPaths_ConcurrentCallers(t *testing.T) {
	g := builder.Canonical()
	want, err := dijkstra.AllPairs(g)
	require.NoError(t, err)

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(16)
	for w := 0; w < 96; w++ {
		src := w%builder.CanonicalNodes + 1
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			got, err := dijkstra.ShortestPaths(g, src)
			if err != nil {
				return err
			}
			if got.String() != want[src-1].String() {
				return fmt.Errorf("source %d: got %v, want %v", src, got, want[src-1])
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
