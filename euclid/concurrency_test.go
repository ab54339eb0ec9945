// SPDX-License-Identifier: MIT

package euclid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numgraph/euclid"
)

// TestGCD_ConcurrentCalls runs many GCD calls in parallel; with no shared state
// every goroutine must see the sequential answer.
func TestGCD_ConcurrentCalls(t *testing.T) {
	const workers = 64
	var eg errgroup.Group
	for i := 1; i <= workers; i++ {
		i := i
		eg.Go(func() error {
			a, b := int64(i*360), int64(i*84)
			got, err := euclid.GCD(a, b)
			if err != nil {
				return err
			}
			if want := int64(i * 12); got != want {
				return fmt.Errorf("GCD(%d, %d) = %d; want %d", a, b, got, want)
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
