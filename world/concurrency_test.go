package world_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/world"
)

// TestConcurrentQueries runs the same queries from many goroutines and
// checks every one assembles the reference expression.
func TestConcurrentQueries(t *testing.T) {
	w := diblocks(t)
	ref, err := w.FormFactor("T")
	require.NoError(t, err)
	refPsi, err := w.PhaseFactor("T:D1:b1.end2", "T:D2:b2.end2", world.WithDepth(1))
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				res, err := w.FormFactor("T")
				if err != nil {
					errs <- err
					return
				}
				assert.Equal(t, ref.String(), res.String())
				return
			}
			res, err := w.PhaseFactor("T:D1:b1.end2", "T:D2:b2.end2", world.WithDepth(1))
			if err != nil {
				errs <- err
				return
			}
			assert.Equal(t, refPsi.String(), res.String())
			assert.Equal(t, refPsi.Params.Names(), res.Params.Names())
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// TestConcurrentGrowth adds sub-units while other goroutines query the
// existing ones.
func TestConcurrentGrowth(t *testing.T) {
	w := newWorld()
	gid, err := w.AddKind(subunit.KindGaussianPolymer, "hub", "poly")
	require.NoError(t, err)

	names := []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7"}
	var wg sync.WaitGroup
	wg.Add(2 * len(names))
	for _, n := range names {
		go func(n string) {
			defer wg.Done()
			_, err := w.LinkKind(subunit.KindGaussianPolymer, n+".end1", "hub.contour#"+n, "poly")
			assert.NoError(t, err)
		}(n)
		go func() {
			defer wg.Done()
			_, err := w.FormFactor("hub")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err = w.AddStructure(gid, "star")
	require.NoError(t, err)
	pairs, err := w.CountPairs("star")
	require.NoError(t, err)
	n := float64(len(names) + 1)
	assert.Equal(t, n*n, value(t, pairs, nil))
}

// TestQueryContext verifies that a cancelled context stops a query.
func TestQueryContext(t *testing.T) {
	w := diblocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.FormFactor("T", world.WithContext(ctx))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
