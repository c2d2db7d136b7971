package bfs_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/bfs"
	"github.com/Tobionecenobi/SEB/errors"
)

// adjacency turns a symmetric edge list into a Neighbors callback that keeps
// insertion order.
func adjacency(edges ...[2]string) bfs.Neighbors {
	adj := map[string][]string{}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return func(id string) ([]string, error) { return adj[id], nil }
}

func is(target string) bfs.Goal { return func(id string) bool { return id == target } }

// path returns the seed-to-Found path of a successful search.
func path(t *testing.T, res *bfs.Result) []string {
	t.Helper()
	p, err := res.PathTo(res.Found)
	require.NoError(t, err)
	return p
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	next := adjacency([2]string{"A", "B"})

	_, err := bfs.Search(nil, next, is("B"))
	assert.True(t, errors.Is(err, bfs.ErrNoSeeds))
	_, err = bfs.Search([]string{"A"}, nil, is("B"))
	assert.True(t, errors.Is(err, bfs.ErrNilCallback))
	_, err = bfs.Search([]string{"A"}, next, nil)
	assert.True(t, errors.Is(err, bfs.ErrNilCallback))
}

// TestSearch_ShortestPath verifies the fewest-step route wins over a longer one.
func TestSearch_ShortestPath(t *testing.T) {
	next := adjacency(
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "K"},
		[2]string{"A", "E"}, [2]string{"E", "F"}, [2]string{"F", "K"},
	)
	res, err := bfs.Search([]string{"A"}, next, is("K"))
	require.NoError(t, err)
	assert.Equal(t, "K", res.Found)
	assert.Equal(t, []string{"A", "E", "F", "K"}, path(t, res))
	assert.Equal(t, 3, res.Depth["K"])
}

// TestSearch_GoalOnDiscovery verifies seeds are never tested and the goal
// fires on the first discovered match.
func TestSearch_GoalOnDiscovery(t *testing.T) {
	next := adjacency([2]string{"X.a", "X.b"}, [2]string{"X.b", "Y.a"}, [2]string{"X.a", "Y.b"})
	goal := func(id string) bool { return strings.HasPrefix(id, "X.") }

	// X.a is a seed and matches the predicate, but is not tested.
	res, err := bfs.Search([]string{"X.a"}, next, goal)
	require.NoError(t, err)
	assert.Equal(t, []string{"X.a", "X.b"}, path(t, res))
}

// TestSearch_MultiSeed verifies every seed starts at depth 0 and the first
// seed in order wins ties.
func TestSearch_MultiSeed(t *testing.T) {
	next := adjacency([2]string{"S1", "T"}, [2]string{"S2", "T"})
	res, err := bfs.Search([]string{"S1", "S2"}, next, is("T"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "T"}, path(t, res))
	assert.Equal(t, 0, res.Depth["S2"])

	res, err = bfs.Search([]string{"S2", "S1"}, next, is("T"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S2", "T"}, path(t, res))
}

// TestSearch_NoPath verifies an exhausted frontier reports ErrNoPath with the
// partial result.
func TestSearch_NoPath(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"C", "D"})
	res, err := bfs.Search([]string{"A"}, next, is("D"))
	assert.True(t, errors.Is(err, bfs.ErrNoPath))
	require.NotNil(t, res)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.Empty(t, res.Found)
	_, err = res.PathTo("D")
	assert.True(t, errors.Is(err, bfs.ErrNoPath))
}

// TestSearch_Filter verifies a vetoed step is skipped and that the filter
// sees each undiscovered neighbor once, from the node that discovers it.
func TestSearch_Filter(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"}, [2]string{"D", "C"})

	var steps []string
	res, err := bfs.Search([]string{"A"}, next, is("C"),
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			steps = append(steps, curr+">"+nbr)
			return nbr != "B"
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, path(t, res))
	assert.Equal(t, []string{"A>B", "A>D", "D>C"}, steps)

	_, err = bfs.Search([]string{"A"}, next, is("C"),
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	assert.True(t, errors.Is(err, bfs.ErrNoPath))
}

// TestSearch_Visit verifies visit order with depths and OnVisit abort.
func TestSearch_Visit(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	var trace []string
	_, err := bfs.Search([]string{"A"}, next, is("C"),
		bfs.WithOnVisit(func(id string, d int) error {
			trace = append(trace, fmt.Sprintf("%s@%d", id, d))
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A@0", "B@1"}, trace)

	stop := errors.New("stop")
	_, err = bfs.Search([]string{"A"}, next, is("C"),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return stop
			}
			return nil
		}))
	assert.True(t, errors.Is(err, stop))
}

// TestSearch_NeighborError verifies callback failures keep their own kind.
func TestSearch_NeighborError(t *testing.T) {
	boom := func(string) ([]string, error) { return nil, errors.ErrUnknownName }
	_, err := bfs.Search([]string{"A"}, boom, is("B"))
	assert.True(t, errors.Is(err, bfs.ErrNeighbors))
	assert.True(t, errors.Is(err, errors.ErrUnknownName))
}

// TestSearch_Cancel verifies a cancelled context aborts the search.
func TestSearch_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search([]string{"A"}, adjacency([2]string{"A", "B"}), is("B"), bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}
