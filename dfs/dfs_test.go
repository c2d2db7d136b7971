package dfs_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/dfs"
	"github.com/Tobionecenobi/SEB/errors"
)

// adjacency builds a directed successor callback from "U>V" pairs.
func adjacency(edges ...string) dfs.Successors {
	adj := make(map[string][]string)
	for _, e := range edges {
		for i := 0; i < len(e); i++ {
			if e[i] == '>' {
				adj[e[:i]] = append(adj[e[:i]], e[i+1:])
				break
			}
		}
	}
	return func(id string) ([]string, error) {
		return adj[id], nil
	}
}

// chain returns a successor callback for N0>N1>...>N(n-1).
func chain(n int) dfs.Successors {
	return func(id string) ([]string, error) {
		i, err := strconv.Atoi(id[1:])
		if err != nil {
			return nil, err
		}
		if i+1 >= n {
			return nil, nil
		}
		return []string{"N" + strconv.Itoa(i+1)}, nil
	}
}

// TestDFS_Errors verifies input validation.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS([]string{"A"}, nil)
	assert.ErrorIs(t, err, dfs.ErrNilSuccessors)

	_, err = dfs.TopologicalSort([]string{"A"}, nil)
	assert.ErrorIs(t, err, dfs.ErrNilSuccessors)
}

// TestDFS_PostOrderAndDepth verifies finish order, depth and parents on a
// diamond.
func TestDFS_PostOrderAndDepth(t *testing.T) {
	next := adjacency("A>B", "A>C", "B>D", "C>D")
	res, err := dfs.DFS([]string{"A"}, next)
	require.NoError(t, err)

	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 1}, res.Depth)
	assert.Equal(t, "B", res.Parent["D"])
	assert.Equal(t, "A", res.Parent["C"])
	_, root := res.Parent["A"]
	assert.False(t, root)
}

// TestDFS_Forest verifies that later roots already reached are skipped.
func TestDFS_Forest(t *testing.T) {
	next := adjacency("A>B", "X>Y")
	res, err := dfs.DFS([]string{"A", "B", "X"}, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "Y", "X"}, res.Order)
}

// TestDFS_Cycle verifies that a cycle terminates the walk.
func TestDFS_Cycle(t *testing.T) {
	next := adjacency("A>B", "B>C", "C>A")
	res, err := dfs.DFS([]string{"A"}, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
}

// TestDFS_Hooks verifies pre- and post-order hooks and hook aborts.
func TestDFS_Hooks(t *testing.T) {
	next := adjacency("A>B", "B>C")
	var pre, post []string
	_, err := dfs.DFS([]string{"A"}, next,
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, pre)
	assert.Equal(t, []string{"C", "B", "A"}, post)

	stop := errors.New("stop")
	res, err := dfs.DFS([]string{"A"}, next, dfs.WithOnVisit(func(id string) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, res.Order)
}

// TestDFS_NeighborError verifies that callback failures are marked.
func TestDFS_NeighborError(t *testing.T) {
	boom := errors.New("boom")
	_, err := dfs.DFS([]string{"A"}, func(string) ([]string, error) { return nil, boom })
	assert.True(t, errors.Is(err, dfs.ErrNeighborFetch))
	assert.True(t, errors.Is(err, boom))
}

// TestDFS_Cancel verifies that a cancelled context stops the walk.
func TestDFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS([]string{"N0"}, chain(5), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestReachable verifies reachability, including the trivial case.
func TestReachable(t *testing.T) {
	next := adjacency("1>2", "2>3", "4>1")

	ok, err := dfs.Reachable("1", "3", next)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.Reachable("3", "1", next)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.Reachable("5", "5", next)
	require.NoError(t, err)
	assert.True(t, ok)
}
