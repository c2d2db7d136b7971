// Package dfs provides topological sort over the implicit directed graph
// given by a Successors callback.
//
// TopologicalSort computes a linear ordering of nodes such that for every
// step u→v, u appears before v. If a cycle is reachable, ErrCycleDetected
// is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and step visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"

	"github.com/Tobionecenobi/SEB/errors"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	next  Successors
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort orders every node reachable from nodes. Roots are tried in
// the given order and successors in callback order, so the result is
// deterministic whenever the callback is.
func TopologicalSort(nodes []string, next Successors, options ...TopoOption) ([]string, error) {
	// 1. Validate callback
	if next == nil {
		return nil, ErrNilSuccessors
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter{
		next:  next,
		opts:  opts,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	// 4. Drive DFS from every unvisited node
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back edges.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means a back edge
	if t.state[id] == Gray {
		return errors.Wrapf(ErrCycleDetected, "at %q", id)
	}
	// 3. Already finished
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark in progress
	t.state[id] = Gray

	// 5. Retrieve successors
	succ, err := t.next(id)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrNeighborFetch), "dfs: successors of %q", id)
	}
	// 6. Recurse
	for _, s := range succ {
		if err = t.visit(s); err != nil {
			return err
		}
	}

	// 7. Finished
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
