// Package dfs implements depth-first search from one or more roots over an
// implicit graph given by a Successors callback. It supports cancellation,
// and pre- and post-order hooks.
//
// Errors:
//
//   - ErrNilSuccessors          if next is nil.
//   - ErrNeighborFetch          if next fails (the callback's error is kept).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"github.com/Tobionecenobi/SEB/errors"
)

// walker encapsulates state during DFS.
type walker struct {
	next Successors
	opts Options
	res  *Result
}

// DFS performs depth-first search from each unvisited root in order.
// Returns the Result (partial on error) or an error if aborted.
func DFS(roots []string, next Successors, opts ...Option) (*Result, error) {
	// 1. Validate input
	if next == nil {
		return nil, ErrNilSuccessors
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result
	res := &Result{
		Order:   make([]string, 0, len(roots)),
		Depth:   make(map[string]int, len(roots)),
		Parent:  make(map[string]string, len(roots)),
		Visited: make(map[string]bool, len(roots)),
	}
	w := &walker{next: next, opts: o, res: res}

	// 4. Traverse a forest rooted at roots
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		if err := w.traverse(r, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits id at the given depth, recursing into its successors.
func (w *walker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return errors.Wrapf(err, "dfs: OnVisit hook for %q", id)
		}
	}

	// 4. Fetch successors once
	nbs, err := w.next(id)
	if err != nil {
		w.res.Order = nil
		return errors.Wrapf(errors.Mark(err, ErrNeighborFetch), "dfs: successors of %q", id)
	}

	// 5. Explore each successor
	for _, nid := range nbs {
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return errors.Wrapf(err, "dfs: OnExit hook for %q", id)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

// Reachable reports whether target can be reached from start, start itself
// included.
func Reachable(start, target string, next Successors, opts ...Option) (bool, error) {
	if start == target {
		return true, nil
	}
	found := errors.New("found")
	opts = append(opts, WithOnVisit(func(id string) error {
		if id == target {
			return found
		}
		return nil
	}))
	_, err := DFS([]string{start}, next, opts...)
	if errors.Is(err, found) {
		return true, nil
	}
	return false, err
}
