// Package bfs provides breadth-first path search from a set of seeds to the
// first node satisfying a goal predicate.
package bfs

import (
	"context"

	"github.com/Tobionecenobi/SEB/errors"
)

// queueItem pairs a node with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	next    Neighbors
	goal    Goal
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Search runs breadth-first search from seeds, in order, until a discovered
// neighbor satisfies goal. Seeds themselves are never tested against goal.
//
// Implementation:
//   - Stage 1: Validate callbacks, seeds and options.
//   - Stage 2: Mark every seed visited at depth 0 and enqueue it.
//   - Stage 3: Pop a node, list its neighbors, skip visited or filtered ones,
//     test each against goal at discovery, enqueue the rest.
//
// Errors:
//   - ErrNilCallback, ErrNoSeeds for bad input.
//   - ErrNeighbors when the Neighbors callback fails.
//   - ErrNoPath when the frontier empties first; the partial Result is returned.
//   - ctx.Err() on cancellation, or any OnVisit error.
//
// Complexity:
//   - Time O(V + E) neighbor calls, Memory O(V).
func Search(seeds []string, next Neighbors, goal Goal, opts ...Option) (*Result, error) {
	if next == nil || goal == nil {
		return nil, ErrNilCallback
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		next:    next,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, len(seeds)),
		visited: make(map[string]bool, len(seeds)),
		res: &Result{
			Order:  make([]string, 0, len(seeds)),
			Depth:  make(map[string]int, len(seeds)),
			Parent: make(map[string]string, len(seeds)),
		},
	}
	for _, s := range seeds {
		if !w.visited[s] {
			w.enqueue(s, 0, "")
		}
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until the goal is hit, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit error at %q", item.id)
		}

		found, err := w.expand(item)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
	}

	return ErrNoPath
}

// expand discovers the unvisited neighbors of item and reports whether one
// of them satisfied the goal.
func (w *walker) expand(item queueItem) (bool, error) {
	nextDepth := item.depth + 1
	neighbors, err := w.next(item.id)
	if err != nil {
		return false, errors.Wrapf(errors.Mark(err, ErrNeighbors), "neighbors of %q", item.id)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if w.goal(nbr) {
			w.res.Found = nbr
			return true, nil
		}
	}

	return false, nil
}
