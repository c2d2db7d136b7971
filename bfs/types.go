// Package bfs provides tunable options and error definitions
// for breadth-first path search over string-addressed nodes.
package bfs

import (
	"context"

	"github.com/Tobionecenobi/SEB/errors"
)

// Sentinel errors for search execution.
var (
	// ErrNoSeeds is returned when Search is called without seeds.
	ErrNoSeeds = errors.New("bfs: no seeds")

	// ErrNilCallback is returned when the Neighbors or Goal callback is nil.
	ErrNilCallback = errors.New("bfs: nil callback")

	// ErrNoPath is returned when the frontier is exhausted before the goal.
	ErrNoPath = errors.New("bfs: no path to goal")

	// ErrNeighbors wraps a failure of the Neighbors callback.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Neighbors lists the nodes reachable in one step from id, in the order
// they should be explored.
type Neighbors func(id string) ([]string, error)

// Goal reports whether a freshly discovered node terminates the search.
type Goal func(id string) bool

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when expanding a node. A non-nil error aborts the search.
	OnVisit func(id string, depth int) error

	// FilterNeighbor can skip a step curr -> neighbor by returning false.
	// It is consulted once per undiscovered neighbor, and a step it accepts
	// is always taken.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with a background context, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Order: nodes expanded, in expansion sequence.
//   - Depth: distance in steps from the nearest seed.
//   - Parent: predecessor of every discovered non-seed node.
//   - Found: the node that satisfied the goal.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Found  string
}

// PathTo reconstructs the seed-to-dest path.
// Returns ErrNoPath if dest was not discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "node %q not discovered", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
