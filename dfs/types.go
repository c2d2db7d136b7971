// Package dfs defines types and options for depth-first search over
// string-addressed nodes, including cancellation and pre-/post-order hooks.
package dfs

import (
	"context"

	"github.com/Tobionecenobi/SEB/errors"
)

// Visitation states of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are finished.
)

var (
	// ErrNilSuccessors is returned when the Successors callback is nil.
	ErrNilSuccessors = errors.New("dfs: successors callback is nil")

	// ErrCycleDetected indicates a back edge found by TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch wraps a failure of the Successors callback.
	ErrNeighborFetch = errors.New("dfs: failed to fetch successors")
)

// Successors lists the nodes reachable in one step from id.
type Successors func(id string) ([]string, error)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a node are
	// explored (post-order). Returning an error aborts traversal.
	OnExit func(id string) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []string

	// Depth maps each node to its distance from the root it was reached from.
	Depth map[string]int

	// Parent maps each non-root node to the node it was discovered from.
	Parent map[string]string

	// Visited flags which nodes were reached.
	Visited map[string]bool
}
