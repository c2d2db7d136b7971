// Package dfs implements depth-first traversal, reachability and
// topological sort over an implicit directed graph described by a
// Successors callback.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, from one or more roots. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Reachable: reports whether one node can be reached from another.
//   - TopologicalSort: orders a DAG so every node precedes its successors,
//     returning ErrCycleDetected on a back edge.
//
// SEB uses it on the nesting relation between structures: a structure
// points at the structures inside the graph it wraps. Reachable guards
// against wrapping a graph into itself, and TopologicalSort lists
// structures outermost first.
//
// Complexity:
//
//   - DFS, Reachable:  Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilSuccessors   callback is nil
//   - ErrNeighborFetch   callback failed
//   - ErrCycleDetected   back edge in TopologicalSort
//   - context.Canceled   traversal cancelled
//   - hook errors        propagated from OnVisit or OnExit
package dfs
