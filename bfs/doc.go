// Package bfs provides breadth-first path search from one or more seed nodes
// to the first node that satisfies a goal predicate.
//
// What
//
//   - Nodes are plain strings; adjacency is supplied by a Neighbors callback,
//     so the searched graph can be implicit (for example reference points
//     reachable through links and through the inside of a structure).
//   - All seeds start at depth 0 and are marked visited up front.
//   - The goal is tested when a node is first discovered, never on a seed.
//   - Returns a Result containing:
//   - Order: expansion sequence
//   - Depth: map from node → distance from the nearest seed
//   - Parent: map from node → its predecessor
//   - Found: the node that satisfied the goal
//   - Supports an OnVisit hook run before each expansion and a
//     FilterNeighbor predicate that can veto single steps.
//
// Determinism
//
//	Seeds are enqueued in the given order and neighbors in the order the
//	callback returns them, so the path found is reproducible whenever the
//	callback is.
//
// Complexity (V = nodes discovered, E = neighbor entries returned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(
//	    []string{"A.end1", "A.end2"},
//	    func(id string) ([]string, error) { return adj[id], nil },
//	    func(id string) bool { return strings.HasPrefix(id, "C.") },
//	    bfs.WithContext(ctx),
//	)
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // unreachable
//	}
//	path, err := res.PathTo(res.Found)
package bfs
