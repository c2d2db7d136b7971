// File: pathsearch.go
// Role: connecting-path search between reference points one level below a
//       shared structure.
// Shape:
//   - A path never takes two steps inside the same child in a row. Two link
//     steps in a row meet at a point shared by both links.
// Determinism:
//   - Seeds and neighbors are listed in a fixed order (link insertion order,
//     then sorted leaf references, then child insertion order), so the
//     breadth-first search always returns the same path.
// Concurrency:
//   - Runs under the World's read lock held by the calling query.
package world

import (
	"github.com/Tobionecenobi/SEB/bfs"
	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/logger"
	"github.com/Tobionecenobi/SEB/refpath"
)

// referencePoints lists every specific reference point inside name as a
// path relative to name's level: "leaf.ref" for a sub-unit,
// "name:child:...:leaf.ref" for a structure.
func (q *query) referencePoints(name string) ([]string, error) {
	if refs, ok := q.refs[name]; ok {
		return refs, nil
	}
	e, err := q.w.entry(name)
	if err != nil {
		return nil, err
	}

	var refs []string
	switch e.Kind {
	case core.KindSubunit:
		l, err := q.w.leaf(name)
		if err != nil {
			return nil, err
		}
		for _, r := range l.References() {
			refs = append(refs, refpath.At(name, r))
		}
	case core.KindStructure:
		children, err := q.w.children(name)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			sub, err := q.referencePoints(c)
			if err != nil {
				return nil, err
			}
			for _, r := range sub {
				refs = append(refs, refpath.Join(name, r))
			}
		}
	}
	q.refs[name] = refs
	return refs, nil
}

// neighbors lists the points one hop from last: link partners first, then
// the other reference points of the same child.
func (q *query) neighbors(last string) ([]string, error) {
	out := q.w.cat.Partners(last)
	child, err := refpath.Prefix(last)
	if err != nil {
		return nil, err
	}
	refs, err := q.referencePoints(child)
	if err != nil {
		return nil, err
	}
	for _, r := range refs {
		if r != last {
			out = append(out, r)
		}
	}
	return out, nil
}

// findPath returns the hops connecting name1 and name2, which must share
// their top segment. The result is relative to that segment and alternates
// between steps across one child and steps across a link. Either end may be
// a reference point or a bare child name; a bare end matches any reference
// point inside that child. The path is empty when both ends lie in the same
// child.
//
// Implementation:
//   - Stage 1: Strip the shared top segment; same child gives an empty path.
//   - Stage 2: Search from the specific end when only the target is
//     specific, and reverse the result afterwards.
//   - Stage 3: Seed with the start point, or with every reference point of
//     a bare start child, then run bfs.Search with a goal tested on
//     discovery. A neighbor filter refuses a step inside a child right
//     after another step inside that child.
//
// Errors:
//   - ErrBadPathSyntax: the ends do not share a top segment.
//   - ErrInternal: no path exists, which the tree shape of every graph
//     rules out.
func (q *query) findPath(name1, name2 string) ([]string, error) {
	p1, err := refpath.Prefix(name1)
	if err != nil {
		return nil, err
	}
	p2, err := refpath.Prefix(name2)
	if err != nil {
		return nil, err
	}
	if p1 != p2 {
		return nil, errors.Wrapf(errors.ErrBadPathSyntax, "%q and %q do not start in the same structure", name1, name2)
	}
	from, err := refpath.Postfix(name1)
	if err != nil {
		return nil, err
	}
	to, err := refpath.Postfix(name2)
	if err != nil {
		return nil, err
	}
	c1, err := refpath.Prefix(from)
	if err != nil {
		return nil, err
	}
	c2, err := refpath.Prefix(to)
	if err != nil {
		return nil, err
	}
	if c1 == c2 {
		return nil, nil
	}

	reverse := false
	if !refpath.HasPeriod(from) && refpath.HasPeriod(to) {
		from, to = to, from
		c1, c2 = c2, c1
		reverse = true
	}

	seeds := []string{from}
	if !refpath.HasPeriod(from) {
		if seeds, err = q.referencePoints(c1); err != nil {
			return nil, err
		}
	}
	goal := func(id string) bool {
		c, err := refpath.Prefix(id)
		return err == nil && c == c2
	}
	if refpath.HasPeriod(to) {
		goal = func(id string) bool { return id == to }
	}

	inside := make(map[string]bool, len(seeds))
	alternate := func(curr, next string) bool {
		step := sameChild(curr, next)
		if step && inside[curr] {
			return false
		}
		inside[next] = step
		return true
	}
	trace := func(id string, depth int) error {
		q.w.log.Debugw("path search visit", logger.FieldPath, id, logger.FieldDepth, depth)
		return nil
	}

	res, err := bfs.Search(seeds, q.neighbors, goal,
		bfs.WithContext(q.ctx),
		bfs.WithFilterNeighbor(alternate),
		bfs.WithOnVisit(trace),
	)
	if errors.IsAny(err, bfs.ErrNoPath, bfs.ErrNoSeeds) {
		q.w.log.Errorw("no connecting path", logger.FieldPath, name1+" -> "+name2, logger.FieldError, err)
		return nil, errors.Wrapf(errors.ErrInternal, "no path between %q and %q", name1, name2)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "searching a path between %q and %q", name1, name2)
	}

	path, err := res.PathTo(res.Found)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInternal, "path between %q and %q: %v", name1, name2, err)
	}
	if reverse {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path, nil
}

// sameChild reports whether two points of one level lie in the same child.
func sameChild(a, b string) bool {
	ca, err := refpath.Prefix(a)
	if err != nil {
		return false
	}
	cb, err := refpath.Prefix(b)
	return err == nil && ca == cb
}
