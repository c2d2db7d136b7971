// File: nesting.go
// Role: the nesting relation between structures: a structure points at
//       the structures that are members of the graph it wraps.
// Determinism:
//   - Roots are visited in sorted name order and members in insertion
//     order, so NestingOrder is reproducible.
package world

import (
	"strconv"

	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/dfs"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/logger"
)

// nestedGraphs lists, for graph gid, the graphs wrapped by its structure
// members. Nodes are graph ids in decimal.
func (w *World) nestedGraphs(id string) ([]string, error) {
	gid, err := strconv.Atoi(id)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrBadGraphID, "graph id %q", id)
	}
	members, err := w.cat.Members(gid)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, m := range members {
		e, err := w.entry(m)
		if err != nil {
			return nil, err
		}
		if e.Kind == core.KindStructure {
			out = append(out, strconv.Itoa(e.Wraps))
		}
	}
	return out, nil
}

// nests reports whether graph outer is, or transitively holds a structure
// wrapping, graph inner. Caller holds w.mu.
func (w *World) nests(outer, inner int) (bool, error) {
	return dfs.Reachable(strconv.Itoa(outer), strconv.Itoa(inner), w.nestedGraphs)
}

// nestedStructures lists the structure members of the graph wrapped by
// structure name.
func (w *World) nestedStructures(name string) ([]string, error) {
	members, err := w.children(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, m := range members {
		ok, err := w.isStructure(m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// NestingOrder returns every structure name so that each one precedes the
// structures nested inside it.
//
// Errors:
//   - ErrInternal: the nesting relation has a cycle, which construction
//     rules out.
func (w *World) NestingOrder() ([]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var roots []string
	for _, n := range w.cat.Names() {
		ok, err := w.isStructure(n)
		if err != nil {
			return nil, err
		}
		if ok {
			roots = append(roots, n)
		}
	}
	order, err := dfs.TopologicalSort(roots, w.nestedStructures)
	if errors.Is(err, dfs.ErrCycleDetected) {
		w.log.Errorw("structure nesting has a cycle", logger.FieldError, err)
		return nil, errors.Wrapf(errors.ErrInternal, "World.NestingOrder: %v", err)
	}
	if err != nil {
		return nil, errors.Wrap(err, "World.NestingOrder")
	}
	return order, nil
}
