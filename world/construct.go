// File: construct.go
// Role: World construction: Add, AddKind, AddStructure, Link, LinkKind,
//       LinkStructures.
// Determinism:
//   - Graph ids are allocated 1, 2, 3, ... in call order; members and links
//     keep insertion order.
// Concurrency:
//   - Every operation holds the World's write lock for its whole duration.
// Errors:
//   - Validation runs before any catalog mutation or #label sampling, so a
//     failed call leaves the catalog and every sampled point unchanged. A leaf handed to a failed Link may already be
//     bound and cannot be reused.
package world

import (
	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/logger"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/subunit"
)

func checkTag(tag string) error {
	if tag != "" && !refpath.ValidName(tag) {
		return errors.Wrapf(errors.ErrBadName, "tag %q", tag)
	}
	return nil
}

// Add catalogues an unconnected sub-unit under name and returns the id of
// the new graph that holds it. An empty tag defaults to name; leaves that
// share a tag share their symbols.
//
// Errors:
//   - ErrBadName: name or tag is not alphanumeric.
//   - ErrDuplicateName: name is already catalogued.
//   - ErrBadLeaf: l is nil or already bound.
func (w *World) Add(l subunit.Leaf, name, tag string) (int, error) {
	gid, err := w.add(l, name, tag)
	if err != nil {
		return 0, errors.Wrapf(err, "World.Add(%q, %q)", name, tag)
	}
	return gid, nil
}

// AddKind is Add with a fresh sub-unit of the named kind.
func (w *World) AddKind(kind, name, tag string) (int, error) {
	l, err := subunit.New(kind)
	if err != nil {
		return 0, errors.Wrapf(err, "World.AddKind(%q, %q, %q)", kind, name, tag)
	}
	return w.Add(l, name, tag)
}

func (w *World) add(l subunit.Leaf, name, tag string) (int, error) {
	if !refpath.ValidName(name) {
		return 0, errors.Wrapf(errors.ErrBadName, "name %q", name)
	}
	if err := checkTag(tag); err != nil {
		return 0, err
	}
	if l == nil {
		return 0, errors.Wrap(errors.ErrBadLeaf, "nil sub-unit")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cat.Has(name) {
		return 0, errors.Wrapf(errors.ErrDuplicateName, "name %q", name)
	}
	if err := l.Init(name, tag, w.reg); err != nil {
		return 0, err
	}
	gid, err := w.cat.AddToNewGraph(core.Entry{Name: name, Kind: core.KindSubunit, Value: l})
	if err != nil {
		return 0, err
	}
	w.log.Debugw("added sub-unit", logger.FieldName, name, logger.FieldTag, l.Tag(), logger.FieldGraph, gid)
	return gid, nil
}

// AddStructure wraps graph gid in a structure called name. The structure is
// placed in a graph of its own, whose id is returned, so it can be wrapped
// again or grown with LinkStructures.
//
// Errors:
//   - ErrBadName, ErrDuplicateName as Add.
//   - ErrBadGraphID: gid was never allocated.
func (w *World) AddStructure(gid int, name string) (int, error) {
	out, err := w.addStructure(gid, name)
	if err != nil {
		return 0, errors.Wrapf(err, "World.AddStructure(%d, %q)", gid, name)
	}
	return out, nil
}

func (w *World) addStructure(gid int, name string) (int, error) {
	if !refpath.ValidName(name) {
		return 0, errors.Wrapf(errors.ErrBadName, "name %q", name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.cat.ValidGraph(gid) {
		return 0, errors.Wrapf(errors.ErrBadGraphID, "graph id %d", gid)
	}
	if w.cat.Has(name) {
		return 0, errors.Wrapf(errors.ErrDuplicateName, "name %q", name)
	}
	s := newStructure(name, gid, w.reg)
	out, err := w.cat.AddToNewGraph(core.Entry{Name: name, Kind: core.KindStructure, Wraps: gid, Value: s})
	if err != nil {
		return 0, err
	}
	w.log.Debugw("added structure", logger.FieldName, name, logger.FieldGraph, out, "wraps", gid)
	return out, nil
}

// Link binds l under the name of newRef and joins it to an existing
// sub-unit: newRef is "name.ref" on l, oldRef is "name.ref" on the existing
// sub-unit. Distributed reference points must carry a sample label
// ("poly.contour#a"); the sample is created on first use. The returned id is
// the graph of the existing sub-unit, which l joins.
//
// Errors:
//   - ErrBadName, ErrBadPathSyntax: malformed paths or tag.
//   - ErrDuplicateName: the new name exists. ErrUnknownName: the old one does not.
//   - ErrInvalidReference: a reference point is not on its sub-unit.
//   - ErrMissingSampleLabel: a distributed reference point has no #label.
//   - ErrBadLeaf: l is nil or already bound.
func (w *World) Link(l subunit.Leaf, newRef, oldRef, tag string) (int, error) {
	gid, err := w.link(l, newRef, oldRef, tag)
	if err != nil {
		return 0, errors.Wrapf(err, "World.Link(%q, %q, %q)", newRef, oldRef, tag)
	}
	return gid, nil
}

// LinkKind is Link with a fresh sub-unit of the named kind.
func (w *World) LinkKind(kind, newRef, oldRef, tag string) (int, error) {
	l, err := subunit.New(kind)
	if err != nil {
		return 0, errors.Wrapf(err, "World.LinkKind(%q, %q, %q, %q)", kind, newRef, oldRef, tag)
	}
	return w.Link(l, newRef, oldRef, tag)
}

// leafRef parses a "name.ref[#label]" path.
func leafRef(p string) (refpath.Address, error) {
	a, err := refpath.Parse(p)
	if err != nil {
		return a, err
	}
	if a.Nested() || !a.HasReference() {
		return a, errors.Wrapf(errors.ErrBadPathSyntax, "%q is not of the form name.reference", p)
	}
	return a, nil
}

func (w *World) link(l subunit.Leaf, newRef, oldRef, tag string) (int, error) {
	na, err := leafRef(newRef)
	if err != nil {
		return 0, err
	}
	oa, err := leafRef(oldRef)
	if err != nil {
		return 0, err
	}
	if err := checkTag(tag); err != nil {
		return 0, err
	}
	if l == nil {
		return 0, errors.Wrap(errors.ErrBadLeaf, "nil sub-unit")
	}
	newName, oldName := na.Leaf(), oa.Leaf()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cat.Has(newName) {
		return 0, errors.Wrapf(errors.ErrDuplicateName, "name %q", newName)
	}
	old, err := w.leaf(oldName)
	if err != nil {
		return 0, err
	}
	if !old.HasReference(oa.Base) {
		return 0, errors.Wrapf(errors.ErrInvalidReference, "sub-unit %q has no reference point %q", oldName, oa.Base)
	}
	if err := sampleLabel(old, oa); err != nil {
		return 0, err
	}

	if err := l.Init(newName, tag, w.reg); err != nil {
		return 0, err
	}
	if !l.HasReference(na.Base) {
		return 0, errors.Wrapf(errors.ErrInvalidReference, "sub-unit %q (%s) has no reference point %q", newName, l.Kind(), na.Base)
	}
	if err := sampleLabel(l, na); err != nil {
		return 0, err
	}

	if na.Label != "" {
		if err := l.Materialize(na.Base, na.Label); err != nil {
			return 0, err
		}
	}
	if oa.Label != "" {
		if err := old.Materialize(oa.Base, oa.Label); err != nil {
			return 0, err
		}
	}

	gid, err := w.cat.GraphOf(oldName)
	if err != nil {
		return 0, err
	}
	if err := w.cat.AddToGraph(gid, core.Entry{Name: newName, Kind: core.KindSubunit, Value: l}); err != nil {
		return 0, err
	}
	lk, err := w.cat.AddLink(oldRef, newRef)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInternal, "recording link: %v", err)
	}
	w.log.Debugw("linked sub-unit", logger.FieldName, newName, logger.FieldGraph, gid, logger.FieldLink, lk.String())
	return gid, nil
}

// LinkStructures wraps graph gid in a new structure and joins it to an
// existing one. newRef addresses a reference point inside the new structure
// ("new:child:...:leaf.ref", where new is the structure's name and child a
// member of gid); oldRef addresses one inside an existing structure. The
// returned id is the graph of the existing structure, which the new one
// joins.
//
// Errors:
//   - ErrBadGraphID: gid was never allocated, or wrapping it here would
//     nest a structure inside itself.
//   - ErrBadName, ErrBadPathSyntax, ErrDuplicateName, ErrUnknownName,
//     ErrInvalidReference, ErrMissingSampleLabel as Link.
//   - ErrInternal: the new structure did not land in the old graph.
func (w *World) LinkStructures(gid int, newRef, oldRef string) (int, error) {
	out, err := w.linkStructures(gid, newRef, oldRef)
	if err != nil {
		return 0, errors.Wrapf(err, "World.LinkStructures(%d, %q, %q)", gid, newRef, oldRef)
	}
	return out, nil
}

// nestedRef parses a "structure:...:leaf.ref[#label]" path.
func nestedRef(p string) (refpath.Address, error) {
	a, err := refpath.Parse(p)
	if err != nil {
		return a, err
	}
	if !a.Nested() || !a.HasReference() {
		return a, errors.Wrapf(errors.ErrBadPathSyntax, "%q is not of the form structure:...:name.reference", p)
	}
	return a, nil
}

func (w *World) linkStructures(gid int, newRef, oldRef string) (int, error) {
	na, err := nestedRef(newRef)
	if err != nil {
		return 0, err
	}
	oa, err := nestedRef(oldRef)
	if err != nil {
		return 0, err
	}
	newName, oldName := na.Top(), oa.Top()

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.cat.ValidGraph(gid) {
		return 0, errors.Wrapf(errors.ErrBadGraphID, "graph id %d", gid)
	}
	if w.cat.Has(newName) {
		return 0, errors.Wrapf(errors.ErrDuplicateName, "name %q", newName)
	}
	if !w.cat.Has(oldName) {
		return 0, errors.Wrapf(errors.ErrUnknownName, "name %q", oldName)
	}
	if child := na.Segments[1]; !w.cat.Contains(gid, child) {
		return 0, errors.Wrapf(errors.ErrInvalidReference, "graph %d does not contain %q", gid, child)
	}
	if err := w.checkPath(newRef, true); err != nil {
		return 0, err
	}
	if err := w.checkPath(oldRef, false); err != nil {
		return 0, err
	}

	oldGid, err := w.cat.GraphOf(oldName)
	if err != nil {
		return 0, err
	}
	cyclic, err := w.nests(gid, oldGid)
	if err != nil {
		return 0, err
	}
	if cyclic {
		return 0, errors.Wrapf(errors.ErrBadGraphID, "graph %d already holds graph %d; wrapping it there would nest a structure in itself", gid, oldGid)
	}

	newLeaf, err := w.leaf(na.Leaf())
	if err != nil {
		return 0, err
	}
	oldLeaf, err := w.leaf(oa.Leaf())
	if err != nil {
		return 0, err
	}
	if err := sampleLabel(newLeaf, na); err != nil {
		return 0, err
	}
	if err := sampleLabel(oldLeaf, oa); err != nil {
		return 0, err
	}
	if na.Label != "" {
		if err := newLeaf.Materialize(na.Base, na.Label); err != nil {
			return 0, err
		}
	}
	if oa.Label != "" {
		if err := oldLeaf.Materialize(oa.Base, oa.Label); err != nil {
			return 0, err
		}
	}

	s := newStructure(newName, gid, w.reg)
	if err := w.cat.AddToGraph(oldGid, core.Entry{Name: newName, Kind: core.KindStructure, Wraps: gid, Value: s}); err != nil {
		return 0, err
	}
	lk, err := w.cat.AddLink(newRef, oldRef)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInternal, "recording link: %v", err)
	}

	newGid, err := w.cat.GraphOf(newName)
	if err != nil {
		return 0, err
	}
	if newGid != oldGid {
		return 0, errors.Wrapf(errors.ErrInternal, "graph id mismatch: %d != %d", newGid, oldGid)
	}
	w.log.Debugw("linked structure", logger.FieldName, newName, logger.FieldGraph, oldGid, "wraps", gid, logger.FieldLink, lk.String())
	return oldGid, nil
}
