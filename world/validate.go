// File: validate.go
// Role: catalog lookups and nested path validation shared by construction
//       and queries. Every helper expects the caller to hold w.mu.
package world

import (
	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/subunit"
)

// entry returns the catalog entry for name.
func (w *World) entry(name string) (core.Entry, error) {
	return w.cat.Get(name)
}

// isStructure reports whether name is a structure.
func (w *World) isStructure(name string) (bool, error) {
	e, err := w.entry(name)
	if err != nil {
		return false, err
	}
	return e.Kind == core.KindStructure, nil
}

// leaf returns the sub-unit called name.
func (w *World) leaf(name string) (subunit.Leaf, error) {
	e, err := w.entry(name)
	if err != nil {
		return nil, err
	}
	l, ok := e.Value.(subunit.Leaf)
	if e.Kind != core.KindSubunit || !ok {
		return nil, errors.Wrapf(errors.ErrInvalidReference, "%q is a structure, not a sub-unit", name)
	}
	return l, nil
}

// structure returns the structure called name.
func (w *World) structure(name string) (*Structure, error) {
	e, err := w.entry(name)
	if err != nil {
		return nil, err
	}
	s, ok := e.Value.(*Structure)
	if e.Kind != core.KindStructure || !ok {
		return nil, errors.Wrapf(errors.ErrInvalidReference, "%q is a sub-unit, not a structure", name)
	}
	return s, nil
}

// scatterer returns the leaf or structure called name.
func (w *World) scatterer(name string) (subunit.Scatterer, error) {
	e, err := w.entry(name)
	if err != nil {
		return nil, err
	}
	s, ok := e.Value.(subunit.Scatterer)
	if !ok {
		return nil, errors.AssertionFailedf("catalog entry %q holds %T", name, e.Value)
	}
	return s, nil
}

// children returns the members of the graph wrapped by structure name.
func (w *World) children(name string) ([]string, error) {
	s, err := w.structure(name)
	if err != nil {
		return nil, err
	}
	return w.cat.Members(s.GraphID())
}

// structureContains reports whether child is a direct member of the graph
// wrapped by parent.
func (w *World) structureContains(parent, child string) (bool, error) {
	s, err := w.structure(parent)
	if err != nil {
		return false, err
	}
	return w.cat.Contains(s.GraphID(), child), nil
}

// checkPath walks p one segment at a time: every structure must exist and
// hold the next segment, the last segment must exist, and a named reference
// base must be known to that sub-unit. skipFirst skips the checks on the
// top segment, which is not catalogued yet while a structure is linked in.
func (w *World) checkPath(p string, skipFirst bool) error {
	a, err := refpath.Parse(p)
	if err != nil {
		return err
	}
	for i := 0; i < len(a.Segments)-1; i++ {
		if i == 0 && skipFirst {
			continue
		}
		parent, child := a.Segments[i], a.Segments[i+1]
		ok, err := w.structureContains(parent, child)
		if err != nil {
			return errors.Wrapf(err, "path %q", p)
		}
		if !ok {
			return errors.Wrapf(errors.ErrInvalidReference, "structure %q does not contain %q in path %q", parent, child, p)
		}
	}

	name := a.Leaf()
	if !w.cat.Has(name) {
		return errors.Wrapf(errors.ErrUnknownName, "%q in path %q", name, p)
	}
	if !a.HasReference() {
		return nil
	}
	l, err := w.leaf(name)
	if err != nil {
		return errors.Wrapf(err, "path %q", p)
	}
	if !l.HasReference(a.Base) {
		return errors.Wrapf(errors.ErrInvalidReference, "sub-unit %q has no reference point %q", name, a.Base)
	}
	return nil
}

// sampleLabel rejects a distributed reference used without a #label and a
// #label on a reference that is not distributed. It never mutates l.
func sampleLabel(l subunit.Leaf, a refpath.Address) error {
	distributed := l.HasDistributed(a.Base)
	if distributed && a.Label == "" {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrMissingSampleLabel, "%s.%s", l.Name(), a.Base),
			"sample it under a label, for example %s.%s#a", l.Name(), a.Base)
	}
	if !distributed && a.Label != "" {
		return errors.Wrapf(errors.ErrInvalidReference, "%s.%s is not distributed and cannot be sampled as #%s", l.Name(), a.Base, a.Label)
	}
	return nil
}
