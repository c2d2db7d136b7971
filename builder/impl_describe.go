// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// impl_describe.go - implementation of Describe(doc).
//
// Contract:
//   - The document is validated before the first World call.
//   - Steps run in order; the first failing step stops the replay and is
//     reported with its index and op.
//   - add and link record the new sub-unit, structure and linkstructure the
//     new structure, each under the graph the World returned.

package builder

import (
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/world"
)

// Describe returns a Constructor that replays the steps of doc.
func Describe(doc *Document) Constructor {
	return func(w *world.World, cfg builderConfig) error {
		if doc == nil {
			return errors.Wrapf(ErrBadDocument, "%s: nil document", MethodDescribe)
		}
		if err := doc.Validate(); err != nil {
			return errors.Wrap(err, MethodDescribe)
		}
		for i, s := range doc.Steps {
			if err := step(w, cfg.trace, s); err != nil {
				return errors.Wrapf(err, "%s: step %d (%s)", MethodDescribe, i, s.Op)
			}
		}
		return nil
	}
}

func step(w *world.World, t *trace, s Step) error {
	switch strings.ToLower(s.Op) {
	case OpAdd:
		gid, err := w.AddKind(s.Type, s.Name, s.Tag)
		if err != nil {
			return err
		}
		t.record(gid, s.Name)

	case OpLink:
		gid, err := w.LinkKind(s.Type, s.New, s.Existing, s.Tag)
		if err != nil {
			return err
		}
		name, err := refpath.Name(s.New)
		if err != nil {
			return err
		}
		t.record(gid, name)

	case OpStructure:
		inner, err := t.graphOf(s.Graph)
		if err != nil {
			return err
		}
		gid, err := w.AddStructure(inner, s.Name)
		if err != nil {
			return err
		}
		t.record(gid, s.Name)

	case OpLinkStructure:
		inner, err := t.graphOf(s.Graph)
		if err != nil {
			return err
		}
		gid, err := w.LinkStructures(inner, s.New, s.Existing)
		if err != nil {
			return err
		}
		name, err := refpath.Prefix(s.New)
		if err != nil {
			return err
		}
		t.record(gid, name)

	default:
		return errors.Wrapf(ErrUnknownStep, "op %q", s.Op)
	}
	return nil
}
