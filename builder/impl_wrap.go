// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// impl_wrap.go - implementation of Wrap(name).

package builder

import (
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/world"
)

// Wrap returns a Constructor that wraps the last graph in a structure called
// name. The structure's own graph becomes the last graph, so consecutive
// Wraps nest.
//
// Errors:
//   - ErrUnknownGraph: no earlier constructor produced a graph.
func Wrap(name string) Constructor {
	return func(w *world.World, cfg builderConfig) error {
		if cfg.trace.last == 0 {
			return errors.Wrapf(ErrUnknownGraph, "%s(%s): nothing built yet", MethodWrap, name)
		}
		gid, err := w.AddStructure(cfg.trace.last, name)
		if err != nil {
			return errors.Wrapf(err, "%s(%s)", MethodWrap, name)
		}
		cfg.trace.record(gid, name)
		return nil
	}
}
