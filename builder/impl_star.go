// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// impl_star.go - implementation of Star(kind, arms, prefix, hubRef, armRef).
//
// Contract:
//   - arms ≥ 1 (else ErrTooFewSubunits).
//   - Adds the hub with the configured name (default "Center").
//   - Links arm i (prefix+idFn(i)) at armRef to the hub at hubRef, in
//     increasing i. Arm names are derived before the first World call.
//   - A hubRef ending in SampleMarker ("contour#") samples the distributed
//     reference point once per arm, labelled with the arm's name.
//
// Complexity:
//   - O(arms) World calls.

package builder

import (
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/world"
)

// Star returns a Constructor that tethers arms sub-units to one hub, all of
// the given kind. The star's graph becomes the last graph.
func Star(kind string, arms int, prefix, hubRef, armRef string) Constructor {
	return func(w *world.World, cfg builderConfig) error {
		if arms < MinStarArms {
			return errors.Wrapf(ErrTooFewSubunits, "%s: arms=%d < min=%d", MethodStar, arms, MinStarArms)
		}

		names, err := cfg.names(prefix, arms)
		if err != nil {
			return errors.Wrapf(err, "%s: arms=%d", MethodStar, arms)
		}

		gid, err := w.AddKind(kind, cfg.hub, cfg.tag)
		if err != nil {
			return errors.Wrapf(err, "%s: add hub %s", MethodStar, cfg.hub)
		}
		cfg.trace.record(gid, cfg.hub)

		sampled := strings.HasSuffix(hubRef, SampleMarker)
		for _, arm := range names {
			at := hubRef
			if sampled {
				at += arm
			}
			newRef, oldRef := refpath.At(arm, armRef), refpath.At(cfg.hub, at)
			g, err := w.LinkKind(kind, newRef, oldRef, cfg.tag)
			if err != nil {
				return errors.Wrapf(err, "%s: link %s to %s", MethodStar, newRef, oldRef)
			}
			cfg.trace.record(g, arm)
		}
		return nil
	}
}
