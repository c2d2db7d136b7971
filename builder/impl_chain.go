// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// impl_chain.go - implementation of Chain(kind, n, prefix, ref1, ref2).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewSubunits).
//   - Names sub-units prefix+idFn(i) for i = 0..n-1; every name is derived
//     before the first World call (an exhausted scheme is ErrNamesExhausted).
//   - Adds the first sub-unit unconnected, then links sub-unit i at ref1 to
//     sub-unit i-1 at ref2, in increasing i.
//   - Every sub-unit carries cfg.tag.
//
// Complexity:
//   - O(n) World calls.

package builder

import (
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/world"
)

// Chain returns a Constructor that builds a linear chain of n sub-units of
// the given kind, each joined at ref1 to its predecessor's ref2. The chain's
// graph becomes the last graph.
func Chain(kind string, n int, prefix, ref1, ref2 string) Constructor {
	return func(w *world.World, cfg builderConfig) error {
		if n < MinChainSubunits {
			return errors.Wrapf(ErrTooFewSubunits, "%s: n=%d < min=%d", MethodChain, n, MinChainSubunits)
		}

		names, err := cfg.names(prefix, n)
		if err != nil {
			return errors.Wrapf(err, "%s: n=%d", MethodChain, n)
		}

		prev := names[0]
		gid, err := w.AddKind(kind, prev, cfg.tag)
		if err != nil {
			return errors.Wrapf(err, "%s: add %s", MethodChain, prev)
		}
		cfg.trace.record(gid, prev)

		for _, name := range names[1:] {
			newRef, oldRef := refpath.At(name, ref1), refpath.At(prev, ref2)
			g, err := w.LinkKind(kind, newRef, oldRef, cfg.tag)
			if err != nil {
				return errors.Wrapf(err, "%s: link %s to %s", MethodChain, newRef, oldRef)
			}
			cfg.trace.record(g, name)
			prev = name
		}
		return nil
	}
}
