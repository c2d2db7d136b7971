// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildWorld(wopts, bopts, cons...). Creates the World,
//     resolves cfg, runs cons in order. Apply does the same on an existing
//     World.
//   - Constructors are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig.
//   - Determinism: same inputs, options and constructor order ⇒ identical
//     Worlds (names, graph ids, links).
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/world"
)

// Constructor applies a deterministic mutation to a World using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first World call.
//   - Record every graph they create or grow in cfg.trace.
//   - Return errors, never panic.
type Constructor func(w *world.World, cfg builderConfig) error

// BuildWorld creates a World with options wopts, resolves the builder
// configuration from bopts, and applies all constructors in order. Any
// constructor error is wrapped with "BuildWorld" and returned immediately;
// no partial cleanup is attempted.
//
// Errors:
//   - ErrConstructFailed: a nil constructor.
//   - Constructor errors, builder or world sentinels, under their context.
func BuildWorld(wopts []world.Option, bopts []BuilderOption, cons ...Constructor) (*world.World, error) {
	w := world.New(wopts...)
	if err := apply(w, newBuilderConfig(bopts...), cons); err != nil {
		return nil, errors.Wrap(err, "BuildWorld")
	}
	return w, nil
}

// Apply runs constructors against an existing World. Graph references made
// by Wrap and by description steps resolve only against graphs produced in
// this call.
func Apply(w *world.World, bopts []BuilderOption, cons ...Constructor) error {
	if w == nil {
		return errors.Wrap(ErrConstructFailed, "Apply: nil World")
	}
	if err := apply(w, newBuilderConfig(bopts...), cons); err != nil {
		return errors.Wrap(err, "Apply")
	}
	return nil
}

func apply(w *world.World, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return errors.Wrapf(ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(w, cfg); err != nil {
			return err
		}
	}
	return nil
}
