// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// config.go - internal configuration, deterministic defaults, and the trace
// of graphs produced so far.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • tag  = ""          (each sub-unit tagged with its own name)
//   • hub  = CenterName  ("Center")

package builder

import "github.com/Tobionecenobi/SEB/errors"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value; only the shared trace is mutable.
type builderConfig struct {
	idFn IDFn
	tag  string
	hub  string

	trace *trace
}

// trace remembers, for one BuildWorld or Apply call, the graph every named
// sub-unit or structure landed in and the graph touched last.
type trace struct {
	last   int
	graphs map[string]int
}

// newBuilderConfig applies opts in order (later overrides earlier) on top of
// the defaults and starts an empty trace.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:  DefaultIDFn,
		hub:   CenterName,
		trace: &trace{graphs: map[string]int{}},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// record notes that names live in graph gid, which becomes the last graph.
func (t *trace) record(gid int, names ...string) {
	for _, n := range names {
		t.graphs[n] = gid
	}
	t.last = gid
}

// graphOf returns the graph recorded for name.
func (t *trace) graphOf(name string) (int, error) {
	gid, ok := t.graphs[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownGraph, "no graph recorded for %q", name)
	}
	return gid, nil
}

// name returns prefix followed by the scheme's suffix for idx.
func (c builderConfig) name(prefix string, idx int) (string, error) {
	id, err := c.idFn(idx)
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}

// names returns the names of the first n sub-units under prefix, so a
// constructor learns of an exhausted scheme before touching the World.
func (c builderConfig) names(prefix string, n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		name, err := c.name(prefix, i)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}
