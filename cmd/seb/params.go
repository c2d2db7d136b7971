package main

import (
	"strconv"
	"strings"

	"github.com/Tobionecenobi/SEB/builder"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/world"
)

// parameters merges the description's default values with name=value
// overrides given on the command line.
func parameters(doc *builder.Document, overrides []string) (world.ParameterList, error) {
	pl := world.ParameterList{}
	if doc != nil {
		for k, v := range doc.Params {
			pl[k] = v
		}
	}
	for _, kv := range overrides {
		name, raw, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.WithHint(errors.Newf("bad parameter %q", kv), "use name=value, e.g. --param Rg_poly=2.5")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", name)
		}
		pl[name] = v
	}
	return pl, nil
}

// topLevel lists the members of every graph no structure stands for.
func topLevel(w *world.World) ([]string, error) {
	graphs, err := w.Graphs()
	if err != nil {
		return nil, err
	}
	wrapped := map[int]bool{}
	for _, g := range graphs {
		for _, m := range g.Members {
			if m.Wraps != 0 {
				wrapped[m.Wraps] = true
			}
		}
	}
	var out []string
	for _, g := range graphs {
		if wrapped[g.ID] {
			continue
		}
		for _, m := range g.Members {
			out = append(out, m.Name)
		}
	}
	return out, nil
}
