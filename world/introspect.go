// File: introspect.go
// Role: read-only views of a World: names, links, graph membership, the
//       nesting tree and reference point paths, as values and as text.
// Determinism:
//   - Links follow insertion order, graphs ascend by id, members keep
//     insertion order.
// Concurrency:
//   - Every view takes the World's read lock.
package world

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/errors"
)

// Member is one name in a graph.
type Member struct {
	Name string
	Kind core.Kind
	// Wraps is the graph a structure stands for; zero for sub-units.
	Wraps int
}

// Graph is one connected component and its members.
type Graph struct {
	ID      int
	Members []Member
}

// Names returns every catalogued name, sorted.
func (w *World) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cat.Names()
}

// Kind returns whether name is a sub-unit or a structure.
func (w *World) Kind(name string) (core.Kind, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, err := w.entry(name)
	if err != nil {
		return 0, errors.Wrapf(err, "World.Kind(%q)", name)
	}
	return e.Kind, nil
}

// Links returns every link in the order it was made.
func (w *World) Links() []core.Link {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cat.Links()
}

// WriteLinks writes one link per line, the first end right-aligned in 50
// columns.
func (w *World) WriteLinks(out io.Writer) error {
	var b strings.Builder
	for _, l := range w.Links() {
		fmt.Fprintf(&b, "%50s<--->%s\n", l.A, l.B)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// Graphs returns every graph with its members.
func (w *World) Graphs() ([]Graph, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := w.cat.GraphIDs()
	out := make([]Graph, 0, len(ids))
	for _, gid := range ids {
		names, err := w.cat.Members(gid)
		if err != nil {
			return nil, err
		}
		g := Graph{ID: gid, Members: make([]Member, 0, len(names))}
		for _, n := range names {
			e, err := w.entry(n)
			if err != nil {
				return nil, err
			}
			g.Members = append(g.Members, Member{Name: n, Kind: e.Kind, Wraps: e.Wraps})
		}
		out = append(out, g)
	}
	return out, nil
}

// WriteGraphIDs writes one graph per line as "id -> member member(wraps) ".
func (w *World) WriteGraphIDs(out io.Writer) error {
	graphs, err := w.Graphs()
	if err != nil {
		return errors.Wrap(err, "World.WriteGraphIDs")
	}
	var b strings.Builder
	for _, g := range graphs {
		fmt.Fprintf(&b, "%d -> ", g.ID)
		for _, m := range g.Members {
			b.WriteString(m.Name)
			if m.Kind == core.KindStructure {
				fmt.Fprintf(&b, "(%d)", m.Wraps)
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	_, err = io.WriteString(out, b.String())
	return err
}

// FolderPrint writes the nesting tree below name, one node per line, in
// the style of a directory listing.
//
// Errors:
//   - ErrUnknownName: name is not catalogued.
func (w *World) FolderPrint(out io.Writer, name string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var b strings.Builder
	if err := w.folder(&b, name, "", true); err != nil {
		return errors.Wrapf(err, "World.FolderPrint(%q)", name)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func (w *World) folder(b *strings.Builder, name, indent string, last bool) error {
	e, err := w.entry(name)
	if err != nil {
		return err
	}
	b.WriteString(indent)
	if last {
		b.WriteString("└──")
	} else {
		b.WriteString("├──")
	}
	b.WriteString(name)
	b.WriteString("\n")
	if e.Kind != core.KindStructure {
		return nil
	}

	children, err := w.children(name)
	if err != nil {
		return err
	}
	if last {
		indent += "    "
	} else {
		indent += "│   "
	}
	for i, c := range children {
		if err := w.folder(b, c, indent, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}

// WritePath writes each point of path after prefix, separating consecutive
// points with sep.
func WritePath(out io.Writer, path []string, prefix, sep string) error {
	var b strings.Builder
	for i, p := range path {
		b.WriteString(prefix)
		b.WriteString(p)
		if i < len(path)-1 {
			b.WriteString(sep)
		}
	}
	_, err := io.WriteString(out, b.String())
	return err
}
