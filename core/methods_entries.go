// File: methods_entries.go
// Role: Name catalog and graph-id partition: AddToNewGraph/AddToGraph,
//       Has/Get/Names/Len, ValidGraph/GraphOf/Members/Contains/GraphIDs.
// Determinism:
//   - Names() is sorted ascending; Members() keeps insertion order;
//     GraphIDs() is ascending.
// Concurrency:
//   - Mutations under muEntries write lock, queries under its read lock.
package core

import (
	"sort"

	"github.com/Tobionecenobi/SEB/errors"
)

// AddToNewGraph catalogues e as the only member of a freshly allocated
// graph id and returns that id.
//
// Implementation:
//   - Stage 1: Reject an empty or already catalogued name.
//   - Stage 2: Allocate lastGraph+1, store the entry with Graph set.
//
// Errors:
//   - ErrBadName: e.Name is empty.
//   - ErrDuplicateName: e.Name already present.
//
// Complexity:
//   - Time O(1), Space O(1).
func (c *Catalog) AddToNewGraph(e Entry) (int, error) {
	if e.Name == "" {
		return 0, errors.Wrap(errors.ErrBadName, "empty name")
	}

	c.muEntries.Lock()
	defer c.muEntries.Unlock()

	if _, exists := c.entries[e.Name]; exists {
		return 0, errors.Wrapf(errors.ErrDuplicateName, "name %q", e.Name)
	}

	c.lastGraph++
	e.Graph = c.lastGraph
	c.entries[e.Name] = &e
	c.graphs[e.Graph] = []string{e.Name}

	return e.Graph, nil
}

// AddToGraph catalogues e as a new member of the existing graph gid.
//
// Errors:
//   - ErrBadName, ErrDuplicateName as AddToNewGraph.
//   - ErrBadGraphID: gid was never allocated.
//
// Complexity:
//   - Time O(1) amortized.
func (c *Catalog) AddToGraph(gid int, e Entry) error {
	if e.Name == "" {
		return errors.Wrap(errors.ErrBadName, "empty name")
	}

	c.muEntries.Lock()
	defer c.muEntries.Unlock()

	if _, exists := c.entries[e.Name]; exists {
		return errors.Wrapf(errors.ErrDuplicateName, "name %q", e.Name)
	}
	if _, ok := c.graphs[gid]; !ok {
		return errors.Wrapf(errors.ErrBadGraphID, "graph id %d", gid)
	}

	e.Graph = gid
	c.entries[e.Name] = &e
	c.graphs[gid] = append(c.graphs[gid], e.Name)

	return nil
}

// Has reports whether name is catalogued.
func (c *Catalog) Has(name string) bool {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	_, ok := c.entries[name]
	return ok
}

// Get returns a copy of the entry for name.
//
// Errors:
//   - ErrUnknownName: name is not catalogued.
func (c *Catalog) Get(name string) (Entry, error) {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, errors.Wrapf(errors.ErrUnknownName, "name %q", name)
	}
	return *e, nil
}

// Names returns every catalogued name, sorted.
func (c *Catalog) Names() []string {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	out := make([]string, 0, len(c.entries))
	for n := range c.entries {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of catalogued names.
func (c *Catalog) Len() int {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	return len(c.entries)
}

// ValidGraph reports whether gid has been allocated.
func (c *Catalog) ValidGraph(gid int) bool {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	return gid >= 1 && gid <= c.lastGraph
}

// GraphOf returns the graph id name is a member of.
//
// Errors:
//   - ErrUnknownName: name is not catalogued.
func (c *Catalog) GraphOf(name string) (int, error) {
	e, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Graph, nil
}

// Members returns the member names of gid in insertion order.
//
// Errors:
//   - ErrBadGraphID: gid was never allocated.
func (c *Catalog) Members(gid int) ([]string, error) {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	m, ok := c.graphs[gid]
	if !ok {
		return nil, errors.Wrapf(errors.ErrBadGraphID, "graph id %d", gid)
	}
	return append([]string(nil), m...), nil
}

// Contains reports whether name is a direct member of gid.
func (c *Catalog) Contains(gid int, name string) bool {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	for _, m := range c.graphs[gid] {
		if m == name {
			return true
		}
	}
	return false
}

// GraphIDs returns every allocated graph id, ascending.
func (c *Catalog) GraphIDs() []int {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()
	out := make([]int, 0, c.lastGraph)
	for g := 1; g <= c.lastGraph; g++ {
		out = append(out, g)
	}
	return out
}
