// File: methods_links.go
// Role: Link list: AddLink/IsLinked/Partners/Links/LinkCount.
// Determinism:
//   - Links() and Partners() follow insertion order.
// Concurrency:
//   - Mutations under muLinks write lock, queries under its read lock.
package core

import (
	"github.com/Tobionecenobi/SEB/errors"
)

// AddLink records the unordered pair r1, r2 and returns its canonical form.
// Adding a pair twice is a no-op.
//
// Implementation:
//   - Stage 1: Reject empty ends and self links.
//   - Stage 2: Canonicalize, then append to links and to both partner lists.
//
// Errors:
//   - ErrInvalidReference: an end is empty or r1 == r2.
//
// Complexity:
//   - Time O(1) amortized.
func (c *Catalog) AddLink(r1, r2 string) (Link, error) {
	if r1 == "" || r2 == "" {
		return Link{}, errors.Wrap(errors.ErrInvalidReference, "empty link end")
	}
	if r1 == r2 {
		return Link{}, errors.Wrapf(errors.ErrInvalidReference, "%q cannot be linked to itself", r1)
	}
	l := NewLink(r1, r2)

	c.muLinks.Lock()
	defer c.muLinks.Unlock()

	if _, dup := c.linkSet[l]; dup {
		return l, nil
	}
	c.linkSet[l] = struct{}{}
	c.links = append(c.links, l)
	c.partners[l.A] = append(c.partners[l.A], l.B)
	c.partners[l.B] = append(c.partners[l.B], l.A)

	return l, nil
}

// IsLinked reports whether r1 and r2 are directly linked, in either order.
func (c *Catalog) IsLinked(r1, r2 string) bool {
	c.muLinks.RLock()
	defer c.muLinks.RUnlock()
	_, ok := c.linkSet[NewLink(r1, r2)]
	return ok
}

// Partners returns the far ends of every link touching ref.
func (c *Catalog) Partners(ref string) []string {
	c.muLinks.RLock()
	defer c.muLinks.RUnlock()
	return append([]string(nil), c.partners[ref]...)
}

// Links returns every link in insertion order.
func (c *Catalog) Links() []Link {
	c.muLinks.RLock()
	defer c.muLinks.RUnlock()
	return append([]Link(nil), c.links...)
}

// LinkCount returns the number of links.
func (c *Catalog) LinkCount() int {
	c.muLinks.RLock()
	defer c.muLinks.RUnlock()
	return len(c.links)
}
