// File: types.go
// Role: Entry, Link and Catalog declarations plus the NewCatalog constructor.
package core

import (
	"sync"
)

// Kind tells sub-units and structures apart.
type Kind int

const (
	// KindSubunit marks a leaf with closed-form scattering terms.
	KindSubunit Kind = iota + 1
	// KindStructure marks a named wrapper around a graph id.
	KindStructure
)

func (k Kind) String() string {
	switch k {
	case KindSubunit:
		return "subunit"
	case KindStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// Entry is one catalogued name.
type Entry struct {
	// Name is unique across sub-units and structures.
	Name string

	// Kind is KindSubunit or KindStructure.
	Kind Kind

	// Graph is the id of the connected component the name is a member of.
	// Set by the catalog.
	Graph int

	// Wraps is the graph id a structure stands for; zero for sub-units.
	Wraps int

	// Value is the caller's instance (a leaf or a structure). The catalog
	// never inspects it.
	Value interface{}
}

// Link is an unordered pair of reference-point paths with A < B.
type Link struct {
	A string
	B string
}

// NewLink returns the canonical orientation of r1, r2.
func NewLink(r1, r2 string) Link {
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return Link{A: r1, B: r2}
}

// Other returns the far end of l seen from ref, or "" if ref is not an end.
func (l Link) Other(ref string) string {
	switch ref {
	case l.A:
		return l.B
	case l.B:
		return l.A
	default:
		return ""
	}
}

// String renders l as "A<--->B".
func (l Link) String() string { return l.A + "<--->" + l.B }

// Catalog is the in-memory store behind a World.
//
// muEntries protects entries, graphs and lastGraph; muLinks protects links,
// linkSet and partners.
type Catalog struct {
	muEntries sync.RWMutex // guards entries and graphs
	muLinks   sync.RWMutex // guards links

	entries   map[string]*Entry
	graphs    map[int][]string
	lastGraph int

	links    []Link
	linkSet  map[Link]struct{}
	partners map[string][]string
}

// NewCatalog returns an empty catalog.
// Complexity: O(1)
func NewCatalog() *Catalog {
	return &Catalog{
		entries:  make(map[string]*Entry),
		graphs:   make(map[int][]string),
		linkSet:  make(map[Link]struct{}),
		partners: make(map[string][]string),
	}
}
