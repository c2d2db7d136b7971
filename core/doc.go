// Package core provides the thread-safe catalogs behind a structure graph:
// the name catalog, the connected-component (graph id) partition and the
// link list.
//
// A Catalog stores three things:
//
//   - Entries: every named sub-unit or structure, keyed by a globally unique
//     name, with its kind, the graph id it belongs to and, for structures,
//     the graph id it wraps.
//   - Graphs: graph id → member names in insertion order. Ids are allocated
//     monotonically from 1 and never reused.
//   - Links: unordered pairs of reference-point paths, stored with the
//     lexicographically smaller path first, enumerated in insertion order.
//
// Everything is create-only. There is no removal API: a structure stores
// only the id it wraps, so a graph may keep growing after it was wrapped and
// every structure built on it sees the new members.
//
// Core Methods:
//
//	// Entries
//	AddToNewGraph(e Entry) (gid int, err error) // O(1)
//	AddToGraph(gid int, e Entry) error          // O(1)
//	Has(name string) bool                       // O(1)
//	Get(name string) (Entry, error)             // O(1)
//	Names() []string                            // O(N·log N), sorted
//
//	// Graphs
//	ValidGraph(gid int) bool                    // O(1)
//	GraphOf(name string) (int, error)           // O(1)
//	Members(gid int) ([]string, error)          // O(M), insertion order
//	Contains(gid int, name string) bool         // O(M)
//	GraphIDs() []int                            // O(G), ascending
//
//	// Links
//	AddLink(r1, r2 string) (Link, error)        // O(1)
//	IsLinked(r1, r2 string) bool                // O(1)
//	Partners(ref string) []string               // O(deg), insertion order
//	Links() []Link                              // O(L), insertion order
//
// Concurrency:
//
//	muEntries guards entries and graphs; muLinks guards links. No method holds
//	both locks at once.
//
// Errors:
//
//	ErrDuplicateName     name already catalogued
//	ErrUnknownName       name not catalogued
//	ErrBadGraphID        graph id out of range
//	ErrInvalidReference  a reference point linked to itself
package core
