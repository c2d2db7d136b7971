// Package world assembles small-angle scattering expressions for structures
// built from sub-units joined at reference points.
//
// A World owns every sub-unit and structure, the graphs they form and the
// links that join them. Growth only ever attaches a new sub-unit (or a new
// structure) to an existing one, so every graph is a tree and the path
// between two reference points at one nesting level is unique.
//
// Construction:
//
//	w := world.New()
//	gid, _ := w.AddKind("GaussianPolymer", "A", "poly")
//	_, _ = w.LinkKind("GaussianPolymer", "B.end1", "A.end2", "poly")
//	_, _ = w.AddStructure(gid, "AB")
//
// Queries resolve a structure by descending into its children until the
// requested depth runs out, where placeholder symbols stand in for the
// structure's own terms:
//
//	res, err := w.FormFactor("AB", world.WithForm(subunit.Guinier))
//	rg2, err := w.RadiusOfGyration2("AB")
//
// Reference point paths follow the grammar of package refpath:
// "structure:child:leaf.ref#label". Structure terms are keyed by the part of
// the path below the structure: A_S:child.ref, Psi_S:child.r1,child.r2.
//
// Every Result carries the free parameters its assembly touched; Evaluate,
// EvaluateSeries and WriteSeries turn it into numbers once they are set.
//
// Concurrency: construction takes a write lock and queries a read lock, so
// any number of queries may run in parallel against a World that is no
// longer growing.
package world
