// Package seb is the Scattering Expression Builder: it composes symbolic
// small-angle scattering expressions for structures built from simple
// sub-units joined at reference points.
//
// 🧩 What is SEB?
//
//	A thread-safe engine that turns a description of how sub-units are
//	connected into the expressions a scattering experiment measures:
//		• Sub-units: polymers, rods, circles, disks, spheres, shells, cylinders
//		• Structures: named graphs of sub-units, nested to any depth
//		• Terms: form factors, form factor amplitudes, phase factors
//		• Sizes: Rg², mean square distances, scatterer counts
//		• Evaluation: parameter lists, q grids, series files
//
// Packages:
//
//	errors/    error kinds and context trails over cockroachdb/errors
//	logger/    process-wide zap logger
//	expr/      symbolic kernel: numbers, symbols, sums, products, functions
//	symbols/   memoized parameter symbols (beta_poly, A_poly:end1, ...)
//	refpath/   reference point paths: "structure:child:leaf.ref#label"
//	subunit/   closed-form tables for every sub-unit kind
//	core/      catalog of names, graphs and links
//	bfs/       connecting-path search between reference points
//	dfs/       nesting order and cycle checks over wrapped graphs
//	world/     construction, recursive assembly, queries, evaluation
//	builder/   chains, stars and YAML/TOML descriptions
//	examples/  reference structures (micelle, dendrimer, star chain, ...)
//	cmd/seb    command line front end
//
// Quick ASCII example, a diblock copolymer:
//
//	     A            B
//	x--------x = x--------x
//	end1  end2   end1  end2
//
//	w := world.New()
//	gid, _ := w.AddKind("GaussianPolymer", "A", "")
//	_, _ = w.LinkKind("GaussianPolymer", "B.end1", "A.end2", "")
//	_, _ = w.AddStructure(gid, "AB")
//	ff, _ := w.FormFactor("AB")
//
// From the command line:
//
//	seb formfactor triblock --example triblock --form generic
//	seb evaluate micelle --example micelle --log --qmin 0.01 --qmax 10
package seb
