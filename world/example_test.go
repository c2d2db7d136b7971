package world_test

import (
	"fmt"
	"os"

	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/symbols"
	"github.com/Tobionecenobi/SEB/world"
)

// ExampleWorld builds a rod dimer and counts its scattering pairs.
func ExampleWorld() {
	w := world.New(world.WithRegistry(symbols.NewRegistry()))
	gid, _ := w.AddKind(subunit.KindThinRod, "A", "rod")
	_, _ = w.LinkKind(subunit.KindThinRod, "B.end1", "A.end2", "rod")
	_, _ = w.AddStructure(gid, "AB")

	_ = w.FolderPrint(os.Stdout, "AB")
	pairs, _ := w.CountPairs("AB")
	fmt.Println("pairs:", pairs)
	// Output:
	// └──AB
	//     ├──A
	//     └──B
	// pairs: 4
}

// ExampleWorld_RadiusOfGyration2 reads Rg² of a two block polymer off its
// Guinier expansion.
func ExampleWorld_RadiusOfGyration2() {
	w := world.New(world.WithRegistry(symbols.NewRegistry()))
	gid, _ := w.AddKind(subunit.KindGaussianPolymer, "A", "poly")
	_, _ = w.LinkKind(subunit.KindGaussianPolymer, "B.end1", "A.end2", "poly")
	_, _ = w.AddStructure(gid, "AB")

	rg2, _ := w.RadiusOfGyration2("AB")
	v, _ := world.Evaluate(rg2.Expr, world.ParameterList{"beta_poly": 1, "Rg_poly": 2})
	fmt.Printf("Rg² = %.4g\n", v)
	// Output:
	// Rg² = 8
}

// ExampleWorld_Path lists the reference points between the two free ends
// of a rod dimer.
func ExampleWorld_Path() {
	w := world.New(world.WithRegistry(symbols.NewRegistry()))
	gid, _ := w.AddKind(subunit.KindThinRod, "A", "rod")
	_, _ = w.LinkKind(subunit.KindThinRod, "B.end1", "A.end2", "rod")
	_, _ = w.AddStructure(gid, "AB")

	p, _ := w.Path("AB:A.end1", "AB:B.end2")
	_ = world.WritePath(os.Stdout, p, "", " -> ")
	fmt.Println()
	// Output:
	// AB:A.end1 -> AB:A.end2 -> AB:B.end1 -> AB:B.end2
}
