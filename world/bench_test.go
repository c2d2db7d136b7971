package world_test

import (
	"fmt"
	"testing"

	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/world"
)

// chainWorld returns a structure "chain" of n Gaussian polymers joined end
// to end.
func chainWorld(b *testing.B, n int) *world.World {
	b.Helper()
	w := newWorld()
	gid, err := w.AddKind(subunit.KindGaussianPolymer, "p0", "poly")
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i < n; i++ {
		ref := fmt.Sprintf("p%d.end1", i)
		if _, err := w.LinkKind(subunit.KindGaussianPolymer, ref, fmt.Sprintf("p%d.end2", i-1), "poly"); err != nil {
			b.Fatal(err)
		}
	}
	if _, err := w.AddStructure(gid, "chain"); err != nil {
		b.Fatal(err)
	}
	return w
}

// BenchmarkFormFactor_Chain measures assembling the form factor of a chain
// of 20 polymers, which needs one path search per pair.
func BenchmarkFormFactor_Chain(b *testing.B) {
	w := chainWorld(b, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.FormFactor("chain"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRadiusOfGyration2_Chain measures the Guinier expansion route.
func BenchmarkRadiusOfGyration2_Chain(b *testing.B) {
	w := chainWorld(b, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.RadiusOfGyration2("chain"); err != nil {
			b.Fatal(err)
		}
	}
}
