package world_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/symbols"
	"github.com/Tobionecenobi/SEB/world"
)

// newWorld returns an empty World with a private symbol registry.
func newWorld() *world.World {
	return world.New(world.WithRegistry(symbols.NewRegistry()))
}

// polymerChain adds names[0] and links every following polymer's end1 to
// the previous one's end2. All polymers share tag "poly". It returns the id
// of the chain's graph.
func polymerChain(t *testing.T, w *world.World, names ...string) int {
	t.Helper()
	gid, err := w.AddKind(subunit.KindGaussianPolymer, names[0], "poly")
	require.NoError(t, err)
	for i := 1; i < len(names); i++ {
		g, err := w.LinkKind(subunit.KindGaussianPolymer, names[i]+".end1", names[i-1]+".end2", "poly")
		require.NoError(t, err)
		require.Equal(t, gid, g)
	}
	return gid
}

// diblocks builds two diblocks D1 (a1-b1) and D2 (a2-b2) tethered at their
// a ends and wrapped in T:
//
//	b1.end1<->a1.end2, D2:a2.end1<->D1:a1.end1, a2.end2<->b2.end1
//
// Graph ids: 1 {a1 b1}, 2 {D1 D2}, 3 {a2 b2}, 4 {T}.
func diblocks(t *testing.T) *world.World {
	t.Helper()
	w := newWorld()
	g1, err := w.AddKind(subunit.KindGaussianPolymer, "a1", "poly")
	require.NoError(t, err)
	_, err = w.LinkKind(subunit.KindGaussianPolymer, "b1.end1", "a1.end2", "poly")
	require.NoError(t, err)
	gD1, err := w.AddStructure(g1, "D1")
	require.NoError(t, err)

	g3, err := w.AddKind(subunit.KindGaussianPolymer, "a2", "poly")
	require.NoError(t, err)
	_, err = w.LinkKind(subunit.KindGaussianPolymer, "b2.end1", "a2.end2", "poly")
	require.NoError(t, err)
	g, err := w.LinkStructures(g3, "D2:a2.end1", "D1:a1.end1")
	require.NoError(t, err)
	require.Equal(t, gD1, g)

	_, err = w.AddStructure(gD1, "T")
	require.NoError(t, err)
	return w
}

// unitPoly is the parameter list of polymers tagged "poly" with unit
// weight and unit radius of gyration.
func unitPoly() world.ParameterList {
	return world.ParameterList{"beta_poly": 1, "Rg_poly": 1}
}

// value evaluates res with pl.
func value(t *testing.T, res world.Result, pl world.ParameterList) float64 {
	t.Helper()
	v, err := world.Evaluate(res.Expr, pl)
	require.NoError(t, err, res.String())
	return v
}
