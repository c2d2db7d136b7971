package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/subunit"
)

// TestAddAndLink verifies graph id allocation for leaves, links and
// structures.
func TestAddAndLink(t *testing.T) {
	w := newWorld()

	gA, err := w.AddKind(subunit.KindThinRod, "A", "rod")
	require.NoError(t, err)
	assert.Equal(t, 1, gA)

	gB, err := w.LinkKind(subunit.KindThinRod, "B.end1", "A.end2", "rod")
	require.NoError(t, err)
	assert.Equal(t, gA, gB, "a linked leaf joins the existing graph")

	gS, err := w.AddStructure(gA, "AB")
	require.NoError(t, err)
	assert.Equal(t, 2, gS, "a structure gets a graph of its own")

	assert.Equal(t, []string{"A", "AB", "B"}, w.Names())
	links := w.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "A.end2<--->B.end1", links[0].String())
}

// TestAddErrors verifies that rejected additions leave the catalog unchanged.
func TestAddErrors(t *testing.T) {
	w := newWorld()
	_, err := w.AddKind(subunit.KindThinRod, "A", "")
	require.NoError(t, err)

	_, err = w.AddKind(subunit.KindThinRod, "bad name!", "")
	assert.True(t, errors.Is(err, errors.ErrBadName))
	assert.Equal(t, []string{"A"}, w.Names())

	_, err = w.AddKind(subunit.KindThinRod, "B", "bad tag")
	assert.True(t, errors.Is(err, errors.ErrBadName))

	_, err = w.AddKind(subunit.KindThinRod, "A", "")
	assert.True(t, errors.Is(err, errors.ErrDuplicateName))

	_, err = w.AddKind("Teapot", "C", "")
	assert.True(t, errors.Is(err, errors.ErrBadLeaf))

	_, err = w.Add(nil, "D", "")
	assert.True(t, errors.Is(err, errors.ErrBadLeaf))

	u, err := subunit.New(subunit.KindThinRod)
	require.NoError(t, err)
	_, err = w.Add(u, "E", "")
	require.NoError(t, err)
	_, err = w.Add(u, "F", "")
	assert.True(t, errors.Is(err, errors.ErrBadLeaf), "a sub-unit is bound once")

	_, err = w.AddStructure(99, "S")
	assert.True(t, errors.Is(err, errors.ErrBadGraphID))
	_, err = w.AddStructure(1, "A")
	assert.True(t, errors.Is(err, errors.ErrDuplicateName))

	assert.Equal(t, []string{"A", "E"}, w.Names())
}

// TestLinkErrors verifies the validation of Link arguments.
func TestLinkErrors(t *testing.T) {
	w := newWorld()
	_, err := w.AddKind(subunit.KindGaussianPolymer, "A", "")
	require.NoError(t, err)

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "B.end1", "A.contour", "")
	assert.True(t, errors.Is(err, errors.ErrMissingSampleLabel))
	assert.Contains(t, errors.FlattenHints(err), "A.contour#a")

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "B.end1", "Z.end2", "")
	assert.True(t, errors.Is(err, errors.ErrUnknownName))

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "A.end1", "A.end2", "")
	assert.True(t, errors.Is(err, errors.ErrDuplicateName))

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "B.end1", "A.tip", "")
	assert.True(t, errors.Is(err, errors.ErrInvalidReference))

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "C.tip", "A.end2", "")
	assert.True(t, errors.Is(err, errors.ErrInvalidReference))

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "S:B.end1", "A.end2", "")
	assert.True(t, errors.Is(err, errors.ErrBadPathSyntax))

	_, err = w.LinkKind(subunit.KindGaussianPolymer, "B", "A.end2", "")
	assert.True(t, errors.Is(err, errors.ErrBadPathSyntax))

	assert.Equal(t, []string{"A"}, w.Names())
	assert.Empty(t, w.Links())
}

// TestErrorTrail verifies that public frames prefix the error context.
func TestErrorTrail(t *testing.T) {
	w := newWorld()
	_, err := w.LinkKind(subunit.KindThinRod, "B.end1", "Z.end2", "")
	require.Error(t, err)
	trail := errors.Trail(err)
	require.NotEmpty(t, trail)
	assert.Contains(t, trail[0], "World.Link")
	assert.Equal(t, errors.ErrUnknownName, errors.Kind(err))
}

// TestSampledLink verifies linking at a labelled sample of a distributed
// reference point.
func TestSampledLink(t *testing.T) {
	w := newWorld()
	gid, err := w.AddKind(subunit.KindGaussianPolymer, "A", "poly")
	require.NoError(t, err)
	_, err = w.LinkKind(subunit.KindGaussianPolymer, "B.end1", "A.contour#a", "poly")
	require.NoError(t, err)
	_, err = w.AddStructure(gid, "S")
	require.NoError(t, err)

	assert.Equal(t, "A.contour#a<--->B.end1", w.Links()[0].String())

	rg2, err := w.RadiusOfGyration2("S")
	require.NoError(t, err)
	assert.InDelta(t, 1.75, value(t, rg2, unitPoly()), 1e-12)
}

// TestFailedLinkStructuresSamplesNothing verifies that a LinkStructures
// rejected on its existing side leaves the new side's sub-unit unsampled.
func TestFailedLinkStructuresSamplesNothing(t *testing.T) {
	tests := []struct {
		name     string
		newRef   string
		oldRef   string
		kind     error
		newPoint string
	}{
		{"label on specific point", "D2:a2.contour#x", "D1:a1.end1#y", errors.ErrInvalidReference, "a2.contour#x"},
		{"missing label", "D2:a2.contour#x", "D1:a1.contour", errors.ErrMissingSampleLabel, "a2.contour#x"},
		{"unknown point", "D2:a2.contour#x", "D1:a1.tail", errors.ErrInvalidReference, "a2.contour#x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld()
			g1 := polymerChain(t, w, "a1", "b1")
			_, err := w.AddStructure(g1, "D1")
			require.NoError(t, err)
			g3 := polymerChain(t, w, "a2", "b2")
			links := w.Links()

			_, err = w.LinkStructures(g3, tc.newRef, tc.oldRef)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "%v", err)
			assert.Equal(t, links, w.Links())

			_, err = w.PhaseFactor(tc.newPoint, "a2.end1")
			assert.True(t, errors.Is(err, errors.ErrInvalidReference), "%s must not exist: %v", tc.newPoint, err)
		})
	}
}

// TestLinkStructures verifies joining structures and the checks on nested
// paths.
func TestLinkStructures(t *testing.T) {
	w := diblocks(t)

	graphs, err := w.Graphs()
	require.NoError(t, err)
	require.Len(t, graphs, 4)
	assert.Equal(t, 2, graphs[1].ID)
	assert.Equal(t, "D1", graphs[1].Members[0].Name)
	assert.Equal(t, 1, graphs[1].Members[0].Wraps)
	assert.Equal(t, "D2", graphs[1].Members[1].Name)
	assert.Equal(t, 3, graphs[1].Members[1].Wraps)

	require.Len(t, w.Links(), 3)
	assert.Equal(t, "D1:a1.end1<--->D2:a2.end1", w.Links()[2].String())

	// T wraps graph 2; wrapping T's graph into graph 2 would nest T in itself.
	_, err = w.LinkStructures(4, "X:T:D1:a1.end2", "D1:b1.end2")
	assert.True(t, errors.Is(err, errors.ErrBadGraphID))

	_, err = w.LinkStructures(3, "Y:a1.end1", "D1:a1.end2")
	assert.True(t, errors.Is(err, errors.ErrInvalidReference), "a1 is not in graph 3")

	_, err = w.LinkStructures(3, "Y:a2.end1", "D1:c1.end2")
	assert.True(t, errors.Is(err, errors.ErrInvalidReference))

	_, err = w.LinkStructures(3, "Y:a2.end1", "Q:a1.end2")
	assert.True(t, errors.Is(err, errors.ErrUnknownName))

	_, err = w.LinkStructures(3, "a2.end1", "D1:a1.end2")
	assert.True(t, errors.Is(err, errors.ErrBadPathSyntax))

	_, err = w.LinkStructures(3, "D2:a2.end1", "D1:a1.end2")
	assert.True(t, errors.Is(err, errors.ErrDuplicateName))

	order, err := w.NestingOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "D2", "D1"}, order)
}
