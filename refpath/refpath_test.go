package refpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/refpath"
)

// TestPrefixPostfix verifies the top-level split of nested paths.
func TestPrefixPostfix(t *testing.T) {
	cases := []struct{ in, prefix, postfix string }{
		{"A:B:C.end1", "A", "B:C.end1"},
		{"C.end1", "C", ""},
		{"C", "C", ""},
	}
	for _, c := range cases {
		p, err := refpath.Prefix(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.prefix, p, c.in)
		if c.postfix == "" {
			_, err := refpath.Postfix(c.in)
			assert.True(t, errors.Is(err, errors.ErrBadPathSyntax), c.in)
			continue
		}
		pf, err := refpath.Postfix(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.postfix, pf)
	}

	_, err := refpath.Prefix(":A")
	assert.Error(t, err)
	_, err = refpath.Prefix(".end")
	assert.Error(t, err)
	_, err = refpath.Postfix("A:")
	assert.Error(t, err)
}

// TestNameAndReference verifies leaf and reference extraction.
func TestNameAndReference(t *testing.T) {
	n, err := refpath.Name("S:T:poly.contour#a")
	require.NoError(t, err)
	assert.Equal(t, "poly", n)

	n, err = refpath.Name("poly")
	require.NoError(t, err)
	assert.Equal(t, "poly", n)

	_, err = refpath.Name("S:.end")
	assert.Error(t, err)

	ref, err := refpath.Reference("S:poly.contour#a")
	require.NoError(t, err)
	assert.Equal(t, "contour#a", ref)

	base, err := refpath.ReferenceBase("S:poly.contour#a")
	require.NoError(t, err)
	assert.Equal(t, "contour", base)

	label, err := refpath.AfterHash("S:poly.contour#a")
	require.NoError(t, err)
	assert.Equal(t, "a", label)

	_, err = refpath.ReferenceBase("poly.#a")
	assert.Error(t, err)
	_, err = refpath.ReferenceBase("poly#a.end")
	assert.Error(t, err)
	_, err = refpath.AfterHash("poly.contour#")
	assert.Error(t, err)
	assert.Equal(t, "contour", refpath.StripHash("contour#x"))
}

// TestValidNames verifies the naming character sets.
func TestValidNames(t *testing.T) {
	assert.True(t, refpath.ValidName("Poly1"))
	assert.False(t, refpath.ValidName("bad name!"))
	assert.False(t, refpath.ValidName(""))
	assert.False(t, refpath.ValidName("a:b"))
	assert.True(t, refpath.ValidReference("A:b.contour#1"))
	assert.False(t, refpath.ValidReference("A b.end"))
}

// TestParse verifies the structured address parser.
func TestParse(t *testing.T) {
	a, err := refpath.Parse("S:T:poly.contour#a")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "T", "poly"}, a.Segments)
	assert.Equal(t, "contour", a.Base)
	assert.Equal(t, "a", a.Label)
	assert.Equal(t, "S", a.Top())
	assert.Equal(t, "poly", a.Leaf())
	assert.True(t, a.Nested())
	assert.Equal(t, "S:T:poly.contour#a", a.String())

	in, err := a.Inner()
	require.NoError(t, err)
	assert.Equal(t, "T:poly.contour#a", in.String())

	plain, err := refpath.Parse("rod")
	require.NoError(t, err)
	assert.False(t, plain.HasReference())
	_, err = plain.Inner()
	assert.True(t, errors.Is(err, errors.ErrBadPathSyntax))

	for _, bad := range []string{"A::B", "A.b.c", "A#x", "A.end#", "A.#x"} {
		_, err := refpath.Parse(bad)
		assert.True(t, errors.Is(err, errors.ErrBadPathSyntax), bad)
	}
	_, err = refpath.Parse("bad name")
	assert.True(t, errors.Is(err, errors.ErrBadName))
}
