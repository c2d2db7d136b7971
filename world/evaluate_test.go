package world_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/world"
)

// TestEvaluate verifies numeric evaluation and its failure modes.
func TestEvaluate(t *testing.T) {
	a := expr.NewSymbol("a")
	e := expr.Prod(expr.Int(2), a)

	v, err := world.Evaluate(e, world.ParameterList{"a": 1.5})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = world.Evaluate(e, nil)
	assert.True(t, errors.Is(err, errors.ErrNotNumeric))
	assert.Contains(t, errors.FlattenHints(err), "not all parameters were specified")

	_, err = world.Evaluate(nil, nil)
	assert.True(t, errors.Is(err, errors.ErrNotNumeric))

	_, err = world.Evaluate(expr.Power(a, expr.Rat(1, 2)), world.ParameterList{"a": -1})
	assert.True(t, errors.Is(err, errors.ErrNotNumeric))
}

// TestParameterList verifies the chaining helpers.
func TestParameterList(t *testing.T) {
	pl := world.Q(0.1).Set("b", 2).Merge(world.ParameterList{"a": 1})
	assert.Equal(t, []string{"a", "b", "q"}, pl.Names())
	assert.Equal(t, 0.1, pl["q"])
}

// TestEvaluateSeries verifies evaluation over a q grid without touching
// the caller's parameters.
func TestEvaluateSeries(t *testing.T) {
	q := expr.NewSymbol("q")
	e := expr.Prod(expr.Int(2), q)
	pl := world.ParameterList{"a": 1}

	is, err := world.EvaluateSeries(e, pl, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, is)
	assert.NotContains(t, pl, "q")

	v, err := world.EvaluateAt(e, pl, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = world.EvaluateSeries(expr.Prod(q, expr.NewSymbol("b")), pl, []float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotNumeric))
	assert.Contains(t, err.Error(), "at q=1")
}

// TestWriteSeries verifies the header and data lines of a series file.
func TestWriteSeries(t *testing.T) {
	e := expr.Prod(expr.Int(2), expr.NewSymbol("q"))
	pl := world.ParameterList{"a": 1}

	var buf bytes.Buffer
	is, err := world.WriteSeries(&buf, e, pl, []float64{1, 2}, "doubling", "#")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, is)
	want := "#File generated by SEB\n" +
		"#doubling\n" +
		"#Expression = " + e.String() + "\n" +
		"#Parameters:\n" +
		"#\ta=1\n" +
		"1 2\n2 4\n"
	assert.Equal(t, want, buf.String())

	path := filepath.Join(t.TempDir(), "series.q")
	_, err = world.WriteSeriesFile(path, e, pl, []float64{1, 2}, "doubling", "#")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	_, err = world.WriteSeriesFile(filepath.Join(t.TempDir(), "missing", "x.q"), e, pl, []float64{1}, "", "")
	assert.Error(t, err)
}

// TestGrids verifies Linspace, Logspace and LogspaceBase.
func TestGrids(t *testing.T) {
	lin, err := world.Linspace(2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2}, lin)

	lg, err := world.Logspace(1, 100, 3)
	require.NoError(t, err)
	require.Len(t, lg, 3)
	assert.InDelta(t, 1, lg[0], 1e-12)
	assert.InDelta(t, 10, lg[1], 1e-12)
	assert.InDelta(t, 100, lg[2], 1e-9)

	base, err := world.LogspaceBase(1, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4, 8}, base)

	_, err = world.Linspace(0, 1, 3)
	assert.True(t, errors.Is(err, errors.ErrBadRange))
	_, err = world.Logspace(1, 2, 1)
	assert.True(t, errors.Is(err, errors.ErrBadRange))
	_, err = world.LogspaceBase(1, 2, 1)
	assert.True(t, errors.Is(err, errors.ErrBadRange))
}
