package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
)

var (
	x     = expr.NewSymbol("x")
	q     = expr.NewSymbol("q")
	b     = expr.NewSymbol("b")
	r     = expr.NewSymbol("R")
	theta = expr.NewSymbol("t")
)

// TestLikeTermsCollect verifies sums and products collect like terms.
func TestLikeTermsCollect(t *testing.T) {
	assert.Equal(t, "2*x", expr.Sum(x, x).String())
	assert.Equal(t, "0", expr.Sum(x, expr.Neg(x)).String())
	assert.Equal(t, "1", expr.Prod(x, expr.Power(x, expr.Int(-1))).String())
	assert.Equal(t, "x + 1", expr.Sum(expr.Int(1), x).String())
	assert.Equal(t, "x^2", expr.Prod(x, x).String())
	assert.Equal(t, "0", expr.Prod(expr.Int(0), x).String())
}

// TestOrderIndependence verifies construction order does not change the canonical form.
func TestOrderIndependence(t *testing.T) {
	a := expr.Sum(expr.Prod(b, x), q, expr.Int(3))
	c := expr.Sum(expr.Int(3), q, expr.Prod(x, b))
	assert.True(t, expr.Equal(a, c))
	assert.Equal(t, a.String(), c.String())
}

// TestExactPowers verifies rational powers evaluate exactly.
func TestExactPowers(t *testing.T) {
	assert.Equal(t, "1/4", expr.Power(expr.Int(2), expr.Int(-2)).String())
	assert.Equal(t, "9/4", expr.Sqr(expr.Rat(3, 2)).String())
	assert.Equal(t, "x", expr.Sqr(expr.Sqrt(x)).String())
	n, ok := expr.AsNumber(expr.Div(expr.Int(6), expr.Int(4)))
	require.True(t, ok)
	assert.Equal(t, "3/2", n.String())
}

// TestExpandBinomial verifies (x+1)^2 - (x^2 + 2x + 1) expands to zero.
func TestExpandBinomial(t *testing.T) {
	lhs := expr.Sqr(expr.Sum(x, expr.Int(1)))
	rhs := expr.Sum(expr.Sqr(x), expr.Prod(expr.Int(2), x), expr.Int(1))
	assert.Equal(t, "0", expr.Expand(expr.Sub(lhs, rhs)).String())
}

// TestCoeff verifies polynomial coefficients in q are read after expansion.
func TestCoeff(t *testing.T) {
	guinier := expr.Prod(expr.Sqr(b), expr.Sub(expr.Int(1), expr.Prod(expr.Rat(1, 3), expr.Sqr(q), r)))

	c0 := expr.Coeff(guinier, q, 0)
	c2 := expr.Coeff(guinier, q, 2)
	assert.True(t, expr.Equal(expr.Sqr(b), c0))
	assert.True(t, expr.Equal(expr.Prod(expr.Rat(-1, 3), expr.Sqr(b), r), c2))
	assert.Equal(t, "0", expr.Coeff(guinier, q, 1).String())

	rg2 := expr.Div(expr.Prod(expr.Int(-3), c2), c0)
	assert.Equal(t, "R", rg2.String())
}

// TestSubsAndEval verifies substitution followed by numeric evaluation.
func TestSubsAndEval(t *testing.T) {
	f := expr.Div(expr.Sub(expr.Int(1), expr.Exp(expr.Neg(x))), x)
	g := f.Subs(map[string]expr.Expr{"x": expr.Prod(expr.Sqr(q), expr.Sqr(r))})

	v, err := g.Eval(map[string]float64{"q": 0.5, "R": 2})
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-1), v, 1e-15)

	_, err = g.Eval(map[string]float64{"q": 0.5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotNumeric))
	assert.Equal(t, []string{"R", "q"}, expr.Symbols(g))
}

// TestFoldedFunctions verifies exact identities at special arguments.
func TestFoldedFunctions(t *testing.T) {
	assert.Equal(t, "1", expr.Exp(expr.Int(0)).String())
	assert.Equal(t, "0", expr.Sin(expr.Int(0)).String())
	assert.Equal(t, "1", expr.Six(expr.Int(0)).String())
	assert.Equal(t, "J1(x)", expr.BesselJ1(x).String())
}

// TestSpecialFunctions verifies numeric back ends against reference values.
func TestSpecialFunctions(t *testing.T) {
	assert.InDelta(t, 0.9460830703671830, expr.SinIntegral(1), 1e-12)
	assert.InDelta(t, 1.8519370519824662, expr.SinIntegral(math.Pi), 1e-10)
	assert.InDelta(t, 1.6583475942188740, expr.SinIntegral(10), 1e-10)
	assert.InDelta(t, -expr.SinIntegral(3), expr.SinIntegral(-3), 1e-15)

	assert.InDelta(t, 0.5380795069127684, expr.Dawson(1), 1e-6)
	assert.InDelta(t, 0.0993359923978529, expr.Dawson(0.1), 1e-6)

	assert.InDelta(t, 0.5686566270482879, expr.Struve(0, 1), 1e-10)
	assert.InDelta(t, 0.1984573362019444, expr.Struve(1, 1), 1e-10)
	assert.InDelta(t, expr.Struve(0, 20-1e-9), expr.Struve(0, 20+1e-9), 1e-6)
	assert.InDelta(t, expr.Struve(1, 20-1e-9), expr.Struve(1, 20+1e-9), 1e-6)

	assert.InDelta(t, math.J0(2), expr.Hyp0F1Regularized(1, -1), 1e-14)
	assert.InDelta(t, math.J1(4)/2, expr.Hyp0F1Regularized(2, -4), 1e-14)
	assert.InDelta(t, 1.590636854637329, expr.Hyp0F1Regularized(2, 1), 1e-12)
}

// TestIntegral verifies quadrature of a bound variable.
func TestIntegral(t *testing.T) {
	in := expr.Integrate(expr.Sin(theta), theta, expr.Int(0), expr.Pi)
	v, err := in.Eval(nil)
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-12)

	scaled := expr.Integrate(expr.Prod(r, expr.Cos(theta)), theta, expr.Int(0), expr.Div(expr.Pi, expr.Int(2)))
	assert.Equal(t, []string{"R"}, expr.Symbols(scaled))
	v, err = scaled.Subs(map[string]expr.Expr{"R": expr.Int(3), "t": expr.Int(100)}).Eval(nil)
	require.NoError(t, err)
	assert.InDelta(t, 3, v, 1e-12)
}
