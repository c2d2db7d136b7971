package expr

import "github.com/Tobionecenobi/SEB/errors"

// Integral is a definite integral of body over v from lo to hi, evaluated
// numerically by composite Gauss-Legendre quadrature.
type Integral struct {
	body   Expr
	v      string
	lo, hi Expr
}

// Panels used by the composite rule.
const integralPanels = 24

// 8-point Gauss-Legendre nodes and weights on [-1, 1].
var (
	glNodes = [8]float64{
		-0.9602898564975363, -0.7966664774136267, -0.5255324099163290, -0.1834346424956498,
		0.1834346424956498, 0.5255324099163290, 0.7966664774136267, 0.9602898564975363,
	}
	glWeights = [8]float64{
		0.1012285362903763, 0.2223810344533745, 0.3137066458778873, 0.3626837833783620,
		0.3626837833783620, 0.3137066458778873, 0.2223810344533745, 0.1012285362903763,
	}
)

// Integrate returns the definite integral of body with respect to the
// symbol v between lo and hi.
func Integrate(body Expr, v *Sym, lo, hi Expr) Expr {
	if n, ok := body.(*Num); ok && n.IsZero() {
		return zero
	}
	return &Integral{body: body, v: v.name, lo: lo, hi: hi}
}

func (in *Integral) String() string {
	return "integral(" + in.body.String() + ", " + in.v + ", " + in.lo.String() + ", " + in.hi.String() + ")"
}

func (in *Integral) Eval(env map[string]float64) (float64, error) {
	a, err := in.lo.Eval(env)
	if err != nil {
		return 0, err
	}
	b, err := in.hi.Eval(env)
	if err != nil {
		return 0, err
	}

	local := make(map[string]float64, len(env)+1)
	for k, x := range env {
		local[k] = x
	}
	h := (b - a) / integralPanels
	var total float64
	for p := 0; p < integralPanels; p++ {
		mid := a + (float64(p)+0.5)*h
		for i, t := range glNodes {
			local[in.v] = mid + 0.5*h*t
			f, err := in.body.Eval(local)
			if err != nil {
				return 0, errors.Wrapf(err, "integrand over %s", in.v)
			}
			total += glWeights[i] * f
		}
	}
	return 0.5 * h * total, nil
}

func (in *Integral) Subs(m map[string]Expr) Expr {
	inner := m
	if _, bound := m[in.v]; bound {
		inner = make(map[string]Expr, len(m))
		for k, x := range m {
			if k != in.v {
				inner[k] = x
			}
		}
	}
	return &Integral{body: in.body.Subs(inner), v: in.v, lo: in.lo.Subs(m), hi: in.hi.Subs(m)}
}

func (in *Integral) prec() int { return precAtom }

func (in *Integral) walk(fn func(Expr)) {
	fn(in)
	in.body.walk(fn)
	in.lo.walk(fn)
	in.hi.walk(fn)
}
