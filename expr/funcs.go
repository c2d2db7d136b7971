package expr

import (
	"math"
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
)

// Func is an application of a named function. Unless an exact identity
// applies, it stays a lazy term until Eval.
type Func struct {
	name string
	args []Expr
}

type funcSpec struct {
	eval func(a []float64) float64
	// fold returns an exact value for special arguments, or nil.
	fold func(a []Expr) Expr
}

var funcs = map[string]funcSpec{
	"exp":       {eval: unary(math.Exp), fold: foldAt0(one)},
	"log":       {eval: unary(math.Log), fold: foldAt1(zero)},
	"sin":       {eval: unary(math.Sin), fold: foldAt0(zero)},
	"cos":       {eval: unary(math.Cos), fold: foldAt0(one)},
	"csc":       {eval: unary(func(x float64) float64 { return 1 / math.Sin(x) })},
	"sec":       {eval: unary(func(x float64) float64 { return 1 / math.Cos(x) }), fold: foldAt0(one)},
	"Si":        {eval: unary(SinIntegral), fold: foldAt0(zero)},
	"Six":       {eval: unary(sinIntegralOverX), fold: foldAt0(one)},
	"J0":        {eval: unary(math.J0), fold: foldAt0(one)},
	"J1":        {eval: unary(math.J1), fold: foldAt0(zero)},
	"J2":        {eval: unary(func(x float64) float64 { return math.Jn(2, x) }), fold: foldAt0(zero)},
	"DawsonF":   {eval: unary(Dawson), fold: foldAt0(zero)},
	"Erf":       {eval: unary(math.Erf), fold: foldAt0(zero)},
	"Erfc":      {eval: unary(math.Erfc), fold: foldAt0(one)},
	"StruveH0":  {eval: unary(func(x float64) float64 { return Struve(0, x) }), fold: foldAt0(zero)},
	"StruveH1":  {eval: unary(func(x float64) float64 { return Struve(1, x) }), fold: foldAt0(zero)},
	"Hyp0F1Reg": {eval: func(a []float64) float64 { return Hyp0F1Regularized(a[0], a[1]) }},
}

func unary(f func(float64) float64) func([]float64) float64 {
	return func(a []float64) float64 { return f(a[0]) }
}

func foldAt0(v Expr) func([]Expr) Expr {
	return func(a []Expr) Expr {
		if n, ok := a[0].(*Num); ok && n.IsZero() {
			return v
		}
		return nil
	}
}

func foldAt1(v Expr) func([]Expr) Expr {
	return func(a []Expr) Expr {
		if n, ok := a[0].(*Num); ok && n.IsOne() {
			return v
		}
		return nil
	}
}

func apply(name string, args ...Expr) Expr {
	if spec, ok := funcs[name]; ok && spec.fold != nil {
		if v := spec.fold(args); v != nil {
			return v
		}
	}
	return &Func{name: name, args: args}
}

// Exp returns e^x.
func Exp(x Expr) Expr { return apply("exp", x) }

// Log returns the natural logarithm of x.
func Log(x Expr) Expr { return apply("log", x) }

// Sin returns sin(x).
func Sin(x Expr) Expr { return apply("sin", x) }

// Cos returns cos(x).
func Cos(x Expr) Expr { return apply("cos", x) }

// Csc returns 1/sin(x).
func Csc(x Expr) Expr { return apply("csc", x) }

// Sec returns 1/cos(x).
func Sec(x Expr) Expr { return apply("sec", x) }

// Si returns the sine integral of x.
func Si(x Expr) Expr { return apply("Si", x) }

// Six returns Si(x)/x, continuous at 0.
func Six(x Expr) Expr { return apply("Six", x) }

// BesselJ0 returns J0(x).
func BesselJ0(x Expr) Expr { return apply("J0", x) }

// BesselJ1 returns J1(x).
func BesselJ1(x Expr) Expr { return apply("J1", x) }

// BesselJ2 returns J2(x).
func BesselJ2(x Expr) Expr { return apply("J2", x) }

// DawsonF returns Dawson's integral of x.
func DawsonF(x Expr) Expr { return apply("DawsonF", x) }

// Erf returns the error function of x.
func Erf(x Expr) Expr { return apply("Erf", x) }

// Erfc returns the complementary error function of x.
func Erfc(x Expr) Expr { return apply("Erfc", x) }

// StruveH0 returns the Struve function H0(x).
func StruveH0(x Expr) Expr { return apply("StruveH0", x) }

// StruveH1 returns the Struve function H1(x).
func StruveH1(x Expr) Expr { return apply("StruveH1", x) }

// Hyp0F1Reg returns the regularized confluent hypergeometric limit
// function 0F1(;a;z)/Gamma(a).
func Hyp0F1Reg(a, z Expr) Expr { return apply("Hyp0F1Reg", a, z) }

// Name returns the function name.
func (f *Func) Name() string { return f.name }

// Args returns the arguments.
func (f *Func) Args() []Expr { return append([]Expr(nil), f.args...) }

func (f *Func) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Func) Eval(env map[string]float64) (float64, error) {
	spec, ok := funcs[f.name]
	if !ok {
		return 0, errors.Wrapf(errors.ErrNotNumeric, "no numeric rule for %s", f.name)
	}
	vals := make([]float64, len(f.args))
	for i, a := range f.args {
		v, err := a.Eval(env)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	return spec.eval(vals), nil
}

func (f *Func) Subs(m map[string]Expr) Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Subs(m)
	}
	return apply(f.name, args...)
}

func (f *Func) prec() int { return precAtom }

func (f *Func) walk(fn func(Expr)) {
	fn(f)
	for _, a := range f.args {
		a.walk(fn)
	}
}
