// Package expr is the symbolic kernel behind SEB's scattering expressions.
//
// Expressions are immutable trees built through canonicalising constructors
// (Sum, Prod, Power, the named functions), so two expressions that are equal
// up to term order and like-term collection share one String form. Numbers
// are exact rationals. Numeric evaluation goes through Eval with a symbol
// environment; special functions are held as lazy terms until then.
//
//	q, rg := expr.NewSymbol("q"), expr.NewSymbol("Rg")
//	x := expr.Prod(expr.Sqr(q), expr.Sqr(rg))
//	f := expr.Div(expr.Sub(expr.Int(1), expr.Exp(expr.Neg(x))), x)
//	v, err := f.Eval(map[string]float64{"q": 0.1, "Rg": 10})
package expr

import (
	"math"
	"math/big"
	"sort"

	"github.com/Tobionecenobi/SEB/errors"
)

// Expr is a node of an expression tree.
type Expr interface {
	// String renders the expression deterministically.
	String() string
	// Eval evaluates the expression with the given symbol values.
	Eval(env map[string]float64) (float64, error)
	// Subs replaces symbols by expressions and re-canonicalises the result.
	Subs(m map[string]Expr) Expr

	prec() int
	walk(fn func(Expr))
}

// Operator precedence used when rendering.
const (
	precAdd = iota + 1
	precMul
	precPow
	precAtom
)

// Num is an exact rational number.
type Num struct{ val *big.Rat }

var (
	zero = &Num{val: new(big.Rat)}
	one  = &Num{val: big.NewRat(1, 1)}
)

// Int returns the integer n.
func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Rat returns p/q. It panics when q is zero.
func Rat(p, q int64) *Num {
	if q == 0 {
		panic("expr: zero denominator")
	}
	return &Num{val: big.NewRat(p, q)}
}

// Float returns the exact rational value of f. Non-finite values are
// rejected with ErrNotNumeric.
func Float(f float64) (*Num, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Wrapf(errors.ErrNotNumeric, "float %v", f)
	}
	return &Num{val: new(big.Rat).SetFloat64(f)}, nil
}

func newNum(r *big.Rat) *Num { return &Num{val: r} }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) Eval(map[string]float64) (float64, error) {
	f, _ := n.val.Float64()
	return f, nil
}

func (n *Num) Subs(map[string]Expr) Expr { return n }

func (n *Num) prec() int {
	if n.val.Sign() < 0 || !n.val.IsInt() {
		return precAdd
	}
	return precAtom
}

func (n *Num) walk(fn func(Expr)) { fn(n) }

// Float64 returns the nearest float64.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

// Rat returns a copy of the rational value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

// Sign returns -1, 0 or +1.
func (n *Num) Sign() int { return n.val.Sign() }

// IsInt reports whether n is an integer.
func (n *Num) IsInt() bool { return n.val.IsInt() }

// IsZero reports whether n is 0.
func (n *Num) IsZero() bool { return n.val.Sign() == 0 }

// IsOne reports whether n is 1.
func (n *Num) IsOne() bool { return n.val.Cmp(one.val) == 0 }

// Sym is a free symbol. Symbols compare by name.
type Sym struct{ name string }

// NewSymbol returns the symbol called name. Use a symbols.Registry when
// identity across a session matters.
func NewSymbol(name string) *Sym { return &Sym{name: name} }

// Name returns the symbol's name.
func (s *Sym) Name() string { return s.name }

func (s *Sym) String() string { return s.name }

func (s *Sym) Eval(env map[string]float64) (float64, error) {
	if v, ok := env[s.name]; ok {
		return v, nil
	}
	return 0, errors.Wrapf(errors.ErrNotNumeric, "free symbol %q", s.name)
}

func (s *Sym) Subs(m map[string]Expr) Expr {
	if r, ok := m[s.name]; ok {
		return r
	}
	return s
}

func (s *Sym) prec() int          { return precAtom }
func (s *Sym) walk(fn func(Expr)) { fn(s) }

// Const is a named mathematical constant.
type Const struct {
	name  string
	value float64
}

// Pi is the circle constant.
var Pi Expr = &Const{name: "Pi", value: math.Pi}

func (c *Const) String() string                           { return c.name }
func (c *Const) Eval(map[string]float64) (float64, error) { return c.value, nil }
func (c *Const) Subs(map[string]Expr) Expr                { return c }
func (c *Const) prec() int                                { return precAtom }
func (c *Const) walk(fn func(Expr))                       { fn(c) }

// AsNumber reports whether e is a plain number and returns it.
func AsNumber(e Expr) (*Num, bool) {
	n, ok := e.(*Num)
	return n, ok
}

// Equal reports whether a and b have the same canonical form.
func Equal(a, b Expr) bool { return a.String() == b.String() }

// Symbols returns the sorted names of the free symbols in e.
func Symbols(e Expr) []string {
	seen := map[string]bool{}
	bound := map[string]bool{}
	e.walk(func(x Expr) {
		switch v := x.(type) {
		case *Sym:
			seen[v.name] = true
		case *Integral:
			bound[v.v] = true
		}
	})
	out := make([]string, 0, len(seen))
	for n := range seen {
		if !bound[n] {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func wrap(e Expr, p int) string {
	if e.prec() < p {
		return "(" + e.String() + ")"
	}
	return e.String()
}
