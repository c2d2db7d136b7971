package expr

import (
	"math"
	"math/big"
	"sort"
	"strings"
)

// Add is a canonical sum: no nested sums, like terms collected, terms sorted,
// the numeric term last.
type Add struct{ terms []Expr }

// Mul is a canonical product: an optional leading rational coefficient
// followed by powers of distinct bases in sorted order.
type Mul struct{ factors []Expr }

// Pow is base^exp.
type Pow struct {
	base Expr
	exp  Expr
}

// Terms returns the summands.
func (a *Add) Terms() []Expr { return append([]Expr(nil), a.terms...) }

// Factors returns the factors, coefficient first when present.
func (m *Mul) Factors() []Expr { return append([]Expr(nil), m.factors...) }

// Base returns the base of the power.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent of the power.
func (p *Pow) Exp() Expr { return p.exp }

// Sum returns the canonical sum of terms.
func Sum(terms ...Expr) Expr {
	constant := new(big.Rat)
	coefs := map[string]*big.Rat{}
	rests := map[string]Expr{}
	var keys []string

	var push func(t Expr)
	push = func(t Expr) {
		switch v := t.(type) {
		case *Add:
			for _, s := range v.terms {
				push(s)
			}
			return
		case *Num:
			constant.Add(constant, v.val)
			return
		}
		c, rest := splitCoef(t)
		k := rest.String()
		if _, ok := coefs[k]; !ok {
			coefs[k] = new(big.Rat)
			rests[k] = rest
			keys = append(keys, k)
		}
		coefs[k].Add(coefs[k], c)
	}
	for _, t := range terms {
		push(t)
	}

	sort.Strings(keys)
	out := make([]Expr, 0, len(keys)+1)
	for _, k := range keys {
		c := coefs[k]
		if c.Sign() == 0 {
			continue
		}
		out = append(out, withCoef(c, rests[k]))
	}
	if constant.Sign() != 0 {
		out = append(out, newNum(constant))
	}
	switch len(out) {
	case 0:
		return zero
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

// splitCoef separates the rational coefficient of a non-numeric term.
func splitCoef(t Expr) (*big.Rat, Expr) {
	m, ok := t.(*Mul)
	if !ok {
		return big.NewRat(1, 1), t
	}
	n, ok := m.factors[0].(*Num)
	if !ok {
		return big.NewRat(1, 1), t
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return n.val, rest[0]
	}
	return n.val, &Mul{factors: rest}
}

func withCoef(c *big.Rat, rest Expr) Expr {
	if c.Cmp(one.val) == 0 {
		return rest
	}
	if m, ok := rest.(*Mul); ok {
		return &Mul{factors: append([]Expr{newNum(c)}, m.factors...)}
	}
	return &Mul{factors: []Expr{newNum(c), rest}}
}

// Prod returns the canonical product of factors.
func Prod(factors ...Expr) Expr {
	coef := big.NewRat(1, 1)
	type group struct {
		base Expr
		exps []Expr
	}
	groups := map[string]*group{}
	var keys []string
	add := func(base, exp Expr) {
		k := base.String()
		g, ok := groups[k]
		if !ok {
			g = &group{base: base}
			groups[k] = g
			keys = append(keys, k)
		}
		g.exps = append(g.exps, exp)
	}

	var push func(f Expr)
	push = func(f Expr) {
		switch v := f.(type) {
		case *Num:
			coef.Mul(coef, v.val)
		case *Mul:
			for _, g := range v.factors {
				push(g)
			}
		case *Pow:
			add(v.base, v.exp)
		default:
			add(f, one)
		}
	}
	for _, f := range factors {
		push(f)
	}
	if coef.Sign() == 0 {
		return zero
	}

	sort.Strings(keys)
	out := make([]Expr, 0, len(keys)+1)
	renorm := false
	for _, k := range keys {
		g := groups[k]
		p := Power(g.base, Sum(g.exps...))
		switch pv := p.(type) {
		case *Num:
			coef.Mul(coef, pv.val)
		case *Mul:
			renorm = true
			out = append(out, pv)
		default:
			out = append(out, p)
		}
	}
	if coef.Sign() == 0 {
		return zero
	}
	if renorm {
		return Prod(append([]Expr{newNum(coef)}, out...)...)
	}

	if coef.Cmp(one.val) == 0 {
		switch len(out) {
		case 0:
			return one
		case 1:
			return out[0]
		}
		return &Mul{factors: out}
	}
	if len(out) == 0 {
		return newNum(coef)
	}
	return &Mul{factors: append([]Expr{newNum(coef)}, out...)}
}

// Power returns base^exp, evaluating exact rational powers and distributing
// integer exponents over products.
func Power(base, exp Expr) Expr {
	if e, ok := exp.(*Num); ok {
		if e.IsZero() {
			return one
		}
		if e.IsOne() {
			return base
		}
	}
	e, eNum := exp.(*Num)
	eInt := eNum && e.IsInt()

	switch b := base.(type) {
	case *Num:
		if b.IsOne() {
			return one
		}
		if b.IsZero() && eNum && e.Sign() > 0 {
			return zero
		}
		if eInt && !(b.IsZero() && e.Sign() < 0) && e.val.Num().IsInt64() {
			if r, ok := ratPow(b.val, e.val.Num().Int64()); ok {
				return newNum(r)
			}
		}
	case *Pow:
		if eInt {
			return Power(b.base, Prod(b.exp, exp))
		}
	case *Mul:
		if eInt {
			parts := make([]Expr, len(b.factors))
			for i, f := range b.factors {
				parts[i] = Power(f, exp)
			}
			return Prod(parts...)
		}
	}
	return &Pow{base: base, exp: exp}
}

const maxRatPow = 1 << 10

func ratPow(r *big.Rat, n int64) (*big.Rat, bool) {
	if n > maxRatPow || n < -maxRatPow {
		return nil, false
	}
	neg := n < 0
	if neg {
		n = -n
	}
	k := big.NewInt(n)
	num := new(big.Int).Exp(r.Num(), k, nil)
	den := new(big.Int).Exp(r.Denom(), k, nil)
	if neg {
		num, den = den, num
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return new(big.Rat).SetFrac(num, den), true
}

// Neg returns -e.
func Neg(e Expr) Expr { return Prod(Int(-1), e) }

// Sub returns a - b.
func Sub(a, b Expr) Expr { return Sum(a, Neg(b)) }

// Div returns a / b.
func Div(a, b Expr) Expr { return Prod(a, Power(b, Int(-1))) }

// Sqr returns e^2.
func Sqr(e Expr) Expr { return Power(e, Int(2)) }

// Sqrt returns e^(1/2).
func Sqrt(e Expr) Expr { return Power(e, Rat(1, 2)) }

func (a *Add) String() string {
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.String()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (a *Add) Eval(env map[string]float64) (float64, error) {
	var s float64
	for _, t := range a.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		s += v
	}
	return s, nil
}

func (a *Add) Subs(m map[string]Expr) Expr {
	ts := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		ts[i] = t.Subs(m)
	}
	return Sum(ts...)
}

func (a *Add) prec() int { return precAdd }

func (a *Add) walk(fn func(Expr)) {
	fn(a)
	for _, t := range a.terms {
		t.walk(fn)
	}
}

func (m *Mul) String() string {
	coef := one.val
	fs := m.factors
	if n, ok := fs[0].(*Num); ok {
		coef = n.val
		fs = fs[1:]
	}
	var num, den []string
	if p := new(big.Int).Abs(coef.Num()); p.Cmp(big.NewInt(1)) != 0 {
		num = append(num, p.String())
	}
	if !coef.IsInt() {
		den = append(den, coef.Denom().String())
	}
	for _, f := range fs {
		if p, ok := f.(*Pow); ok {
			if e, ok := p.exp.(*Num); ok && e.Sign() < 0 {
				den = append(den, wrap(Power(p.base, newNum(new(big.Rat).Neg(e.val))), precPow))
				continue
			}
		}
		num = append(num, wrap(f, precMul))
	}
	s := strings.Join(num, "*")
	if s == "" {
		s = "1"
	}
	switch {
	case len(den) == 1:
		s += "/" + den[0]
	case len(den) > 1:
		s += "/(" + strings.Join(den, "*") + ")"
	}
	if coef.Sign() < 0 {
		s = "-" + s
	}
	return s
}

func (m *Mul) Eval(env map[string]float64) (float64, error) {
	p := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		p *= v
	}
	return p, nil
}

func (m *Mul) Subs(s map[string]Expr) Expr {
	fs := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		fs[i] = f.Subs(s)
	}
	return Prod(fs...)
}

func (m *Mul) prec() int { return precMul }

func (m *Mul) walk(fn func(Expr)) {
	fn(m)
	for _, f := range m.factors {
		f.walk(fn)
	}
}

func (p *Pow) String() string {
	if e, ok := p.exp.(*Num); ok {
		if e.val.Cmp(big.NewRat(1, 2)) == 0 {
			return "sqrt(" + p.base.String() + ")"
		}
		if e.Sign() < 0 {
			return "1/" + wrap(Power(p.base, newNum(new(big.Rat).Neg(e.val))), precPow)
		}
		if e.IsInt() {
			return wrap(p.base, precAtom) + "^" + e.String()
		}
	}
	return wrap(p.base, precAtom) + "^(" + p.exp.String() + ")"
}

func (p *Pow) Eval(env map[string]float64) (float64, error) {
	b, err := p.base.Eval(env)
	if err != nil {
		return 0, err
	}
	e, err := p.exp.Eval(env)
	if err != nil {
		return 0, err
	}
	return math.Pow(b, e), nil
}

func (p *Pow) Subs(m map[string]Expr) Expr {
	return Power(p.base.Subs(m), p.exp.Subs(m))
}

func (p *Pow) prec() int {
	if e, ok := p.exp.(*Num); ok && e.Sign() < 0 {
		return precMul
	}
	return precPow
}

func (p *Pow) walk(fn func(Expr)) {
	fn(p)
	p.base.walk(fn)
	p.exp.walk(fn)
}
