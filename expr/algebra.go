package expr

// maxExpandPower bounds the integer powers of sums that Expand multiplies out.
const maxExpandPower = 64

// Expand distributes products over sums and multiplies out positive integer
// powers of sums. Function arguments are expanded in place; negative powers
// of sums are left as they are.
func Expand(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		ts := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			ts[i] = Expand(t)
		}
		return Sum(ts...)
	case *Mul:
		return expandProduct(v.factors)
	case *Pow:
		base := Expand(v.base)
		if n, ok := v.exp.(*Num); ok && n.IsInt() && n.Sign() > 0 && n.val.Num().IsInt64() {
			if k := n.val.Num().Int64(); k <= maxExpandPower {
				if _, isSum := base.(*Add); isSum {
					fs := make([]Expr, k)
					for i := range fs {
						fs[i] = base
					}
					return expandProduct(fs)
				}
			}
		}
		return Power(base, v.exp)
	case *Func:
		args := make([]Expr, len(v.args))
		for i, a := range v.args {
			args[i] = Expand(a)
		}
		return apply(v.name, args...)
	}
	return e
}

func expandProduct(factors []Expr) Expr {
	acc := []Expr{one}
	for _, f := range factors {
		f = Expand(f)
		parts := []Expr{f}
		if a, ok := f.(*Add); ok {
			parts = a.terms
		}
		next := make([]Expr, 0, len(acc)*len(parts))
		for _, x := range acc {
			for _, y := range parts {
				next = append(next, Prod(x, y))
			}
		}
		acc = next
	}
	return Sum(acc...)
}

// Coeff returns the coefficient of sym^n in the expanded form of e. Only
// explicit integer powers of sym count; occurrences inside function
// arguments are treated as part of the coefficient.
func Coeff(e Expr, sym *Sym, n int) Expr {
	e = Expand(e)
	terms := []Expr{e}
	if a, ok := e.(*Add); ok {
		terms = a.terms
	}
	var picked []Expr
	for _, t := range terms {
		if d, rest := degreeIn(t, sym.name); d == n {
			picked = append(picked, rest)
		}
	}
	return Sum(picked...)
}

// degreeIn splits an expanded term into its explicit power of the named
// symbol and the remaining factor.
func degreeIn(t Expr, name string) (int, Expr) {
	if d, ok := symPower(t, name); ok {
		return d, one
	}
	m, ok := t.(*Mul)
	if !ok {
		return 0, t
	}
	for i, f := range m.factors {
		if d, ok := symPower(f, name); ok {
			rest := make([]Expr, 0, len(m.factors)-1)
			rest = append(rest, m.factors[:i]...)
			rest = append(rest, m.factors[i+1:]...)
			return d, Prod(rest...)
		}
	}
	return 0, t
}

func symPower(f Expr, name string) (int, bool) {
	switch v := f.(type) {
	case *Sym:
		if v.name == name {
			return 1, true
		}
	case *Pow:
		s, ok := v.base.(*Sym)
		if !ok || s.name != name {
			return 0, false
		}
		if n, ok := v.exp.(*Num); ok && n.IsInt() && n.val.Num().IsInt64() {
			return int(n.val.Num().Int64()), true
		}
	}
	return 0, false
}
