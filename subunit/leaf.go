// Package subunit implements the leaves of a structure graph: sub-units
// with named reference points and closed-form scattering terms.
//
// A sub-unit exposes three families of terms, each available in every Form:
//
//	F    form factor, scattering from all pairs of scatterers
//	A    form factor amplitude, scatterers relative to one reference point
//	Psi  phase factor, between two reference points
//
// together with second moments (mean square distances) used by the
// Guinier form. Specific reference points are single locations; distributed
// ones (a polymer contour, a sphere surface) stand for a random location and
// may be sampled under a label with base#label.
package subunit

import (
	"sort"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/symbols"
)

// Scatterer is the capability shared by leaves and structures.
type Scatterer interface {
	FormFactor(f Form, acc *Params) (expr.Expr, error)
	FormFactorAmplitude(ref string, f Form, acc *Params) (expr.Expr, error)
	PhaseFactor(r1, r2 string, f Form, acc *Params) (expr.Expr, error)
}

// Leaf is a sub-unit that can be owned by a world.
type Leaf interface {
	Scatterer

	Kind() string
	Name() string
	Tag() string
	// Init binds the leaf to its world name and tag. A leaf is bound once.
	Init(name, tag string, reg *symbols.Registry) error

	HasSpecific(ref string) bool
	HasDistributed(ref string) bool
	HasReference(ref string) bool
	// References returns the sorted specific reference names.
	References() []string
	// Distributed returns the sorted distributed reference names.
	Distributed() []string
	AddSpecific(ref string) error
	AddDistributed(ref string) error
	// Materialize registers base#label as a specific reference.
	Materialize(base, label string) error

	RadiusOfGyration2() (expr.Expr, error)
	MeanSquareDistance(ref string) (expr.Expr, error)
	MeanSquareDistancePair(r1, r2 string) (expr.Expr, error)
}

type variant int

const (
	closedForm variant = iota
	weightless
	symbolic
)

type pairKey struct{ a, b string }

func pair(r1, r2 string) pairKey {
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return pairKey{r1, r2}
}

// Unit is the concrete Leaf for every built-in sub-unit kind. Its terms are
// tables filled in by the kind's definition when the unit is bound.
type Unit struct {
	kind    string
	variant variant
	define  func(u *Unit)

	name  string
	tag   string
	reg   *symbols.Registry
	bound bool

	specific    map[string]bool
	distributed map[string]bool

	// expand maps dimensionless variable names to their q expressions.
	expand  map[string]expr.Expr
	params  []*expr.Sym
	xparams []*expr.Sym

	ff      expr.Expr
	amp     map[string]expr.Expr
	psi     map[pairKey]expr.Expr
	rg2     expr.Expr
	msdScat map[string]expr.Expr
	msdRef  map[pairKey]expr.Expr
}

func newUnit(kind string, v variant, define func(u *Unit)) *Unit {
	return &Unit{
		kind:        kind,
		variant:     v,
		define:      define,
		specific:    map[string]bool{},
		distributed: map[string]bool{},
		expand:      map[string]expr.Expr{},
		amp:         map[string]expr.Expr{},
		psi:         map[pairKey]expr.Expr{},
		msdScat:     map[string]expr.Expr{},
		msdRef:      map[pairKey]expr.Expr{},
	}
}

// Kind returns the sub-unit type name.
func (u *Unit) Kind() string { return u.kind }

// Name returns the world name, empty until bound.
func (u *Unit) Name() string { return u.name }

// Tag returns the symbol tag, empty until bound.
func (u *Unit) Tag() string { return u.tag }

// Bound reports whether Init has run.
func (u *Unit) Bound() bool { return u.bound }

// Init implements Leaf. An empty tag defaults to name.
func (u *Unit) Init(name, tag string, reg *symbols.Registry) error {
	if u.bound {
		return errors.Wrapf(errors.ErrBadLeaf, "%s already bound as %q", u.kind, u.name)
	}
	if tag == "" {
		tag = name
	}
	if !refpath.ValidName(name) {
		return errors.Wrapf(errors.ErrBadName, "name %q", name)
	}
	if !refpath.ValidName(tag) {
		return errors.Wrapf(errors.ErrBadName, "tag %q", tag)
	}
	if reg == nil {
		reg = symbols.Default
	}
	u.name, u.tag, u.reg = name, tag, reg
	if u.define != nil {
		u.define(u)
	}
	u.bound = true
	return nil
}

func (u *Unit) local(s string) *expr.Sym { return u.reg.MustTagged(s, u.tag) }

func (u *Unit) q() *expr.Sym { return u.reg.Q() }

func (u *Unit) HasSpecific(ref string) bool    { return u.specific[ref] }
func (u *Unit) HasDistributed(ref string) bool { return u.distributed[ref] }
func (u *Unit) HasReference(ref string) bool   { return u.specific[ref] || u.distributed[ref] }

func (u *Unit) References() []string  { return sortedSet(u.specific) }
func (u *Unit) Distributed() []string { return sortedSet(u.distributed) }

// AddSpecific implements Leaf. A name containing '#' must sample an existing
// distributed reference.
func (u *Unit) AddSpecific(ref string) error {
	if !refpath.ValidName(refpath.StripHash(ref)) {
		return errors.Wrapf(errors.ErrBadName, "reference %q", ref)
	}
	if u.HasReference(ref) {
		return errors.Wrapf(errors.ErrDuplicateReference, "%q on %s", ref, u.kind)
	}
	if refpath.HasHash(ref) {
		base := refpath.StripHash(ref)
		label := ref[len(base)+1:]
		if !refpath.ValidName(label) {
			return errors.Wrapf(errors.ErrBadName, "reference %q", ref)
		}
		if !u.distributed[base] {
			return errors.Wrapf(errors.ErrUnknownReference, "%q is not a distributed reference of %s", base, u.kind)
		}
	}
	u.specific[ref] = true
	return nil
}

// AddDistributed implements Leaf.
func (u *Unit) AddDistributed(ref string) error {
	if !refpath.ValidName(ref) {
		return errors.Wrapf(errors.ErrBadName, "reference %q", ref)
	}
	if u.HasReference(ref) {
		return errors.Wrapf(errors.ErrDuplicateReference, "%q on %s", ref, u.kind)
	}
	u.distributed[ref] = true
	return nil
}

// Materialize implements Leaf. It is idempotent.
func (u *Unit) Materialize(base, label string) error {
	ref := base + refpath.Hash + label
	if u.specific[ref] {
		return nil
	}
	return u.AddSpecific(ref)
}

func (u *Unit) check(ref string) error {
	if !u.HasReference(ref) {
		return errors.Wrapf(errors.ErrInvalidReference, "%q is not a reference of %s %q", ref, u.kind, u.name)
	}
	return nil
}

func (u *Unit) beta(acc *Params) *expr.Sym {
	b := u.local("beta")
	acc.AddBeta(b)
	return b
}

// guinier returns 1 - q^2 s / d.
func (u *Unit) guinier(s expr.Expr, d int64) expr.Expr {
	return expr.Sub(expr.Int(1), expr.Div(expr.Prod(expr.Sqr(u.q()), s), expr.Int(d)))
}

func (u *Unit) subs(e expr.Expr) expr.Expr { return e.Subs(u.expand) }

// FormFactor implements Scatterer.
func (u *Unit) FormFactor(f Form, acc *Params) (expr.Expr, error) {
	if !f.Valid() {
		return nil, errors.Wrapf(errors.ErrBadForm, "%v", f)
	}
	switch u.variant {
	case weightless:
		return expr.Int(0), nil
	case symbolic:
		switch f {
		case One:
			return expr.Int(1), nil
		case Beta:
			return expr.Sqr(u.beta(acc)), nil
		case Guinier:
			rg2 := u.local("Rg2")
			acc.Add(rg2)
			return expr.Prod(expr.Sqr(u.beta(acc)), u.guinier(rg2, 3)), nil
		default:
			sym := u.local("F")
			acc.Add(sym)
			return expr.Prod(expr.Sqr(u.beta(acc)), sym), nil
		}
	}

	switch f {
	case Generic:
		sym := u.local("F")
		acc.Add(sym)
		return expr.Prod(expr.Sqr(u.beta(acc)), sym), nil
	case XVar:
		acc.Add(u.xparams...)
		return expr.Prod(expr.Sqr(u.beta(acc)), u.ff), nil
	case QVar:
		acc.Add(u.params...)
		return expr.Prod(expr.Sqr(u.beta(acc)), u.subs(u.ff)), nil
	case Beta:
		return expr.Sqr(u.beta(acc)), nil
	case Guinier:
		acc.Add(u.params...)
		return expr.Prod(expr.Sqr(u.beta(acc)), u.guinier(u.subs(u.rg2), 3)), nil
	default:
		return expr.Int(1), nil
	}
}

// FormFactorAmplitude implements Scatterer. Sampled references share the
// amplitude of their distributed base.
func (u *Unit) FormFactorAmplitude(ref string, f Form, acc *Params) (expr.Expr, error) {
	if !f.Valid() {
		return nil, errors.Wrapf(errors.ErrBadForm, "%v", f)
	}
	if err := u.check(ref); err != nil {
		return nil, err
	}
	if u.variant == weightless {
		return expr.Int(0), nil
	}
	ref = refpath.StripHash(ref)

	if u.variant == symbolic {
		switch f {
		case One:
			return expr.Int(1), nil
		case Beta:
			return u.beta(acc), nil
		case Guinier:
			s := u.reg.MustRef("sigmaRrs2", u.tag, ref)
			acc.Add(s)
			return expr.Prod(u.beta(acc), u.guinier(s, 6)), nil
		default:
			sym := u.reg.MustRef("A", u.tag, ref)
			acc.Add(sym)
			return expr.Prod(u.beta(acc), sym), nil
		}
	}

	switch f {
	case Generic:
		sym := u.reg.MustRef("A", u.tag, ref)
		acc.Add(sym)
		return expr.Prod(u.beta(acc), sym), nil
	case XVar, QVar:
		a, ok := u.amp[ref]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidReference, "no amplitude for %q on %s", ref, u.kind)
		}
		if f == XVar {
			acc.Add(u.xparams...)
			return expr.Prod(u.beta(acc), a), nil
		}
		acc.Add(u.params...)
		return expr.Prod(u.beta(acc), u.subs(a)), nil
	case Beta:
		return u.beta(acc), nil
	case Guinier:
		s, ok := u.msdScat[ref]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidReference, "no second moment for %q on %s", ref, u.kind)
		}
		acc.Add(u.params...)
		return expr.Prod(u.beta(acc), u.guinier(u.subs(s), 6)), nil
	default:
		return expr.Int(1), nil
	}
}

// PhaseFactor implements Scatterer. The phase factor between a specific
// reference and itself is 1.
func (u *Unit) PhaseFactor(r1, r2 string, f Form, acc *Params) (expr.Expr, error) {
	if !f.Valid() {
		return nil, errors.Wrapf(errors.ErrBadForm, "%v", f)
	}
	if err := u.check(r1); err != nil {
		return nil, err
	}
	if err := u.check(r2); err != nil {
		return nil, err
	}
	if r1 == r2 && u.specific[r1] {
		return expr.Int(1), nil
	}
	if u.variant == weightless {
		return expr.Int(1), nil
	}
	k := pair(refpath.StripHash(r1), refpath.StripHash(r2))

	if u.variant == symbolic {
		switch f {
		case One, Beta:
			return expr.Int(1), nil
		case Guinier:
			s := u.reg.MustPair("sigmaRrr2", u.tag, k.a, k.b)
			acc.Add(s)
			return u.guinier(s, 6), nil
		default:
			sym := u.reg.MustPair("Psi", u.tag, k.a, k.b)
			acc.Add(sym)
			return sym, nil
		}
	}

	switch f {
	case Generic:
		sym := u.reg.MustPair("Psi", u.tag, k.a, k.b)
		acc.Add(sym)
		return sym, nil
	case XVar, QVar:
		p, ok := u.psi[k]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidReference, "no phase factor for %q,%q on %s", k.a, k.b, u.kind)
		}
		if f == XVar {
			acc.Add(u.xparams...)
			return p, nil
		}
		acc.Add(u.params...)
		return u.subs(p), nil
	case Guinier:
		s, ok := u.msdRef[k]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidReference, "no second moment for %q,%q on %s", k.a, k.b, u.kind)
		}
		acc.Add(u.params...)
		return u.guinier(u.subs(s), 6), nil
	default:
		return expr.Int(1), nil
	}
}

// RadiusOfGyration2 returns the squared radius of gyration in size parameters.
func (u *Unit) RadiusOfGyration2() (expr.Expr, error) {
	switch u.variant {
	case weightless:
		return expr.Int(0), nil
	case symbolic:
		return u.local("Rg2"), nil
	}
	return u.subs(u.rg2), nil
}

// MeanSquareDistance returns the mean square distance between ref and the
// scatterers of the unit.
func (u *Unit) MeanSquareDistance(ref string) (expr.Expr, error) {
	if err := u.check(ref); err != nil {
		return nil, err
	}
	ref = refpath.StripHash(ref)
	switch u.variant {
	case weightless:
		return expr.Int(0), nil
	case symbolic:
		return u.reg.MustRef("sigmaRrs2", u.tag, ref), nil
	}
	s, ok := u.msdScat[ref]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidReference, "no second moment for %q on %s", ref, u.kind)
	}
	return u.subs(s), nil
}

// MeanSquareDistancePair returns the mean square distance between two
// references. A specific reference is at distance 0 from itself.
func (u *Unit) MeanSquareDistancePair(r1, r2 string) (expr.Expr, error) {
	if err := u.check(r1); err != nil {
		return nil, err
	}
	if err := u.check(r2); err != nil {
		return nil, err
	}
	if (r1 == r2 && u.specific[r1]) || u.variant == weightless {
		return expr.Int(0), nil
	}
	k := pair(refpath.StripHash(r1), refpath.StripHash(r2))
	if u.variant == symbolic {
		return u.reg.MustPair("sigmaRrr2", u.tag, k.a, k.b), nil
	}
	s, ok := u.msdRef[k]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidReference, "no second moment for %q,%q on %s", k.a, k.b, u.kind)
	}
	return u.subs(s), nil
}

func sortedSet(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
