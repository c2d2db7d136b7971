package world

import (
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/symbols"
)

// Structure names a graph so it can be reused as a building block. Its
// scattering terms are placeholder symbols; the World resolves them by
// descending into the wrapped graph when the query depth allows.
//
// References passed to a Structure must be anchored at it: "S:child.ref"
// for a structure named S. The symbols are keyed by the part below S:
//
//	F_S, A_S:child.ref, Psi_S:child.r1,child.r2, beta_S
type Structure struct {
	name  string
	wraps int
	reg   *symbols.Registry
}

var _ subunit.Scatterer = (*Structure)(nil)

func newStructure(name string, gid int, reg *symbols.Registry) *Structure {
	return &Structure{name: name, wraps: gid, reg: reg}
}

// Name returns the structure name.
func (s *Structure) Name() string { return s.name }

// GraphID returns the id of the wrapped graph.
func (s *Structure) GraphID() int { return s.wraps }

// anchored strips "name:" from ref.
func (s *Structure) anchored(ref string) (string, error) {
	inner := strings.TrimPrefix(ref, s.name+refpath.Colon)
	if inner == ref || inner == "" {
		return "", errors.Wrapf(errors.ErrInvalidReference, "%q is not anchored at structure %q", ref, s.name)
	}
	return inner, nil
}

func (s *Structure) beta(acc *subunit.Params) *expr.Sym {
	b := s.reg.MustTagged("beta", s.name)
	acc.AddBeta(b)
	return b
}

// guinier returns 1 - q^2 m / d.
func (s *Structure) guinier(m expr.Expr, d int64) expr.Expr {
	return expr.Sub(expr.Int(1), expr.Div(expr.Prod(expr.Sqr(s.reg.Q()), m), expr.Int(d)))
}

// FormFactor implements subunit.Scatterer.
func (s *Structure) FormFactor(f subunit.Form, acc *subunit.Params) (expr.Expr, error) {
	switch f {
	case subunit.One:
		return expr.Int(1), nil
	case subunit.Beta:
		return expr.Sqr(s.beta(acc)), nil
	case subunit.Guinier:
		rg2 := s.reg.MustTagged("Rg2", s.name)
		acc.Add(rg2)
		return expr.Prod(expr.Sqr(s.beta(acc)), s.guinier(rg2, 3)), nil
	case subunit.Generic, subunit.XVar, subunit.QVar:
		sym := s.reg.MustTagged("F", s.name)
		acc.Add(sym)
		return expr.Prod(expr.Sqr(s.beta(acc)), sym), nil
	}
	return nil, errors.Wrapf(errors.ErrBadForm, "%v", f)
}

// FormFactorAmplitude implements subunit.Scatterer.
func (s *Structure) FormFactorAmplitude(ref string, f subunit.Form, acc *subunit.Params) (expr.Expr, error) {
	inner, err := s.anchored(ref)
	if err != nil {
		return nil, err
	}
	switch f {
	case subunit.One:
		return expr.Int(1), nil
	case subunit.Beta:
		return s.beta(acc), nil
	case subunit.Guinier:
		m, err := s.reg.Ref("sigmaRrs2", s.name, inner)
		if err != nil {
			return nil, err
		}
		acc.Add(m)
		return expr.Prod(s.beta(acc), s.guinier(m, 6)), nil
	case subunit.Generic, subunit.XVar, subunit.QVar:
		a, err := s.reg.Ref("A", s.name, inner)
		if err != nil {
			return nil, err
		}
		acc.Add(a)
		return expr.Prod(s.beta(acc), a), nil
	}
	return nil, errors.Wrapf(errors.ErrBadForm, "%v", f)
}

// PhaseFactor implements subunit.Scatterer.
func (s *Structure) PhaseFactor(r1, r2 string, f subunit.Form, acc *subunit.Params) (expr.Expr, error) {
	in1, err := s.anchored(r1)
	if err != nil {
		return nil, err
	}
	in2, err := s.anchored(r2)
	if err != nil {
		return nil, err
	}
	if !f.Valid() {
		return nil, errors.Wrapf(errors.ErrBadForm, "%v", f)
	}
	if in1 == in2 || f == subunit.One || f == subunit.Beta {
		return expr.Int(1), nil
	}
	if f == subunit.Guinier {
		m, err := s.reg.Pair("sigmaRrr2", s.name, in1, in2)
		if err != nil {
			return nil, err
		}
		acc.Add(m)
		return s.guinier(m, 6), nil
	}
	psi, err := s.reg.Pair("Psi", s.name, in1, in2)
	if err != nil {
		return nil, err
	}
	acc.Add(psi)
	return psi, nil
}
