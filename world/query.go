// File: query.go
// Role: front-end queries: form factors, amplitudes, phase factors and
//       their normalized/unnormalized/generic/dimensionless variants,
//       derived sizes (Rg², sigma mean square distances), counting and the
//       reference point path behind a phase factor.
// Determinism:
//   - Every query starts from an empty accumulator; its Result reflects only
//     its own traversal.
// Concurrency:
//   - Queries hold the World's read lock and may run in parallel.
// Errors:
//   - Arguments are validated before any expression is built; assembly
//     errors are returned unchanged under the query's own frame.
package world

import (
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/logger"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/subunit"
)

// forced appends a form override without touching the caller's slice.
func forced(opts []QueryOption, f subunit.Form) []QueryOption {
	out := make([]QueryOption, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithForm(f))
}

// run validates options, takes the read lock and hands a fresh query to fn.
func (w *World) run(op string, opts []QueryOption, fn func(q *query, depth int) (expr.Expr, error)) (Result, error) {
	o, err := buildQueryOptions(opts)
	if err != nil {
		return Result{}, err
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	q := w.newQuery(o)
	w.log.Debugw("query", "op", op, logger.FieldDepth, o.depth, logger.FieldForm, o.form.String())
	e, err := fn(q, o.depth)
	if err != nil {
		return Result{}, err
	}
	return Result{Expr: e, Params: q.acc}, nil
}

// checkName accepts a bare, catalogued structure or sub-unit name.
func (w *World) checkName(name string) error {
	if refpath.HasColon(name) || refpath.HasPeriod(name) {
		return errors.Wrapf(errors.ErrBadPathSyntax, "expected a structure or sub-unit name, got %q", name)
	}
	if !refpath.ValidName(name) {
		return errors.Wrapf(errors.ErrBadName, "name %q", name)
	}
	if !w.cat.Has(name) {
		return errors.Wrapf(errors.ErrUnknownName, "name %q", name)
	}
	return nil
}

// checkRef accepts a path ending in a reference point whose every segment
// resolves.
func (w *World) checkRef(ref string) (refpath.Address, error) {
	a, err := refpath.Parse(ref)
	if err != nil {
		return a, err
	}
	if !a.HasReference() {
		return a, errors.Wrapf(errors.ErrBadPathSyntax, "%q does not name a reference point", ref)
	}
	if !w.cat.Has(a.Top()) {
		return a, errors.Wrapf(errors.ErrUnknownName, "name %q", a.Top())
	}
	return a, w.checkPath(ref, false)
}

// checkPair accepts two reference points below the same top segment.
func (w *World) checkPair(r1, r2 string) error {
	a1, err := w.checkRef(r1)
	if err != nil {
		return err
	}
	a2, err := w.checkRef(r2)
	if err != nil {
		return err
	}
	if a1.Top() != a2.Top() {
		return errors.Wrapf(errors.ErrBadPathSyntax, "%q and %q do not start in the same structure or sub-unit", r1, r2)
	}
	return nil
}

func (w *World) formFactor(name string, normalize bool, opts []QueryOption) (Result, error) {
	return w.run("FormFactor", opts, func(q *query, depth int) (expr.Expr, error) {
		if err := w.checkName(name); err != nil {
			return nil, err
		}
		f, err := q.allToAll(name, depth)
		if err != nil || !normalize {
			return f, err
		}
		norm, err := q.withForm(subunit.Beta).allToAll(name, depth)
		if err != nil {
			return nil, err
		}
		return expr.Div(f, norm), nil
	})
}

// FormFactor returns the form factor of the structure or sub-unit name,
// normalized by the squared total scattering length.
//
// Errors:
//   - ErrBadPathSyntax, ErrBadName: name is not a bare name.
//   - ErrUnknownName: name is not catalogued.
//   - ErrBadDepth, ErrBadForm: from the options.
func (w *World) FormFactor(name string, opts ...QueryOption) (Result, error) {
	res, err := w.formFactor(name, true, opts)
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.FormFactor(%q)", name)
	}
	return res, nil
}

// FormFactorUnnormalized is FormFactor weighted by scattering lengths but
// not divided by their squared sum.
func (w *World) FormFactorUnnormalized(name string, opts ...QueryOption) (Result, error) {
	res, err := w.formFactor(name, false, opts)
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.FormFactorUnnormalized(%q)", name)
	}
	return res, nil
}

// FormFactorX is FormFactor in dimensionless variables.
func (w *World) FormFactorX(name string, opts ...QueryOption) (Result, error) {
	return w.FormFactor(name, forced(opts, subunit.XVar)...)
}

// FormFactorGeneric is FormFactor in opaque per-leaf symbols.
func (w *World) FormFactorGeneric(name string, opts ...QueryOption) (Result, error) {
	return w.FormFactor(name, forced(opts, subunit.Generic)...)
}

// FormFactorXUnnormalized is FormFactorUnnormalized in dimensionless variables.
func (w *World) FormFactorXUnnormalized(name string, opts ...QueryOption) (Result, error) {
	return w.FormFactorUnnormalized(name, forced(opts, subunit.XVar)...)
}

// FormFactorGenericUnnormalized is FormFactorUnnormalized in opaque symbols.
func (w *World) FormFactorGenericUnnormalized(name string, opts ...QueryOption) (Result, error) {
	return w.FormFactorUnnormalized(name, forced(opts, subunit.Generic)...)
}

// FormFactorNormalization returns the squared total scattering length of
// name, the denominator of FormFactor.
func (w *World) FormFactorNormalization(name string, opts ...QueryOption) (Result, error) {
	return w.FormFactorUnnormalized(name, forced(opts, subunit.Beta)...)
}

func (w *World) amplitude(ref string, normalize bool, opts []QueryOption) (Result, error) {
	return w.run("FormFactorAmplitude", opts, func(q *query, depth int) (expr.Expr, error) {
		if _, err := w.checkRef(ref); err != nil {
			return nil, err
		}
		a, err := q.refToAll(ref, depth)
		if err != nil || !normalize {
			return a, err
		}
		norm, err := q.withForm(subunit.Beta).refToAll(ref, depth)
		if err != nil {
			return nil, err
		}
		return expr.Div(a, norm), nil
	})
}

// FormFactorAmplitude returns the amplitude of the node at the top of ref
// relative to the reference point ref addresses, normalized by the total
// scattering length.
//
// Errors:
//   - ErrBadName, ErrBadPathSyntax: malformed path, or no reference point.
//   - ErrUnknownName, ErrInvalidReference: a segment does not resolve.
//   - ErrBadDepth, ErrBadForm: from the options.
func (w *World) FormFactorAmplitude(ref string, opts ...QueryOption) (Result, error) {
	res, err := w.amplitude(ref, true, opts)
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.FormFactorAmplitude(%q)", ref)
	}
	return res, nil
}

// FormFactorAmplitudeUnnormalized is FormFactorAmplitude weighted by
// scattering lengths but not divided by their sum.
func (w *World) FormFactorAmplitudeUnnormalized(ref string, opts ...QueryOption) (Result, error) {
	res, err := w.amplitude(ref, false, opts)
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.FormFactorAmplitudeUnnormalized(%q)", ref)
	}
	return res, nil
}

// FormFactorAmplitudeX is FormFactorAmplitude in dimensionless variables.
func (w *World) FormFactorAmplitudeX(ref string, opts ...QueryOption) (Result, error) {
	return w.FormFactorAmplitude(ref, forced(opts, subunit.XVar)...)
}

// FormFactorAmplitudeGeneric is FormFactorAmplitude in opaque symbols.
func (w *World) FormFactorAmplitudeGeneric(ref string, opts ...QueryOption) (Result, error) {
	return w.FormFactorAmplitude(ref, forced(opts, subunit.Generic)...)
}

// FormFactorAmplitudeXUnnormalized is the unnormalized amplitude in
// dimensionless variables.
func (w *World) FormFactorAmplitudeXUnnormalized(ref string, opts ...QueryOption) (Result, error) {
	return w.FormFactorAmplitudeUnnormalized(ref, forced(opts, subunit.XVar)...)
}

// FormFactorAmplitudeGenericUnnormalized is the unnormalized amplitude in
// opaque symbols.
func (w *World) FormFactorAmplitudeGenericUnnormalized(ref string, opts ...QueryOption) (Result, error) {
	return w.FormFactorAmplitudeUnnormalized(ref, forced(opts, subunit.Generic)...)
}

// FormFactorAmplitudeNormalization returns the total scattering length seen
// from ref, the denominator of FormFactorAmplitude.
func (w *World) FormFactorAmplitudeNormalization(ref string, opts ...QueryOption) (Result, error) {
	return w.FormFactorAmplitudeUnnormalized(ref, forced(opts, subunit.Beta)...)
}

// PhaseFactor returns the phase factor between two reference points below
// the same structure or on the same sub-unit. The phase factor between a
// point and itself is 1.
//
// Errors:
//   - ErrBadPathSyntax: the points do not share their top segment.
//   - as FormFactorAmplitude for each point.
func (w *World) PhaseFactor(r1, r2 string, opts ...QueryOption) (Result, error) {
	res, err := w.run("PhaseFactor", opts, func(q *query, depth int) (expr.Expr, error) {
		if err := w.checkPair(r1, r2); err != nil {
			return nil, err
		}
		return q.refToRef(r1, r2, depth)
	})
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.PhaseFactor(%q, %q)", r1, r2)
	}
	return res, nil
}

// PhaseFactorX is PhaseFactor in dimensionless variables.
func (w *World) PhaseFactorX(r1, r2 string, opts ...QueryOption) (Result, error) {
	return w.PhaseFactor(r1, r2, forced(opts, subunit.XVar)...)
}

// PhaseFactorGeneric is PhaseFactor in opaque symbols.
func (w *World) PhaseFactorGeneric(r1, r2 string, opts ...QueryOption) (Result, error) {
	return w.PhaseFactor(r1, r2, forced(opts, subunit.Generic)...)
}

// Path returns the reference points a phase factor between r1 and r2 steps
// through when resolved to the query depth, outermost structure first in
// every path.
func (w *World) Path(r1, r2 string, opts ...QueryOption) ([]string, error) {
	var out []string
	_, err := w.run("Path", opts, func(q *query, depth int) (expr.Expr, error) {
		if err := w.checkPair(r1, r2); err != nil {
			return nil, err
		}
		p, err := q.path(r1, r2, depth)
		out = p
		return nil, err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "World.Path(%q, %q)", r1, r2)
	}
	return out, nil
}

// ratio returns factor * c2 / c0 of the expansion of e in q.
func (w *World) ratio(e expr.Expr, factor int64, divide bool) (expr.Expr, error) {
	q := w.reg.Q()
	e = expr.Expand(e)
	c2 := expr.Prod(expr.Int(factor), expr.Coeff(e, q, 2))
	if !divide {
		return c2, nil
	}
	c0 := expr.Coeff(e, q, 0)
	if n, ok := expr.AsNumber(c0); ok && n.IsZero() {
		return nil, errors.Wrap(errors.ErrNotNumeric, "zero total scattering length")
	}
	return expr.Div(c2, c0), nil
}

// RadiusOfGyration2 returns the scattering length weighted squared radius of
// gyration of name, read off the Guinier expansion of its form factor:
// F = (sum beta)^2 (1 - q^2 Rg^2/3 + ...).
func (w *World) RadiusOfGyration2(name string, opts ...QueryOption) (Result, error) {
	res, err := w.formFactor(name, false, forced(opts, subunit.Guinier))
	if err == nil {
		res.Expr, err = w.ratio(res.Expr, -3, true)
	}
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.RadiusOfGyration2(%q)", name)
	}
	return res, nil
}

// SMSDRef2Scat returns the scattering length weighted mean square distance
// between ref and the scatterers of the node it belongs to, read off the
// Guinier expansion A = sum beta (1 - q^2 <R^2>/6 + ...).
func (w *World) SMSDRef2Scat(ref string, opts ...QueryOption) (Result, error) {
	res, err := w.amplitude(ref, false, forced(opts, subunit.Guinier))
	if err == nil {
		res.Expr, err = w.ratio(res.Expr, -6, true)
	}
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.SMSDRef2Scat(%q)", ref)
	}
	return res, nil
}

// SMSDRef2Ref returns the mean square distance between two reference
// points, read off the Guinier expansion Psi = 1 - q^2 <R^2>/6 + ....
func (w *World) SMSDRef2Ref(r1, r2 string, opts ...QueryOption) (Result, error) {
	res, err := w.PhaseFactor(r1, r2, forced(opts, subunit.Guinier)...)
	if err == nil {
		res.Expr, err = w.ratio(res.Expr, -6, false)
	}
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.SMSDRef2Ref(%q, %q)", r1, r2)
	}
	return res, nil
}

// Count returns the number of scattering sub-units seen from ref: the
// unnormalized amplitude with every term set to 1.
func (w *World) Count(ref string, opts ...QueryOption) (Result, error) {
	res, err := w.amplitude(ref, false, forced(opts, subunit.One))
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.Count(%q)", ref)
	}
	return res, nil
}

// CountPairs returns the number of ordered pairs of scattering sub-units in
// name, self pairs included: the unnormalized form factor with every term
// set to 1.
func (w *World) CountPairs(name string, opts ...QueryOption) (Result, error) {
	res, err := w.formFactor(name, false, forced(opts, subunit.One))
	if err != nil {
		return Result{}, errors.Wrapf(err, "World.CountPairs(%q)", name)
	}
	return res, nil
}
