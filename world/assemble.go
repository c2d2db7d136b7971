// File: assemble.go
// Role: recursive expression assembly: refToRef (phase factor between two
//       reference points), refToAll (amplitude relative to a reference
//       point) and allToAll (form factor), plus the reference point path
//       behind a phase factor.
// Determinism:
//   - Children are visited in insertion order and every connecting path is
//     reproducible, so equal Worlds assemble equal expressions.
// Concurrency:
//   - A query is owned by one goroutine; the World's read lock is held by
//     the front end for the query's lifetime.
package world

import (
	"context"

	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/subunit"
)

// query carries the state of one top-level request through the recursion.
type query struct {
	w    *World
	form subunit.Form
	acc  *subunit.Params
	ctx  context.Context
	refs map[string][]string
}

func (w *World) newQuery(o queryOptions) *query {
	return &query{
		w:    w,
		form: o.form,
		acc:  subunit.NewParams(),
		ctx:  o.ctx,
		refs: map[string][]string{},
	}
}

// withForm returns a view of q in form f sharing its accumulator.
func (q *query) withForm(f subunit.Form) *query {
	c := *q
	c.form = f
	return &c
}

// refToRef returns the phase factor between r1 and r2, which share their
// top segment.
//
// Implementation:
//   - Stage 1: On a sub-unit, ask the sub-unit.
//   - Stage 2: On a structure, identical or linked points give 1, and an
//     exhausted depth gives the structure's placeholder.
//   - Stage 3: Points inside the same child recurse one level down;
//     otherwise multiply the phase factors along the connecting path.
func (q *query) refToRef(r1, r2 string, depth int) (expr.Expr, error) {
	me, err := refpath.Prefix(r1)
	if err != nil {
		return nil, err
	}
	e, err := q.w.entry(me)
	if err != nil {
		return nil, err
	}

	if e.Kind != core.KindStructure {
		l, err := q.w.leaf(me)
		if err != nil {
			return nil, err
		}
		ref1, err := refpath.Reference(r1)
		if err != nil {
			return nil, err
		}
		ref2, err := refpath.Reference(r2)
		if err != nil {
			return nil, err
		}
		return l.PhaseFactor(ref1, ref2, q.form, q.acc)
	}

	if r1 == r2 || q.w.cat.IsLinked(r1, r2) {
		return expr.Int(1), nil
	}
	if depth == 0 {
		s, err := q.w.structure(me)
		if err != nil {
			return nil, err
		}
		return s.PhaseFactor(r1, r2, q.form, q.acc)
	}

	p1, err := refpath.Postfix(r1)
	if err != nil {
		return nil, err
	}
	p2, err := refpath.Postfix(r2)
	if err != nil {
		return nil, err
	}
	c1, err := refpath.Prefix(p1)
	if err != nil {
		return nil, err
	}
	c2, err := refpath.Prefix(p2)
	if err != nil {
		return nil, err
	}
	if c1 == c2 {
		return q.refToRef(p1, p2, depth-1)
	}

	path, err := q.findPath(r1, r2)
	if err != nil {
		return nil, err
	}
	return q.phaseProduct(path, depth-1)
}

// phaseProduct multiplies the phase factors of the steps along path. Steps
// across a link contribute nothing; every other step is resolved by
// refToRef at depth.
func (q *query) phaseProduct(path []string, depth int) (expr.Expr, error) {
	if depth < 0 {
		return nil, errors.Wrapf(errors.ErrBadDepth, "depth %d", depth)
	}
	factors := make([]expr.Expr, 0, len(path))
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if q.w.cat.IsLinked(from, to) {
			continue
		}
		psi, err := q.refToRef(from, to, depth)
		if err != nil {
			return nil, err
		}
		factors = append(factors, psi)
	}
	return expr.Prod(factors...), nil
}

// refToAll returns the amplitude of the node at the top of ref relative to
// the reference point ref addresses.
//
// Implementation:
//   - Stage 1: On a sub-unit, ask the sub-unit.
//   - Stage 2: On a structure at depth 0, the structure's placeholder.
//   - Stage 3: Otherwise sum over children: the child holding ref recurses
//     on the rest of the path; every other child contributes the phase
//     factor along the path from ref times its amplitude relative to where
//     the path enters it.
func (q *query) refToAll(ref string, depth int) (expr.Expr, error) {
	me, err := refpath.Prefix(ref)
	if err != nil {
		return nil, err
	}
	e, err := q.w.entry(me)
	if err != nil {
		return nil, err
	}

	if e.Kind != core.KindStructure {
		l, err := q.w.leaf(me)
		if err != nil {
			return nil, err
		}
		r, err := refpath.Reference(ref)
		if err != nil {
			return nil, err
		}
		return l.FormFactorAmplitude(r, q.form, q.acc)
	}

	if depth == 0 {
		s, err := q.w.structure(me)
		if err != nil {
			return nil, err
		}
		return s.FormFactorAmplitude(ref, q.form, q.acc)
	}

	children, err := q.w.children(me)
	if err != nil {
		return nil, err
	}
	terms := make([]expr.Expr, 0, len(children))
	for _, child := range children {
		path, err := q.findPath(ref, refpath.Join(me, child))
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			inner, err := refpath.Postfix(ref)
			if err != nil {
				return nil, err
			}
			a, err := q.refToAll(inner, depth-1)
			if err != nil {
				return nil, err
			}
			terms = append(terms, a)
			continue
		}
		psi, err := q.phaseProduct(path, depth-1)
		if err != nil {
			return nil, err
		}
		a, err := q.refToAll(path[len(path)-1], depth-1)
		if err != nil {
			return nil, err
		}
		terms = append(terms, expr.Prod(psi, a))
	}
	return expr.Sum(terms...), nil
}

// allToAll returns the form factor of name.
//
// Implementation:
//   - Stage 1: On a sub-unit, or a structure at depth 0, ask the scatterer;
//     a structure answers with its placeholder.
//   - Stage 2: Otherwise sum the children's own form factors and, for every
//     unordered pair of children, 2 A1 Psi A2 along their connecting path.
//
// Complexity:
//   - One path search per pair of children at every resolved level.
func (q *query) allToAll(name string, depth int) (expr.Expr, error) {
	e, err := q.w.entry(name)
	if err != nil {
		return nil, err
	}

	if e.Kind != core.KindStructure || depth == 0 {
		s, err := q.w.scatterer(name)
		if err != nil {
			return nil, err
		}
		return s.FormFactor(q.form, q.acc)
	}

	children, err := q.w.children(name)
	if err != nil {
		return nil, err
	}
	var terms []expr.Expr
	for i, c1 := range children {
		f, err := q.allToAll(c1, depth-1)
		if err != nil {
			return nil, err
		}
		terms = append(terms, f)

		for _, c2 := range children[i+1:] {
			path, err := q.findPath(refpath.Join(name, c1), refpath.Join(name, c2))
			if err != nil {
				return nil, err
			}
			if len(path) == 0 {
				return nil, errors.Wrapf(errors.ErrInternal, "empty path between children %q and %q of %q", c1, c2, name)
			}
			a1, err := q.refToAll(path[0], depth-1)
			if err != nil {
				return nil, err
			}
			psi, err := q.phaseProduct(path, depth-1)
			if err != nil {
				return nil, err
			}
			a2, err := q.refToAll(path[len(path)-1], depth-1)
			if err != nil {
				return nil, err
			}
			terms = append(terms, expr.Prod(expr.Int(2), a1, psi, a2))
		}
	}
	return expr.Sum(terms...), nil
}

// path lists the reference points a phase factor between r1 and r2 steps
// through when resolved to depth. Steps across links are dropped from the
// expansion of every level below the top.
func (q *query) path(r1, r2 string, depth int) ([]string, error) {
	me, err := refpath.Prefix(r1)
	if err != nil {
		return nil, err
	}
	e, err := q.w.entry(me)
	if err != nil {
		return nil, err
	}
	if e.Kind != core.KindStructure {
		return []string{r1, r2}, nil
	}
	if r1 == r2 || depth == 0 || q.w.cat.IsLinked(r1, r2) {
		return []string{r1, r2}, nil
	}

	p1, err := refpath.Postfix(r1)
	if err != nil {
		return nil, err
	}
	p2, err := refpath.Postfix(r2)
	if err != nil {
		return nil, err
	}
	c1, err := refpath.Prefix(p1)
	if err != nil {
		return nil, err
	}
	c2, err := refpath.Prefix(p2)
	if err != nil {
		return nil, err
	}

	var out []string
	if c1 == c2 {
		if out, err = q.path(p1, p2, depth-1); err != nil {
			return nil, err
		}
	} else {
		hops, err := q.findPath(r1, r2)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(hops); i++ {
			if q.w.cat.IsLinked(hops[i-1], hops[i]) {
				continue
			}
			sub, err := q.path(hops[i-1], hops[i], depth-1)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	for i, p := range out {
		out[i] = refpath.Join(me, p)
	}
	return out, nil
}
