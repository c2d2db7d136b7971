package subunit

import (
	"sort"

	"github.com/Tobionecenobi/SEB/expr"
)

// Params accumulates the free symbols touched while assembling one query:
// scattering length weights and every other structural parameter. A nil
// *Params discards everything.
type Params struct {
	betas map[string]*expr.Sym
	other map[string]*expr.Sym
}

// NewParams returns an empty accumulator.
func NewParams() *Params {
	return &Params{betas: map[string]*expr.Sym{}, other: map[string]*expr.Sym{}}
}

// AddBeta records a scattering length weight.
func (p *Params) AddBeta(s *expr.Sym) {
	if p == nil || s == nil {
		return
	}
	p.betas[s.Name()] = s
}

// Add records structural parameters.
func (p *Params) Add(syms ...*expr.Sym) {
	if p == nil {
		return
	}
	for _, s := range syms {
		if s != nil {
			p.other[s.Name()] = s
		}
	}
}

// Merge copies o into p.
func (p *Params) Merge(o *Params) {
	if p == nil || o == nil {
		return
	}
	for k, s := range o.betas {
		p.betas[k] = s
	}
	for k, s := range o.other {
		p.other[k] = s
	}
}

// Betas returns the sorted weight names.
func (p *Params) Betas() []string {
	if p == nil {
		return nil
	}
	return sortedKeys(p.betas)
}

// Names returns the sorted non-weight parameter names.
func (p *Params) Names() []string {
	if p == nil {
		return nil
	}
	return sortedKeys(p.other)
}

// All returns every recorded name, weights first.
func (p *Params) All() []string {
	return append(p.Betas(), p.Names()...)
}

func sortedKeys(m map[string]*expr.Sym) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
