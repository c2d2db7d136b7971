// Package symbols maps composite names to symbols so that one textual name
// always yields the same *expr.Sym within a registry.
//
// Composite names follow the forms
//
//	s              e.g. q, Rg
//	s_tag          e.g. F_poly
//	s_tag:ref      e.g. A_poly:end1
//	s_tag:r1,r2    e.g. Psi_poly:end1,end2 (r1 <= r2)
package symbols

import (
	"sort"
	"sync"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/refpath"
)

// Q is the name of the scattering vector magnitude symbol.
const Q = "q"

// Registry is a memoized name to symbol table. It is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	syms map[string]*expr.Sym
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{syms: make(map[string]*expr.Sym)}
}

// Default is the process-wide registry used when none is injected.
var Default = NewRegistry()

func (r *Registry) get(name string) *expr.Sym {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.syms[name]; ok {
		return s
	}
	s := expr.NewSymbol(name)
	r.syms[name] = s
	return s
}

// Get returns the plain symbol s. s must be alphanumeric.
func (r *Registry) Get(s string) (*expr.Sym, error) {
	if !refpath.ValidName(s) {
		return nil, errors.Wrapf(errors.ErrBadName, "symbol %q", s)
	}
	return r.get(s), nil
}

// Q returns the scattering vector magnitude symbol.
func (r *Registry) Q() *expr.Sym { return r.get(Q) }

// Tagged returns s_tag.
func (r *Registry) Tagged(s, tag string) (*expr.Sym, error) {
	if err := checkParts(s, tag); err != nil {
		return nil, err
	}
	return r.get(s + "_" + tag), nil
}

// MustTagged is Tagged for parts already validated by the caller. It panics
// on a bad name.
func (r *Registry) MustTagged(s, tag string) *expr.Sym {
	sym, err := r.Tagged(s, tag)
	if err != nil {
		panic(err)
	}
	return sym
}

// Ref returns s_tag:ref.
func (r *Registry) Ref(s, tag, ref string) (*expr.Sym, error) {
	if err := checkParts(s, tag, ref); err != nil {
		return nil, err
	}
	return r.get(s + "_" + tag + ":" + ref), nil
}

// Pair returns s_tag:r1,r2 with the two references in sorted order.
func (r *Registry) Pair(s, tag, r1, r2 string) (*expr.Sym, error) {
	if err := checkParts(s, tag, r1, r2); err != nil {
		return nil, err
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return r.get(s + "_" + tag + ":" + r1 + "," + r2), nil
}

// MustRef is Ref for parts already validated by the caller.
func (r *Registry) MustRef(s, tag, ref string) *expr.Sym {
	sym, err := r.Ref(s, tag, ref)
	if err != nil {
		panic(err)
	}
	return sym
}

// MustPair is Pair for parts already validated by the caller.
func (r *Registry) MustPair(s, tag, r1, r2 string) *expr.Sym {
	sym, err := r.Pair(s, tag, r1, r2)
	if err != nil {
		panic(err)
	}
	return sym
}

func checkParts(parts ...string) error {
	for _, p := range parts {
		if !refpath.ValidReference(p) {
			return errors.Wrapf(errors.ErrBadName, "symbol part %q", p)
		}
	}
	return nil
}

// Len returns the number of symbols created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.syms)
}

// Names returns the sorted names of every symbol created so far.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.syms))
	for n := range r.syms {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
