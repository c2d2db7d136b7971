// File: types.go
// Role: World type, construction-time options, query options and result types.
// Determinism:
//   - A World holds no per-query state; every query owns its accumulator.
// Concurrency:
//   - Construction takes the World's write lock, queries its read lock, so
//     queries may run in parallel with each other but never with a mutation.
package world

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/logger"
	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/symbols"
)

// DefaultDepth resolves every nesting level.
const DefaultDepth = math.MaxInt32

// DefaultForm is the form used when a query names none.
const DefaultForm = subunit.QVar

// World owns a set of sub-units and structures, the graphs they form and the
// links that join them.
type World struct {
	mu  sync.RWMutex
	id  uuid.UUID
	cat *core.Catalog
	reg *symbols.Registry
	log *zap.SugaredLogger
}

// Option configures a World at construction.
type Option func(*World)

// WithLogger replaces the process logger. A nil logger is ignored.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithRegistry injects the symbol registry shared by every leaf and
// structure of the World. A nil registry is ignored.
func WithRegistry(r *symbols.Registry) Option {
	return func(w *World) {
		if r != nil {
			w.reg = r
		}
	}
}

// New returns an empty World.
func New(opts ...Option) *World {
	w := &World{
		id:  uuid.New(),
		cat: core.NewCatalog(),
		reg: symbols.Default,
		log: logger.Logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With(logger.FieldWorld, w.id.String())
	return w
}

// ID returns the session id attached to the World's log lines.
func (w *World) ID() uuid.UUID { return w.id }

// Registry returns the World's symbol registry.
func (w *World) Registry() *symbols.Registry { return w.reg }

// QueryOption tunes a single query.
type QueryOption func(*queryOptions)

type queryOptions struct {
	depth int
	form  subunit.Form
	ctx   context.Context
	err   error
}

func defaultQueryOptions() queryOptions {
	return queryOptions{depth: DefaultDepth, form: DefaultForm, ctx: context.Background()}
}

// WithDepth limits how many nesting levels are resolved; structures below
// the limit appear as placeholder symbols.
//
//	d >= 0: resolve d levels
//	d < 0:  invalid → ErrBadDepth
func WithDepth(d int) QueryOption {
	return func(o *queryOptions) {
		if d < 0 {
			o.err = errors.Wrapf(errors.ErrBadDepth, "depth %d", d)
			return
		}
		o.depth = d
	}
}

// WithForm selects the representation of every term. Variant front ends
// (FormFactorX, Count, ...) override it.
func WithForm(f subunit.Form) QueryOption {
	return func(o *queryOptions) {
		if !f.Valid() {
			o.err = errors.Wrapf(errors.ErrBadForm, "%v", f)
			return
		}
		o.form = f
	}
}

// WithContext lets a caller cancel the connecting-path searches of a query.
func WithContext(ctx context.Context) QueryOption {
	return func(o *queryOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func buildQueryOptions(opts []QueryOption) (queryOptions, error) {
	o := defaultQueryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is an assembled expression together with the free parameters
// touched while assembling it.
type Result struct {
	Expr   expr.Expr
	Params *subunit.Params
}

func (r Result) String() string {
	if r.Expr == nil {
		return "<nil>"
	}
	return r.Expr.String()
}

// Parameters returns every accumulated symbol set to 0.
func (r Result) Parameters() ParameterList {
	pl := ParameterList{}
	for _, n := range r.Params.All() {
		pl[n] = 0
	}
	return pl
}

// ParametersAtZeroQ is Parameters with q also set to 0.
func (r Result) ParametersAtZeroQ() ParameterList {
	pl := r.Parameters()
	pl[symbols.Q] = 0
	return pl
}
