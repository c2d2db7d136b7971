// File: evaluate.go
// Role: numeric evaluation of assembled expressions: parameter lists,
//       single values, q series, series files, and q grids.
package world

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/expr"
	"github.com/Tobionecenobi/SEB/symbols"
)

// ParameterList maps symbol names to numeric values.
type ParameterList map[string]float64

// Q returns a parameter list holding only the scattering vector magnitude.
func Q(v float64) ParameterList {
	return ParameterList{symbols.Q: v}
}

// Set assigns v to name and returns pl for chaining.
func (pl ParameterList) Set(name string, v float64) ParameterList {
	pl[name] = v
	return pl
}

// Merge copies every value of o into pl and returns pl.
func (pl ParameterList) Merge(o ParameterList) ParameterList {
	for k, v := range o {
		pl[k] = v
	}
	return pl
}

// Names returns the parameter names, sorted.
func (pl ParameterList) Names() []string {
	out := make([]string, 0, len(pl))
	for k := range pl {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Evaluate reduces e to a number with the values in pl.
//
// Errors:
//   - ErrNotNumeric: a free symbol has no value, or the result is NaN.
func Evaluate(e expr.Expr, pl ParameterList) (float64, error) {
	if e == nil {
		return 0, errors.Wrap(errors.ErrNotNumeric, "nil expression")
	}
	v, err := e.Eval(pl)
	if err != nil {
		return 0, errors.WithHint(err, "not all parameters were specified")
	}
	if math.IsNaN(v) {
		return 0, errors.Wrapf(errors.ErrNotNumeric, "%s evaluates to NaN", e)
	}
	return v, nil
}

// EvaluateAt is Evaluate with q set to the given value. pl is not modified.
func EvaluateAt(e expr.Expr, pl ParameterList, q float64) (float64, error) {
	env := make(ParameterList, len(pl)+1).Merge(pl)
	env[symbols.Q] = q
	return Evaluate(e, env)
}

// EvaluateSeries evaluates e at every q in qs.
func EvaluateSeries(e expr.Expr, pl ParameterList, qs []float64) ([]float64, error) {
	env := make(ParameterList, len(pl)+1).Merge(pl)
	out := make([]float64, len(qs))
	for i, q := range qs {
		env[symbols.Q] = q
		v, err := Evaluate(e, env)
		if err != nil {
			return nil, errors.Wrapf(err, "at q=%g", q)
		}
		out[i] = v
	}
	return out, nil
}

// WriteSeries evaluates e at every q in qs and writes a header followed by
// one "q I" line per point. Header lines start with prefix; they record the
// comment, the expression and the parameters.
func WriteSeries(out io.Writer, e expr.Expr, pl ParameterList, qs []float64, comment, prefix string) ([]float64, error) {
	is, err := EvaluateSeries(e, pl, qs)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%sFile generated by SEB\n", prefix)
	fmt.Fprintf(&b, "%s%s\n", prefix, comment)
	fmt.Fprintf(&b, "%sExpression = %s\n", prefix, e)
	fmt.Fprintf(&b, "%sParameters:\n", prefix)
	for _, n := range pl.Names() {
		fmt.Fprintf(&b, "%s\t%s=%g\n", prefix, n, pl[n])
	}
	for i, q := range qs {
		fmt.Fprintf(&b, "%g %g\n", q, is[i])
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return nil, errors.Wrap(err, "writing series")
	}
	return is, nil
}

// WriteSeriesFile is WriteSeries into a new file at path.
func WriteSeriesFile(path string, e expr.Expr, pl ParameterList, qs []float64, comment, prefix string) (is []float64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	return WriteSeries(f, e, pl, qs, comment, prefix)
}

// checkRange orders q1 <= q2 and rejects non-positive bounds.
func checkRange(q1, q2 float64) (float64, float64, error) {
	if q2 < q1 {
		q1, q2 = q2, q1
	}
	if q1 <= 0 || q2 <= 0 {
		return 0, 0, errors.Wrapf(errors.ErrBadRange, "bounds %g, %g must be positive", q1, q2)
	}
	return q1, q2, nil
}

// Linspace returns n evenly spaced values from q1 to q2, bounds included.
// The bounds may be given in either order.
//
// Errors:
//   - ErrBadRange: a bound is not positive, or n <= 1.
func Linspace(q1, q2 float64, n int) ([]float64, error) {
	q1, q2, err := checkRange(q1, q2)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, errors.Wrapf(errors.ErrBadRange, "number of points %d must be larger than 1", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = (q2-q1)*float64(i)/float64(n-1) + q1
	}
	return out, nil
}

// Logspace returns n logarithmically spaced values from q1 to q2.
//
// Errors:
//   - ErrBadRange: as Linspace.
func Logspace(q1, q2 float64, n int) ([]float64, error) {
	q1, q2, err := checkRange(q1, q2)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, errors.Wrapf(errors.ErrBadRange, "number of points %d must be larger than 1", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, math.Log10(q2/q1)*float64(i)/float64(n-1)+math.Log10(q1))
	}
	return out, nil
}

// LogspaceBase returns q1, q1*base, q1*base², ... up to q2.
//
// Errors:
//   - ErrBadRange: a bound is not positive, or base <= 1.
func LogspaceBase(q1, q2, base float64) ([]float64, error) {
	q1, q2, err := checkRange(q1, q2)
	if err != nil {
		return nil, err
	}
	if base <= 1 {
		return nil, errors.Wrapf(errors.ErrBadRange, "base %g must be larger than 1", base)
	}
	var out []float64
	for x := q1; x <= q2; x *= base {
		out = append(out, x)
	}
	return out, nil
}
