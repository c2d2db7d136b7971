// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// id_fn.go - naming schemes constructors use for the sub-units they create.
// A constructor names its i-th sub-unit prefix + idFn(i); the result must be
// a valid (alphanumeric) name.

package builder

import (
	"strconv"

	"github.com/Tobionecenobi/SEB/errors"
)

// IDFn generates a name suffix from a zero-based index. It must be pure:
// the same idx always gives the same string. An index the scheme cannot
// name is an error wrapping ErrNamesExhausted.
type IDFn func(idx int) (string, error)

// symbolCount is the number of names SymbolIDFn can hand out.
const symbolCount = 26

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) (string, error) {
	if idx < 0 {
		return "", errors.Wrapf(ErrNamesExhausted, "DefaultIDFn: idx %d < 0", idx)
	}
	return strconv.Itoa(idx), nil
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g.
// 0→"A", 25→"Z".
func SymbolIDFn(idx int) (string, error) {
	if idx < 0 || idx >= symbolCount {
		return "", errors.Wrapf(ErrNamesExhausted, "SymbolIDFn: idx must be in [0,%d], got %d", symbolCount-1, idx)
	}
	return string(rune('A' + idx)), nil
}

// WithDefaultIDs resets the naming scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs names sub-units with single letters.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}
