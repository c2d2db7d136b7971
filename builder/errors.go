// SPDX-License-Identifier: MIT
// Package: SEB/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with errors.Wrapf(ErrX, "<Method>: ...").
//   • Errors from the World pass through unchanged under the constructor's
//     context, so world sentinels (ErrDuplicateName, ...) stay matchable.
//   • Runtime code never panics; option constructors may (programmer error).

package builder

import "github.com/Tobionecenobi/SEB/errors"

// ErrTooFewSubunits indicates a count (chain length, star arms) below the
// constructor's minimum.
var ErrTooFewSubunits = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a construction that cannot start, such as a
// nil World or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadDocument indicates a description document that cannot be decoded
// or whose steps miss required fields.
var ErrBadDocument = errors.New("builder: malformed description")

// ErrUnknownStep indicates a description step with an unknown op.
var ErrUnknownStep = errors.New("builder: unknown step")

// ErrUnknownGraph indicates a reference to a graph that no earlier
// constructor or step produced.
var ErrUnknownGraph = errors.New("builder: unknown graph")

// ErrNamesExhausted indicates an index the configured naming scheme cannot
// name, such as a 27th sub-unit under WithSymbolIDs.
var ErrNamesExhausted = errors.New("builder: naming scheme exhausted")
