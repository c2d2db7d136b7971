// Package errors provides error handling for SEB.
//
// This package re-exports github.com/cockroachdb/errors and adds the error
// kinds raised while building and querying a World. Every failure carries
// one kind (a sentinel below) and a trail of context frames, one per call
// that handed the error upwards:
//
//	// Raise a kind with context
//	return errors.Wrapf(errors.ErrUnknownName, "name %q", name)
//
//	// Add the current frame while propagating
//	if err != nil {
//	    return 0, errors.Wrapf(err, "World.Link(%q, %q)", newRef, oldRef)
//	}
//
//	// Inspect
//	if errors.Is(err, errors.ErrMissingSampleLabel) { ... }
//	frames := errors.Trail(err)
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Error kinds. Wrap these with Wrapf to add context while preserving the kind.
var (
	// ErrBadName indicates a structure, leaf or tag name with disallowed characters.
	ErrBadName = New("bad name")

	// ErrDuplicateName indicates the name is already in the catalog.
	ErrDuplicateName = New("duplicate name")

	// ErrUnknownName indicates the name is absent from the catalog.
	ErrUnknownName = New("unknown name")

	// ErrInvalidReference indicates a reference point that is absent from,
	// or cannot be resolved on, the target leaf or structure.
	ErrInvalidReference = New("invalid reference point")

	// ErrMissingSampleLabel indicates a distributed reference point used
	// without a #label.
	ErrMissingSampleLabel = New("distributed reference point needs a #label")

	// ErrBadGraphID indicates an out-of-range graph id.
	ErrBadGraphID = New("bad graph id")

	// ErrBadPathSyntax indicates a malformed reference point path.
	ErrBadPathSyntax = New("bad path syntax")

	// ErrInternal indicates a broken internal invariant, such as a missing
	// connecting path or a graph id mismatch after a structural link.
	ErrInternal = New("internal invariant violation")

	// ErrDuplicateReference indicates a reference point registered twice on one leaf.
	ErrDuplicateReference = New("duplicate reference point")

	// ErrUnknownReference indicates a reference point base unknown to the leaf.
	ErrUnknownReference = New("unknown reference point")

	// ErrBadLeaf indicates a nil or unusable sub-unit instance.
	ErrBadLeaf = New("bad sub-unit instance")

	// ErrBadDepth indicates a negative recursion depth.
	ErrBadDepth = New("depth must be non-negative")

	// ErrBadForm indicates an unsupported variable form.
	ErrBadForm = New("unsupported variable form")

	// ErrNotNumeric indicates an expression that did not reduce to a number.
	ErrNotNumeric = New("expression is not numeric")

	// ErrBadRange indicates invalid linspace/logspace arguments.
	ErrBadRange = New("bad range")
)

var kinds = []error{
	ErrBadName,
	ErrDuplicateName,
	ErrUnknownName,
	ErrInvalidReference,
	ErrMissingSampleLabel,
	ErrBadGraphID,
	ErrBadPathSyntax,
	ErrInternal,
	ErrDuplicateReference,
	ErrUnknownReference,
	ErrBadLeaf,
	ErrBadDepth,
	ErrBadForm,
	ErrNotNumeric,
	ErrBadRange,
}

// Kind returns the error kind wrapped by err, or nil when err carries none.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

// Trail returns the context frames of err, outermost first, followed by the
// root message.
func Trail(err error) []string {
	var frames []string
	for cur := err; cur != nil; {
		next := UnwrapOnce(cur)
		if next == nil {
			frames = append(frames, cur.Error())
			break
		}
		msg, inner := cur.Error(), next.Error()
		if msg != inner && strings.HasSuffix(msg, ": "+inner) {
			frames = append(frames, strings.TrimSuffix(msg, ": "+inner))
		}
		cur = next
	}
	return frames
}
