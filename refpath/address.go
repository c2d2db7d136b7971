package refpath

import (
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
)

// Address is a parsed reference point path.
type Address struct {
	// Segments holds the structure names followed by the leaf name.
	Segments []string
	// Base is the reference point name, empty when the path names a node.
	Base string
	// Label is the sample label of a distributed reference point.
	Label string
}

// Parse validates p against the grammar and splits it.
func Parse(p string) (Address, error) {
	if !ValidReference(p) {
		return Address{}, errors.Wrapf(errors.ErrBadName, "path %q", p)
	}

	var a Address
	node := p
	if dot := strings.Index(p, Period); dot >= 0 {
		node = p[:dot]
		ref := p[dot+1:]
		if strings.Contains(ref, Colon) || strings.Contains(ref, Period) {
			return Address{}, syntaxError(p, "%q has separators after '.'")
		}
		a.Base = ref
		if h := strings.Index(ref, Hash); h >= 0 {
			a.Base, a.Label = ref[:h], ref[h+1:]
			if a.Label == "" || strings.Contains(a.Label, Hash) {
				return Address{}, syntaxError(p, "%q has a bad sample label")
			}
		}
		if a.Base == "" {
			return Address{}, syntaxError(p, "%q has an empty reference point")
		}
	} else if strings.Contains(p, Hash) {
		return Address{}, syntaxError(p, "%q has '#' without '.'")
	}

	a.Segments = strings.Split(node, Colon)
	for _, s := range a.Segments {
		if s == "" {
			return Address{}, syntaxError(p, "%q has an empty segment")
		}
	}
	return a, nil
}

// Leaf returns the last segment.
func (a Address) Leaf() string { return a.Segments[len(a.Segments)-1] }

// Top returns the first segment.
func (a Address) Top() string { return a.Segments[0] }

// Nested reports whether the address descends into a structure.
func (a Address) Nested() bool { return len(a.Segments) > 1 }

// HasReference reports whether the address names a reference point.
func (a Address) HasReference() bool { return a.Base != "" }

// Reference returns the reference point name with its label.
func (a Address) Reference() string {
	if a.Label == "" {
		return a.Base
	}
	return a.Base + Hash + a.Label
}

// Inner drops the top segment.
func (a Address) Inner() (Address, error) {
	if !a.Nested() {
		return Address{}, errors.Wrapf(errors.ErrBadPathSyntax, "%q has no inner segment", a.String())
	}
	return Address{Segments: a.Segments[1:], Base: a.Base, Label: a.Label}, nil
}

// String renders the address back to path form.
func (a Address) String() string {
	s := Join(a.Segments...)
	if a.Base != "" {
		s = At(s, a.Reference())
	}
	return s
}
