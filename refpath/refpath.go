// Package refpath implements the reference point path grammar:
//
//	structure ":" structure ":" ... ":" leaf ["." base ["#" label]]
//
// Colon separated segments name nested structures ending in a leaf (or
// structure) name. The dot suffix names a reference point on that leaf and
// the hash suffix names one sample drawn from a distributed reference point.
// Segment names are ASCII alphanumeric.
package refpath

import (
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
)

// Grammar separators.
const (
	Colon  = ":"
	Period = "."
	Hash   = "#"
)

// ValidName reports whether s is a non-empty ASCII alphanumeric name.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

// ValidReference reports whether s is non-empty and uses only alphanumerics
// and the separators ":.#".
func ValidReference(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) && c != ':' && c != '.' && c != '#' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// HasColon reports whether p addresses into a structure.
func HasColon(p string) bool { return strings.Contains(p, Colon) }

// HasPeriod reports whether p names a reference point.
func HasPeriod(p string) bool { return strings.Contains(p, Period) }

// HasHash reports whether p carries a sample label.
func HasHash(p string) bool { return strings.Contains(p, Hash) }

func syntaxError(p, format string) error {
	return errors.Wrapf(errors.ErrBadPathSyntax, format, p)
}

// Prefix returns the text before the first ':', or before the first '.'
// when there is no colon, or the whole path.
func Prefix(p string) (string, error) {
	end := strings.Index(p, Colon)
	if end < 0 {
		end = strings.Index(p, Period)
	}
	if end < 0 {
		return p, nil
	}
	if end == 0 {
		return "", syntaxError(p, "%q starts with a separator")
	}
	return p[:end], nil
}

// Postfix returns the text after the first ':'.
func Postfix(p string) (string, error) {
	i := strings.Index(p, Colon)
	if i < 0 {
		return "", syntaxError(p, "%q has no ':'")
	}
	if i == len(p)-1 {
		return "", syntaxError(p, "%q ends with ':'")
	}
	return p[i+1:], nil
}

// Name returns the leaf segment: from after the last ':' up to the first
// '.' that follows it.
func Name(p string) (string, error) {
	start := strings.LastIndex(p, Colon) + 1
	end := len(p)
	if i := strings.Index(p[start:], Period); i >= 0 {
		end = start + i
	}
	if end <= start {
		return "", syntaxError(p, "%q has an empty name")
	}
	return p[start:end], nil
}

// Reference returns the text after the last '.', label included.
func Reference(p string) (string, error) {
	i := strings.LastIndex(p, Period)
	if i < 0 {
		return "", syntaxError(p, "%q has no '.'")
	}
	if i == len(p)-1 {
		return "", syntaxError(p, "%q ends with '.'")
	}
	return p[i+1:], nil
}

// ReferenceBase returns the reference point name between '.' and '#' (or
// the end).
func ReferenceBase(p string) (string, error) {
	dot := strings.LastIndex(p, Period)
	if dot < 0 {
		return "", syntaxError(p, "%q has no '.'")
	}
	end := len(p)
	if h := strings.Index(p, Hash); h >= 0 {
		if h < dot {
			return "", syntaxError(p, "%q has '#' before '.'")
		}
		end = h
	}
	if end == dot+1 {
		return "", syntaxError(p, "%q has an empty reference point")
	}
	return p[dot+1 : end], nil
}

// AfterHash returns the sample label after '#'.
func AfterHash(p string) (string, error) {
	i := strings.Index(p, Hash)
	if i < 0 {
		return "", syntaxError(p, "%q has no '#'")
	}
	if i == len(p)-1 {
		return "", syntaxError(p, "%q ends with '#'")
	}
	return p[i+1:], nil
}

// StripHash returns a reference point name without its sample label.
func StripHash(ref string) string {
	if i := strings.Index(ref, Hash); i >= 0 {
		return ref[:i]
	}
	return ref
}

// Join builds a path from structure segments.
func Join(segments ...string) string { return strings.Join(segments, Colon) }

// At returns the path of reference point ref on the node addressed by p.
func At(p, ref string) string { return p + Period + ref }
