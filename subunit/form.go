package subunit

import (
	"strconv"
	"strings"

	"github.com/Tobionecenobi/SEB/errors"
)

// Form selects how scattering terms are represented.
type Form int

const (
	// Generic uses one opaque symbol per term: F_tag, A_tag:ref, Psi_tag:r1,r2.
	Generic Form = 1
	// XVar uses each leaf's closed form in its dimensionless variables.
	XVar Form = 2
	// QVar is XVar with the dimensionless variables written in q and sizes.
	QVar Form = 3
	// Beta keeps only scattering length bookkeeping (q -> 0).
	Beta Form = 4
	// Guinier uses second order expansions in q.
	Guinier Form = 5
	// One maps every term to 1, for counting.
	One Form = 7
)

var formNames = map[Form]string{
	Generic: "GENERIC",
	XVar:    "XVAR",
	QVar:    "QVAR",
	Beta:    "BETA",
	Guinier: "GUINIER",
	One:     "ONE",
}

func (f Form) String() string {
	if n, ok := formNames[f]; ok {
		return n
	}
	return "Form(" + strconv.Itoa(int(f)) + ")"
}

// Valid reports whether f is a known form.
func (f Form) Valid() bool {
	_, ok := formNames[f]
	return ok
}

// ParseForm returns the form named s, case-insensitively.
func ParseForm(s string) (Form, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for f, n := range formNames {
		if n == up {
			return f, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrBadForm, "form %q", s)
}
