package subunit

import (
	"sort"

	"github.com/Tobionecenobi/SEB/errors"
	"github.com/Tobionecenobi/SEB/refpath"
)

var constructors = map[string]func() *Unit{
	KindPoint:               NewPoint,
	KindGaussianLoop:        NewGaussianLoop,
	KindGaussianPolymer:     NewGaussianPolymer,
	KindThinRod:             NewThinRod,
	KindThinCircle:          NewThinCircle,
	KindThinDisk:            NewThinDisk,
	KindThinSphericalShell:  NewThinSphericalShell,
	KindSolidSphere:         NewSolidSphere,
	KindSolidSphericalShell: NewSolidSphericalShell,
	KindSolidCylinder:       NewSolidCylinder,
	KindSymbolic:            NewSymbolic,
}

// New returns an unbound sub-unit of the named kind.
func New(kind string) (*Unit, error) {
	c, ok := constructors[kind]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrBadLeaf, "unknown sub-unit kind %q", kind),
			"known kinds: %v", Kinds())
	}
	return c(), nil
}

// Kinds returns the sorted sub-unit kind names.
func Kinds() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate lists the terms a bound closed-form unit is missing: an amplitude
// and a reference to scatterer moment for every reference, and a phase factor
// and reference to reference moment for every pair. Sampled references
// share their base's terms and are skipped. Symbolic and point units never
// miss anything.
func Validate(u *Unit) []string {
	if u.variant != closedForm {
		return nil
	}
	var refs []string
	for _, r := range u.References() {
		if !refpath.HasHash(r) {
			refs = append(refs, r)
		}
	}
	refs = append(refs, u.Distributed()...)
	sort.Strings(refs)

	var missing []string
	if u.ff == nil {
		missing = append(missing, "F")
	}
	if u.rg2 == nil {
		missing = append(missing, "Rg2")
	}
	for _, r := range refs {
		if _, ok := u.amp[r]; !ok {
			missing = append(missing, "A:"+r)
		}
		if _, ok := u.msdScat[r]; !ok {
			missing = append(missing, "sigmaRrs2:"+r)
		}
	}
	for i, r1 := range refs {
		for _, r2 := range refs[i:] {
			if r1 == r2 && u.specific[r1] {
				continue
			}
			k := pair(r1, r2)
			if _, ok := u.psi[k]; !ok {
				missing = append(missing, "Psi:"+k.a+","+k.b)
			}
			if _, ok := u.msdRef[k]; !ok {
				missing = append(missing, "sigmaRrr2:"+k.a+","+k.b)
			}
		}
	}
	return missing
}
