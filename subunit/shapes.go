package subunit

import (
	"github.com/Tobionecenobi/SEB/expr"
)

// Sub-unit kind names accepted by New.
const (
	KindPoint               = "Point"
	KindGaussianLoop        = "GaussianLoop"
	KindGaussianPolymer     = "GaussianPolymer"
	KindThinRod             = "ThinRod"
	KindThinCircle          = "ThinCircle"
	KindThinDisk            = "ThinDisk"
	KindThinSphericalShell  = "ThinSphericalShell"
	KindSolidSphere         = "SolidSphere"
	KindSolidSphericalShell = "SolidSphericalShell"
	KindSolidCylinder       = "SolidCylinder"
	KindSymbolic            = "SymbolicSubunit"
)

// cylinderCutoff is the lower orientation bound for the cylinder averages;
// the integrands carry csc t.
var cylinderCutoff = expr.Rat(1, 100000)

func (u *Unit) mustSpecific(refs ...string) {
	for _, r := range refs {
		if err := u.AddSpecific(r); err != nil {
			panic(err)
		}
	}
}

func (u *Unit) mustDistributed(refs ...string) {
	for _, r := range refs {
		if err := u.AddDistributed(r); err != nil {
			panic(err)
		}
	}
}

// amplitude sets the amplitude relative to ref and its mean square distance.
func (u *Unit) amplitude(ref string, a, msd expr.Expr) {
	u.amp[ref] = a
	u.msdScat[ref] = msd
}

// phase sets the phase factor between two references and its mean square
// distance.
func (u *Unit) phase(r1, r2 string, p, msd expr.Expr) {
	k := pair(r1, r2)
	u.psi[k] = p
	u.msdRef[k] = msd
}

func frac(n, d int64, e expr.Expr) expr.Expr { return expr.Prod(expr.Rat(n, d), e) }

func sinc(x expr.Expr) expr.Expr { return expr.Div(expr.Sin(x), x) }

// ringFormFactor is the form factor of a thin circle in x = qR.
func ringFormFactor(x expr.Expr) expr.Expr {
	x2 := expr.Prod(expr.Int(2), x)
	return expr.Sum(
		expr.BesselJ0(x2),
		expr.Prod(expr.Div(expr.Pi, expr.Int(2)), expr.Sub(expr.Prod(expr.BesselJ1(x2), expr.StruveH0(x2)), expr.Prod(expr.BesselJ0(x2), expr.StruveH1(x2)))),
	)
}

// NewPoint returns a point scatterer with the specific reference "point".
// It carries no scattering mass: F and A are 0 and every phase factor is 1.
func NewPoint() *Unit {
	return newUnit(KindPoint, weightless, func(u *Unit) {
		u.mustSpecific("point")
	})
}

// NewGaussianPolymer returns a random walk polymer with ends end1 and end2,
// a midpoint and a distributed contour. Size: Rg.
func NewGaussianPolymer() *Unit {
	return newUnit(KindGaussianPolymer, closedForm, func(u *Unit) {
		x, rg := u.local("x"), u.local("Rg")
		u.expand[x.Name()] = expr.Sqr(expr.Prod(u.q(), rg))
		u.params = []*expr.Sym{rg}
		u.xparams = []*expr.Sym{x}
		u.mustSpecific("end1", "end2", "middle")
		u.mustDistributed("contour")

		e := expr.Exp(expr.Neg(x))
		eh := expr.Exp(expr.Neg(expr.Div(x, expr.Int(2))))
		f := expr.Div(expr.Prod(expr.Int(2), expr.Sum(e, expr.Int(-1), x)), expr.Sqr(x))
		aEnd := expr.Div(expr.Sub(expr.Int(1), e), x)
		aMid := expr.Div(expr.Prod(expr.Int(2), expr.Sub(expr.Int(1), eh)), x)
		rg2 := expr.Sqr(rg)

		u.ff = f
		u.rg2 = rg2
		u.amplitude("end1", aEnd, frac(3, 1, rg2))
		u.amplitude("end2", aEnd, frac(3, 1, rg2))
		u.amplitude("middle", aMid, frac(3, 2, rg2))
		u.amplitude("contour", f, frac(2, 1, rg2))

		u.phase("end1", "end2", e, frac(6, 1, rg2))
		u.phase("end1", "middle", eh, frac(3, 1, rg2))
		u.phase("end2", "middle", eh, frac(3, 1, rg2))
		u.phase("contour", "end1", aEnd, frac(3, 1, rg2))
		u.phase("contour", "end2", aEnd, frac(3, 1, rg2))
		u.phase("contour", "middle", aMid, frac(3, 2, rg2))
		u.phase("contour", "contour", f, frac(2, 1, rg2))
	})
}

// NewGaussianLoop returns a closed random walk with a distributed contour.
// Size: Rg.
func NewGaussianLoop() *Unit {
	return newUnit(KindGaussianLoop, closedForm, func(u *Unit) {
		x, rg := u.local("x"), u.local("Rg")
		u.expand[x.Name()] = expr.Div(expr.Prod(u.q(), rg), expr.Sqrt(expr.Int(2)))
		u.params = []*expr.Sym{rg}
		u.xparams = []*expr.Sym{x}
		u.mustDistributed("contour")

		f := expr.Div(expr.DawsonF(x), x)
		rg2 := expr.Sqr(rg)
		u.ff = f
		u.rg2 = rg2
		u.amplitude("contour", f, frac(2, 1, rg2))
		u.phase("contour", "contour", f, frac(2, 1, rg2))
	})
}

// NewThinRod returns an infinitely thin rod with ends, a midpoint and a
// distributed contour. Size: L.
func NewThinRod() *Unit {
	return newUnit(KindThinRod, closedForm, func(u *Unit) {
		x, l := u.local("x"), u.local("L")
		u.expand[x.Name()] = expr.Prod(u.q(), l)
		u.params = []*expr.Sym{l}
		u.xparams = []*expr.Sym{x}
		u.mustSpecific("end1", "end2", "middle")
		u.mustDistributed("contour")

		half := expr.Div(x, expr.Int(2))
		f := expr.Sum(expr.Div(expr.Prod(expr.Int(2), expr.Sub(expr.Cos(x), expr.Int(1))), expr.Sqr(x)), expr.Prod(expr.Int(2), expr.Six(x)))
		aEnd := expr.Six(x)
		aMid := expr.Six(half)
		l2 := expr.Sqr(l)

		u.ff = f
		u.rg2 = frac(1, 12, l2)
		u.amplitude("end1", aEnd, frac(1, 3, l2))
		u.amplitude("end2", aEnd, frac(1, 3, l2))
		u.amplitude("middle", aMid, frac(1, 12, l2))
		u.amplitude("contour", f, frac(1, 6, l2))

		u.phase("end1", "end2", sinc(x), l2)
		u.phase("end1", "middle", sinc(half), frac(1, 4, l2))
		u.phase("end2", "middle", sinc(half), frac(1, 4, l2))
		u.phase("contour", "end1", aEnd, frac(1, 3, l2))
		u.phase("contour", "end2", aEnd, frac(1, 3, l2))
		u.phase("contour", "middle", aMid, frac(1, 12, l2))
		u.phase("contour", "contour", f, frac(1, 6, l2))
	})
}

// NewThinCircle returns an infinitely thin ring with a center and a
// distributed contour. Size: R.
func NewThinCircle() *Unit {
	return newUnit(KindThinCircle, closedForm, func(u *Unit) {
		x, r := u.local("x"), u.local("R")
		u.expand[x.Name()] = expr.Prod(u.q(), r)
		u.params = []*expr.Sym{r}
		u.xparams = []*expr.Sym{x}
		u.mustSpecific("center")
		u.mustDistributed("contour")

		f := ringFormFactor(x)
		r2 := expr.Sqr(r)
		u.ff = f
		u.rg2 = r2
		u.amplitude("center", sinc(x), r2)
		u.amplitude("contour", f, frac(2, 1, r2))
		u.phase("center", "contour", sinc(x), r2)
		u.phase("contour", "contour", f, frac(2, 1, r2))
	})
}

// NewThinSphericalShell returns an infinitely thin spherical shell with a
// center and a distributed surface. Size: R.
func NewThinSphericalShell() *Unit {
	return newUnit(KindThinSphericalShell, closedForm, func(u *Unit) {
		x, r := u.local("x"), u.local("R")
		u.expand[x.Name()] = expr.Prod(u.q(), r)
		u.params = []*expr.Sym{r}
		u.xparams = []*expr.Sym{x}
		u.mustSpecific("center")
		u.mustDistributed("surface")

		ac := sinc(x)
		r2 := expr.Sqr(r)
		u.ff = expr.Sqr(ac)
		u.rg2 = r2
		u.amplitude("center", ac, r2)
		u.amplitude("surface", expr.Sqr(ac), frac(2, 1, r2))
		u.phase("center", "surface", ac, r2)
		u.phase("surface", "surface", expr.Sqr(ac), frac(2, 1, r2))
	})
}

// NewSolidSphere returns a homogeneous sphere with a center and a distributed
// surface. Size: R.
func NewSolidSphere() *Unit {
	return newUnit(KindSolidSphere, closedForm, func(u *Unit) {
		x, r := u.local("x"), u.local("R")
		u.expand[x.Name()] = expr.Prod(u.q(), r)
		u.params = []*expr.Sym{r}
		u.xparams = []*expr.Sym{x}
		u.mustSpecific("center")
		u.mustDistributed("surface")

		a := expr.Div(expr.Prod(expr.Int(3), expr.Sub(expr.Sin(x), expr.Prod(x, expr.Cos(x)))), expr.Power(x, expr.Int(3)))
		r2 := expr.Sqr(r)
		u.ff = expr.Sqr(a)
		u.rg2 = frac(3, 5, r2)
		u.amplitude("center", a, frac(3, 5, r2))
		u.amplitude("surface", expr.Prod(a, sinc(x)), frac(8, 5, r2))
		u.phase("center", "surface", sinc(x), r2)
		u.phase("surface", "surface", expr.Sqr(sinc(x)), frac(2, 1, r2))
	})
}

// NewThinDisk returns an infinitely thin disk with a center and distributed
// surface and rim references. Size: R.
func NewThinDisk() *Unit {
	return newUnit(KindThinDisk, closedForm, func(u *Unit) {
		x, r, t := u.local("x"), u.local("R"), u.local("t")
		u.expand[x.Name()] = expr.Prod(u.q(), r)
		u.params = []*expr.Sym{r}
		u.xparams = []*expr.Sym{x}
		u.mustSpecific("center")
		u.mustDistributed("surface", "rim")

		xs := expr.Prod(x, expr.Sin(t))
		top := expr.Div(expr.Pi, expr.Int(2))
		ac := expr.Integrate(expr.Div(expr.Prod(expr.Int(2), expr.BesselJ1(xs)), x), t, expr.Int(0), top)
		rim := expr.Integrate(expr.Div(expr.Prod(expr.Int(2), expr.BesselJ0(xs), expr.BesselJ1(xs)), x), t, expr.Int(0), top)
		f := expr.Div(expr.Prod(expr.Int(2), expr.Sub(x, expr.BesselJ1(expr.Prod(expr.Int(2), x)))), expr.Power(x, expr.Int(3)))
		r2 := expr.Sqr(r)

		u.ff = f
		u.rg2 = frac(1, 2, r2)
		u.amplitude("center", ac, frac(1, 2, r2))
		u.amplitude("surface", f, r2)
		u.amplitude("rim", rim, frac(3, 2, r2))

		u.phase("center", "surface", ac, frac(1, 2, r2))
		u.phase("surface", "surface", f, r2)
		u.phase("center", "rim", sinc(x), r2)
		u.phase("rim", "surface", rim, frac(3, 2, r2))
		u.phase("rim", "rim", ringFormFactor(x), frac(2, 1, r2))
	})
}

// NewSolidSphericalShell returns a homogeneous shell between radii Ri and Ro
// with a center and distributed inner, outer and combined surfaces.
func NewSolidSphericalShell() *Unit {
	return newUnit(KindSolidSphericalShell, closedForm, func(u *Unit) {
		xi, xo := u.local("xi"), u.local("xo")
		ri, ro := u.local("Ri"), u.local("Ro")
		u.expand[xi.Name()] = expr.Prod(u.q(), ri)
		u.expand[xo.Name()] = expr.Prod(u.q(), ro)
		u.params = []*expr.Sym{ro, ri}
		u.xparams = []*expr.Sym{xo, xi, ro, ri}
		u.mustSpecific("center")
		u.mustDistributed("surface", "surfacei", "surfaceo")

		ac := expr.Div(
			expr.Prod(expr.Int(3), expr.Sum(expr.Prod(xi, expr.Cos(xi)), expr.Neg(expr.Prod(xo, expr.Cos(xo))), expr.Neg(expr.Sin(xi)), expr.Sin(xo))),
			expr.Sub(expr.Power(xo, expr.Int(3)), expr.Power(xi, expr.Int(3))),
		)
		si, so := sinc(xi), sinc(xo)
		areaOut := expr.Prod(expr.Int(4), expr.Pi, expr.Sqr(ro))
		areaIn := expr.Prod(expr.Int(4), expr.Pi, expr.Sqr(ri))
		areas := expr.Sum(areaOut, areaIn)
		psiSurf := expr.Div(expr.Sum(expr.Prod(areaOut, so), expr.Prod(areaIn, si)), areas)

		i2, o2 := expr.Sqr(ri), expr.Sqr(ro)
		i3, o3 := expr.Power(ri, expr.Int(3)), expr.Power(ro, expr.Int(3))
		i4, o4 := expr.Power(ri, expr.Int(4)), expr.Power(ro, expr.Int(4))
		d := expr.Sum(i2, expr.Prod(ri, ro), o2)
		rg2 := expr.Div(expr.Prod(expr.Int(3), expr.Sum(expr.Prod(ro, i3), i4, expr.Prod(i2, o2), expr.Prod(ri, o3), o4)), expr.Prod(expr.Int(5), d))

		u.ff = expr.Sqr(ac)
		u.rg2 = rg2
		u.amplitude("center", ac, rg2)
		u.amplitude("surfacei", expr.Prod(ac, si), expr.Div(
			expr.Sum(expr.Prod(expr.Int(8), i4), expr.Prod(expr.Int(8), i3, ro), expr.Prod(expr.Int(8), i2, o2), expr.Prod(expr.Int(3), ri, o3), expr.Prod(expr.Int(3), o4)),
			expr.Prod(expr.Int(5), d)))
		u.amplitude("surfaceo", expr.Prod(ac, so), expr.Div(
			expr.Sum(expr.Prod(expr.Int(3), i4), expr.Prod(expr.Int(3), i3, ro), expr.Prod(expr.Int(8), i2, o2), expr.Prod(expr.Int(8), ri, o3), expr.Prod(expr.Int(8), o4)),
			expr.Prod(expr.Int(5), d)))
		u.amplitude("surface", expr.Prod(ac, psiSurf), expr.Div(
			expr.Sum(
				expr.Prod(expr.Int(8), ro, expr.Power(ri, expr.Int(5))), expr.Prod(expr.Int(8), expr.Power(ri, expr.Int(6))),
				expr.Prod(expr.Int(11), i4, o2), expr.Prod(expr.Int(6), i3, o3), expr.Prod(expr.Int(11), i2, o4),
				expr.Prod(expr.Int(8), ri, expr.Power(ro, expr.Int(5))), expr.Prod(expr.Int(8), expr.Power(ro, expr.Int(6))),
			),
			expr.Prod(expr.Int(5), expr.Sum(expr.Prod(ro, i3), i4, expr.Prod(expr.Int(2), i2, o2), expr.Prod(ri, o3), o4))))

		sq := expr.Sum(i2, o2)
		u.phase("center", "surface", psiSurf, expr.Div(expr.Sum(expr.Prod(areaOut, o2), expr.Prod(areaIn, i2)), areas))
		u.phase("center", "surfacei", si, i2)
		u.phase("center", "surfaceo", so, o2)
		u.phase("surfacei", "surfacei", expr.Sqr(si), expr.Prod(expr.Int(2), i2))
		u.phase("surfaceo", "surfaceo", expr.Sqr(so), expr.Prod(expr.Int(2), o2))
		u.phase("surface", "surfacei", expr.Prod(psiSurf, si), expr.Div(expr.Sum(expr.Prod(expr.Int(2), i4), expr.Prod(i2, o2), o4), sq))
		u.phase("surface", "surfaceo", expr.Prod(psiSurf, so), expr.Div(expr.Sum(i4, expr.Prod(i2, o2), expr.Prod(expr.Int(2), o4)), sq))
		u.phase("surface", "surface", expr.Sqr(psiSurf), expr.Div(expr.Prod(expr.Int(2), expr.Sum(i4, o4)), sq))
		u.phase("surfacei", "surfaceo", expr.Prod(si, so), sq)
	})
}

// NewSolidCylinder returns a homogeneous cylinder of radius R and length L
// with a center and distributed hull, ends and whole surface. Its terms are
// orientation averages.
func NewSolidCylinder() *Unit {
	return newUnit(KindSolidCylinder, closedForm, func(u *Unit) {
		x, y, t := u.local("x"), u.local("y"), u.local("t")
		r, l := u.local("R"), u.local("L")
		u.expand[x.Name()] = expr.Prod(u.q(), r)
		u.expand[y.Name()] = expr.Prod(u.q(), l)
		u.params = []*expr.Sym{r, l}
		u.xparams = []*expr.Sym{x, y, r, l}
		u.mustSpecific("center")
		u.mustDistributed("hull", "ends", "surface")

		xs := expr.Prod(x, expr.Sin(t))
		yc := expr.Div(expr.Prod(y, expr.Cos(t)), expr.Int(2))
		aq := expr.Div(expr.Prod(expr.Int(4), expr.BesselJ1(xs), expr.Csc(t), expr.Sec(t), expr.Sin(yc)), expr.Prod(x, y))
		ph := expr.Div(expr.Prod(expr.Int(2), expr.BesselJ0(xs), expr.Sin(yc)), expr.Prod(expr.Cos(t), y))
		pe := expr.Prod(expr.Cos(yc), expr.Hyp0F1Reg(expr.Int(2), frac(-1, 4, expr.Sqr(xs))))
		hullArea := expr.Prod(expr.Int(2), expr.Pi, r, l)
		endArea := expr.Prod(expr.Int(2), expr.Pi, expr.Sqr(r))
		ps := expr.Div(expr.Sum(expr.Prod(hullArea, ph), expr.Prod(endArea, pe)), expr.Sum(hullArea, endArea))

		avg := func(factors ...expr.Expr) expr.Expr {
			return expr.Integrate(expr.Prod(append([]expr.Expr{expr.Sin(t)}, factors...)...), t, cylinderCutoff, expr.Div(expr.Pi, expr.Int(2)))
		}

		r2, l2 := expr.Sqr(r), expr.Sqr(l)
		r3, l3 := expr.Power(r, expr.Int(3)), expr.Power(l, expr.Int(3))
		lr := expr.Sum(l, r)
		lr6 := expr.Prod(expr.Int(6), lr)
		centerSurf := expr.Div(expr.Sum(l3, expr.Prod(expr.Int(3), l2, r), expr.Prod(expr.Int(12), l, r2), expr.Prod(expr.Int(6), r3)), expr.Prod(expr.Int(12), lr))

		u.ff = avg(aq, aq)
		u.rg2 = frac(1, 12, expr.Sum(l2, expr.Prod(expr.Int(6), r2)))
		u.amplitude("center", avg(aq), frac(1, 12, expr.Sum(l2, expr.Prod(expr.Int(6), r2))))
		u.amplitude("ends", avg(aq, pe), frac(1, 3, expr.Sum(l2, expr.Prod(expr.Int(3), r2))))
		u.amplitude("hull", avg(aq, ph), frac(1, 6, expr.Sum(l2, expr.Prod(expr.Int(9), r2))))
		u.amplitude("surface", avg(aq, ps), expr.Div(expr.Sum(l3, expr.Prod(expr.Int(2), l2, r), expr.Prod(expr.Int(9), l, r2), expr.Prod(expr.Int(6), r3)), lr6))

		u.phase("center", "ends", avg(pe), frac(1, 4, expr.Sum(l2, expr.Prod(expr.Int(2), r2))))
		u.phase("center", "hull", avg(ph), expr.Sum(frac(1, 12, l2), r2))
		u.phase("center", "surface", avg(ps), centerSurf)
		u.phase("ends", "ends", avg(pe, pe), expr.Sum(frac(1, 2, l2), r2))
		u.phase("ends", "hull", avg(pe, ph), frac(1, 6, expr.Sum(expr.Prod(expr.Int(2), l2), expr.Prod(expr.Int(9), r2))))
		u.phase("ends", "surface", avg(pe, ps), expr.Div(expr.Sum(expr.Prod(expr.Int(2), l3), expr.Prod(expr.Int(3), l2, r), expr.Prod(expr.Int(9), l, r2), expr.Prod(expr.Int(6), r3)), lr6))
		u.phase("hull", "hull", avg(ph, ph), expr.Sum(frac(1, 6, l2), expr.Prod(expr.Int(2), r2)))
		u.phase("hull", "surface", avg(ph, ps), expr.Div(expr.Sum(l3, expr.Prod(expr.Int(2), l2, r), expr.Prod(expr.Int(12), l, r2), expr.Prod(expr.Int(9), r3)), lr6))
		u.phase("surface", "surface", avg(ps, ps), expr.Div(expr.Sum(l3, expr.Prod(expr.Int(3), l2, r), expr.Prod(expr.Int(12), l, r2), expr.Prod(expr.Int(6), r3)), lr6))
	})
}

// NewSymbolic returns a sub-unit whose terms all stay opaque symbols. Add its
// references before or after handing it to a world.
func NewSymbolic() *Unit {
	return newUnit(KindSymbolic, symbolic, nil)
}
