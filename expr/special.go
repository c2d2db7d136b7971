package expr

import (
	"math"
	"math/cmplx"
)

const (
	specialEps   = 1e-16
	specialFPMin = 1e-300
	specialIter  = 200
)

// SinIntegral returns Si(x), the integral of sin(t)/t from 0 to x.
func SinIntegral(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	if x == 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return sign * math.Pi / 2
	}
	if x <= 2 {
		sum, term := 0.0, x
		for k := 0; k < specialIter; k++ {
			s := term / float64(2*k+1)
			sum += s
			if math.Abs(s) < specialEps*math.Abs(sum) {
				break
			}
			term *= -x * x / float64((2*k+2)*(2*k+3))
		}
		return sign * sum
	}

	// Lentz evaluation of the continued fraction for E1(ix).
	b := complex(1, x)
	c := complex(1/specialFPMin, 0)
	d := 1 / b
	h := d
	for i := 1; i < specialIter; i++ {
		a := complex(-float64(i*i), 0)
		b += 2
		d = 1 / (a*d + b)
		c = b + a/c
		del := c * d
		h *= del
		if math.Abs(real(del)-1)+math.Abs(imag(del)) < specialEps {
			break
		}
	}
	h *= cmplx.Exp(complex(0, -x))
	return sign * (math.Pi/2 + imag(h))
}

func sinIntegralOverX(x float64) float64 {
	if math.Abs(x) < 1e-8 {
		return 1 - x*x/18
	}
	return SinIntegral(x) / x
}

// Dawson returns Dawson's integral F(x) = exp(-x^2) * integral of exp(t^2)
// from 0 to x, using Rybicki's method.
func Dawson(x float64) float64 {
	const (
		h    = 0.4
		a1   = 2.0 / 3.0
		a2   = 0.4
		a3   = 2.0 / 7.0
		nmax = 6
	)
	if math.Abs(x) < 0.2 {
		x2 := x * x
		return x * (1 - a1*x2*(1-a2*x2*(1-a3*x2)))
	}
	var c [nmax]float64
	for i := range c {
		t := float64(2*i+1) * h
		c[i] = math.Exp(-t * t)
	}
	xx := math.Abs(x)
	n0 := 2 * int(0.5*xx/h+0.5)
	xp := xx - float64(n0)*h
	e1 := math.Exp(2 * xp * h)
	e2 := e1 * e1
	d1 := float64(n0 + 1)
	d2 := d1 - 2
	sum := 0.0
	for i := 0; i < nmax; i++ {
		sum += c[i] * (e1/d1 + 1/(d2*e1))
		d1 += 2
		d2 -= 2
		e1 *= e2
	}
	return math.Copysign(1/math.SqrtPi*math.Exp(-xp*xp)*sum, x)
}

// Struve returns the Struve function H_nu(x) for nu = 0 or 1.
func Struve(nu int, x float64) float64 {
	if x < 0 {
		// H0 is odd, H1 is even.
		if nu == 0 {
			return -Struve(0, -x)
		}
		return Struve(1, -x)
	}
	if x == 0 {
		return 0
	}
	n := float64(nu)
	if x <= 20 {
		// sum_k (-1)^k (x/2)^(2k+nu+1) / (Gamma(k+3/2) Gamma(k+nu+3/2))
		half := x / 2
		lg1, _ := math.Lgamma(1.5)
		lg2, _ := math.Lgamma(n + 1.5)
		term := math.Exp((n+1)*math.Log(half) - lg1 - lg2)
		sum := term
		for k := 0; k < specialIter; k++ {
			kf := float64(k)
			term *= -half * half / ((kf + 1.5) * (kf + n + 1.5))
			sum += term
			if math.Abs(term) < specialEps*math.Abs(sum) {
				break
			}
		}
		return sum
	}

	// Asymptotic expansion of H_nu - Y_nu.
	t := math.Gamma(0.5) / math.Gamma(n+0.5) * math.Pow(x/2, n-1)
	sum := t
	for k := 0; k < 30; k++ {
		kf := float64(k)
		next := t * (kf + 0.5) * (n - 0.5 - kf) * 4 / (x * x)
		if math.Abs(next) >= math.Abs(t) {
			break
		}
		t = next
		sum += t
	}
	y := math.Y0(x)
	if nu == 1 {
		y = math.Y1(x)
	}
	return y + sum/math.Pi
}

// Hyp0F1Regularized returns 0F1(;a;z)/Gamma(a).
func Hyp0F1Regularized(a, z float64) float64 {
	if z < 0 && a >= 1 && a == math.Trunc(a) && a < 64 {
		// 0F1(;n+1;-x^2/4) = Gamma(n+1) (x/2)^-n Jn(x)
		n := int(a) - 1
		s := math.Sqrt(-z)
		if n == 0 {
			return math.J0(2 * s)
		}
		return math.Jn(n, 2*s) / math.Pow(s, float64(n))
	}
	lg, sg := math.Lgamma(a)
	if a <= 0 && a == math.Trunc(a) {
		// 1/Gamma vanishes at non-positive integers; start the series where it does not.
		m := int(-a) + 1
		lg, sg = math.Lgamma(a + float64(m))
		term := float64(sg) * math.Exp(-lg) * math.Pow(z, float64(m))
		for k := 1; k <= m; k++ {
			term /= float64(k)
		}
		return hypSeries(a, z, m, term)
	}
	return hypSeries(a, z, 0, float64(sg)*math.Exp(-lg))
}

// hypSeries sums z^k / (k! Gamma(a+k)) from k = start, given its first term.
func hypSeries(a, z float64, start int, term float64) float64 {
	sum := term
	for k := start; k < start+specialIter; k++ {
		term *= z / (float64(k+1) * (a + float64(k)))
		sum += term
		if math.Abs(term) <= specialEps*math.Abs(sum) {
			break
		}
	}
	return sum
}
