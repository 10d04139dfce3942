package sphfn

import (
	"fmt"
	"math"
)

// SphBesselJ returns the spherical Bessel functions of the first kind
// jₙ(x) for all orders n = 0..nmax.
//
// For x comfortably above nmax the upward recurrence
// jₙ₊₁ = (2n+1)/x·jₙ − jₙ₋₁ is stable and used directly. Otherwise the
// values are generated by Miller's downward recurrence from a starting
// order well above nmax and normalized against j₀ = sin(x)/x.
//
// Returns ErrDomain when nmax < 0 or x < 0.
func SphBesselJ(nmax int, x float64) ([]float64, error) {
	if nmax < 0 || x < 0 {
		return nil, fmt.Errorf("SphBesselJ: nmax=%d x=%g: %w", nmax, x, ErrDomain)
	}

	j := make([]float64, nmax+1)
	if x == 0 {
		j[0] = 1 // jₙ(0) = δₙ₀
		return j, nil
	}

	j0 := math.Sin(x) / x
	j[0] = j0
	if nmax == 0 {
		return j, nil
	}

	if x > float64(nmax)+1 {
		// Upward recurrence, stable for x > n.
		j[1] = math.Sin(x)/(x*x) - math.Cos(x)/x
		for n := 1; n < nmax; n++ {
			j[n+1] = float64(2*n+1)/x*j[n] - j[n-1]
		}

		return j, nil
	}

	// Miller's algorithm: run the recurrence downward from a padded order
	// with an arbitrary seed, then scale the whole column by j₀.
	start := nmax + 15 + int(math.Ceil(math.Sqrt(float64(40*(nmax+1)))))
	var cur, next float64 = 1e-30, 0
	for n := start; n >= 0; n-- {
		prev := float64(2*n+3)/x*cur - next
		next, cur = cur, prev
		if n <= nmax {
			j[n] = cur
		}
		// Rescale when the column grows too large to avoid overflow.
		if math.Abs(cur) > 1e250 {
			inv := 1 / cur
			cur, next = 1, next*inv
			for k := n; k <= nmax; k++ {
				j[k] *= inv
			}
		}
	}
	scale := j0 / j[0]
	for n := 0; n <= nmax; n++ {
		j[n] *= scale
	}

	return j, nil
}

// SphBesselY returns the spherical Bessel functions of the second kind
// yₙ(x) for all orders n = 0..nmax. The upward recurrence is stable for yₙ
// at every argument.
//
// Returns ErrDomain when nmax < 0 or x <= 0 (yₙ diverges at the origin).
func SphBesselY(nmax int, x float64) ([]float64, error) {
	if nmax < 0 || x <= 0 {
		return nil, fmt.Errorf("SphBesselY: nmax=%d x=%g: %w", nmax, x, ErrDomain)
	}

	y := make([]float64, nmax+1)
	y[0] = -math.Cos(x) / x
	if nmax == 0 {
		return y, nil
	}
	y[1] = -math.Cos(x)/(x*x) - math.Sin(x)/x
	for n := 1; n < nmax; n++ {
		y[n+1] = float64(2*n+1)/x*y[n] - y[n-1]
	}

	return y, nil
}

// SphHankel1 returns the spherical Hankel functions of the first kind
// hₙ⁽¹⁾(x) = jₙ(x) + i·yₙ(x) for n = 0..nmax. These are the outgoing-wave
// radial kernels.
func SphHankel1(nmax int, x float64) ([]complex128, error) {
	j, err := SphBesselJ(nmax, x)
	if err != nil {
		return nil, err
	}
	y, err := SphBesselY(nmax, x)
	if err != nil {
		return nil, err
	}
	h := make([]complex128, nmax+1)
	for n := range h {
		h[n] = complex(j[n], y[n])
	}

	return h, nil
}

// SphHankel2 returns the spherical Hankel functions of the second kind
// hₙ⁽²⁾(x) = jₙ(x) − i·yₙ(x) for n = 0..nmax. These are the incoming-wave
// radial kernels.
func SphHankel2(nmax int, x float64) ([]complex128, error) {
	j, err := SphBesselJ(nmax, x)
	if err != nil {
		return nil, err
	}
	y, err := SphBesselY(nmax, x)
	if err != nil {
		return nil, err
	}
	h := make([]complex128, nmax+1)
	for n := range h {
		h[n] = complex(j[n], -y[n])
	}

	return h, nil
}

// RadialDeriv returns the derivative zₙ'(x) from a column of radial
// function values using zₙ' = zₙ₋₁ − (n+1)/x·zₙ. The n = 0 entry uses
// z₀' = −z₁. The identity holds for jₙ, yₙ and both Hankel kinds.
func RadialDeriv(z []complex128, x float64) []complex128 {
	d := make([]complex128, len(z))
	if len(z) == 0 {
		return d
	}
	if len(z) > 1 {
		d[0] = -z[1]
	}
	for n := 1; n < len(z); n++ {
		d[n] = z[n-1] - complex(float64(n+1)/x, 0)*z[n]
	}

	return d
}

// RiccatiTerm returns [x·zₙ(x)]'/x = zₙ₋₁(x) − n·zₙ(x)/x, the radial factor
// multiplying the Bₙₘ harmonic in the electric multipole field.
func RiccatiTerm(z []complex128, x float64) []complex128 {
	t := make([]complex128, len(z))
	// t[0] stays zero: degree 0 carries no transverse field.
	for n := 1; n < len(z); n++ {
		t[n] = z[n-1] - complex(float64(n)/x, 0)*z[n]
	}

	return t
}
