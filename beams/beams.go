package beams

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/sphfn"
)

// FromDenseVectors builds a regular Set from externally produced dense mode
// coefficients: amplitude pairs (a[i], b[i]) at (degrees[i], orders[i]).
// The truncation order is the largest listed degree; unlisted modes are
// zero. An empty table yields the empty Set. Callers holding outgoing or
// incoming amplitudes retag the result with WithBasis.
func FromDenseVectors(a, b []complex128, degrees, orders []int) (coeffs.Set, error) {
	if len(a) != len(b) || len(a) != len(degrees) || len(a) != len(orders) {
		return coeffs.Set{}, fmt.Errorf("FromDenseVectors: %d/%d amplitudes vs %d/%d modes: %w",
			len(a), len(b), len(degrees), len(orders), ErrLength)
	}

	var nmax int
	for i, n := range degrees {
		m := orders[i]
		if n < 1 || m < -n || m > n {
			return coeffs.Set{}, fmt.Errorf("FromDenseVectors: entry %d: (n=%d, m=%d): %w", i, n, m, ErrMode)
		}
		if n > nmax {
			nmax = n
		}
	}
	if nmax == 0 {
		return coeffs.FromVectors(nil, nil, coeffs.Regular)
	}

	modes := sphfn.ModeCount(nmax)
	av := make([]complex128, modes)
	bv := make([]complex128, modes)
	seen := make([]bool, modes)
	for i, n := range degrees {
		pos := sphfn.Index(n, orders[i]) - 1
		if seen[pos] {
			return coeffs.Set{}, fmt.Errorf("FromDenseVectors: entry %d: (n=%d, m=%d) repeated: %w",
				i, n, orders[i], ErrMode)
		}
		seen[pos] = true
		av[pos] = a[i]
		bv[pos] = b[i]
	}

	return coeffs.FromVectors(av, bv, coeffs.Regular)
}

// Polarization is a Jones vector on the (θ̂, φ̂) frame at the beam axis.
type Polarization struct {
	Theta, Phi complex128
}

// Linear returns the linear state at angle psi from θ̂ towards φ̂. For a
// beam along +z with phi = 0 this makes Linear(0) x-polarized and
// Linear(π/2) y-polarized.
func Linear(psi float64) Polarization {
	s, c := math.Sincos(psi)

	return Polarization{Theta: complex(c, 0), Phi: complex(s, 0)}
}

// Circular returns the circular state of the given handedness sign. A
// positive sign carries positive angular momentum along the travel axis.
func Circular(handedness int) Polarization {
	const invSqrt2 = 1 / math.Sqrt2
	ph := complex(0, invSqrt2)
	if handedness < 0 {
		ph = -ph
	}

	return Polarization{Theta: complex(invSqrt2, 0), Phi: ph}
}

type options struct {
	unitPower bool
}

// Option adjusts beam generation.
type Option func(*options)

// WithUnitPower rescales the generated set so its mode power sums to one.
func WithUnitPower() Option {
	return func(o *options) { o.unitPower = true }
}

// PlaneWave expands the plane wave travelling along (theta, phi) with the
// given polarization, truncated at degree nmax. Without WithUnitPower the
// mode power is 4π·nmax·(nmax+2)·(|Eθ|²+|Eφ|²): a plane wave carries equal
// power 4π(2n+1) in every degree, so the truncated expansion is trusted
// only within a radius growing with nmax.
func PlaneWave(nmax int, theta, phi float64, pol Polarization, opts ...Option) (coeffs.Set, error) {
	if nmax < 1 {
		return coeffs.Set{}, fmt.Errorf("PlaneWave: nmax=%d: %w", nmax, ErrOrder)
	}
	if pol.Theta == 0 && pol.Phi == 0 {
		return coeffs.Set{}, fmt.Errorf("PlaneWave: %w", ErrPolarization)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	modes := sphfn.ModeCount(nmax)
	av := make([]complex128, modes)
	bv := make([]complex128, modes)
	for n := 1; n <= nmax; n++ {
		_, yth, yph, err := sphfn.Spharm(n, theta, phi)
		if err != nil {
			return coeffs.Set{}, fmt.Errorf("PlaneWave: %w", err)
		}
		scale := complex(4*math.Pi/math.Sqrt(float64(n)*float64(n+1)), 0)
		wa := ipow(n) * scale
		wb := ipow(n-1) * scale
		for m := -n; m <= n; m++ {
			col := m + n
			pos := sphfn.Index(n, m) - 1
			av[pos] = wa * (cmplx.Conj(yph[col])*pol.Theta - cmplx.Conj(yth[col])*pol.Phi)
			bv[pos] = wb * (cmplx.Conj(yth[col])*pol.Theta + cmplx.Conj(yph[col])*pol.Phi)
		}
	}

	s, err := coeffs.FromVectors(av, bv, coeffs.Regular)
	if err != nil {
		return coeffs.Set{}, err
	}
	if o.unitPower {
		s = s.Scale(complex(1/math.Sqrt(s.Power()), 0))
	}

	return s, nil
}

// PlaneWaveZ expands a plane wave travelling along +z.
func PlaneWaveZ(nmax int, pol Polarization, opts ...Option) (coeffs.Set, error) {
	return PlaneWave(nmax, 0, 0, pol, opts...)
}

// ipow returns iᵖ for p >= 0.
func ipow(p int) complex128 {
	switch p % 4 {
	case 1:
		return complex(0, 1)
	case 2:
		return complex(-1, 0)
	case 3:
		return complex(0, -1)
	default:
		return complex(1, 0)
	}
}
