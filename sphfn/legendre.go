package sphfn

import (
	"fmt"
	"math"
)

// invSqrt4Pi is the orthonormalized P̄₀⁰, i.e. 1/√(4π).
const invSqrt4Pi = 0.28209479177387814

// LegendreRow returns the orthonormalized associated Legendre functions
// P̄ₙᵐ(cos θ) for a single degree n and all orders m = 0..n, normalized so
// that Yₙᵐ(θ, φ) = P̄ₙᵐ(cos θ)·e^{imφ} is an orthonormal spherical harmonic.
// The Condon–Shortley phase is included.
//
// The row is assembled column-wise: for each order m the sectoral value
// P̄ₘᵐ is built by the sectoral recurrence and then raised to degree n with
// the three-term recurrence in degree. Both recurrences act on the fully
// normalized functions and are stable upward.
//
// Returns ErrDomain when n < 0.
func LegendreRow(n int, theta float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("LegendreRow: n=%d: %w", n, ErrDomain)
	}

	st, ct := math.Sincos(theta)
	row := make([]float64, n+1)

	pmm := invSqrt4Pi // P̄₀⁰
	for m := 0; m <= n; m++ {
		row[m] = legendreRaise(n, m, pmm, ct)
		// Sectoral step P̄ₘᵐ → P̄ₘ₊₁ᵐ⁺¹; the minus carries Condon–Shortley.
		pmm *= -math.Sqrt(float64(2*m+3)/float64(2*m+2)) * st
	}

	return row, nil
}

// legendreRaise lifts the sectoral value P̄ₘᵐ to degree n at fixed order m
// via the normalized three-term recurrence
//
//	P̄ₗᵐ = √((4l²−1)/(l²−m²)) · [cosθ·P̄ₗ₋₁ᵐ − √(((l−1)²−m²)/(4(l−1)²−1))·P̄ₗ₋₂ᵐ]
func legendreRaise(n, m int, pmm, ct float64) float64 {
	if n == m {
		return pmm
	}
	prev := pmm                                   // P̄ₘᵐ
	cur := math.Sqrt(float64(2*m+3)) * ct * prev  // P̄ₘ₊₁ᵐ
	for l := m + 2; l <= n; l++ {
		lf, mf := float64(l), float64(m)
		c := math.Sqrt((4*lf*lf - 1) / (lf*lf - mf*mf))
		d := math.Sqrt(((lf-1)*(lf-1) - mf*mf) / (4*(lf-1)*(lf-1) - 1))
		cur, prev = c*(ct*cur-d*prev), cur
	}

	return cur
}
