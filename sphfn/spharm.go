package sphfn

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Spharm evaluates the orthonormal spherical harmonics of degree n at
// (theta, phi) for every order m = −n..n, together with the two angular
// quantities needed by vector spherical harmonics:
//
//	Y[m+n]   = Yₙᵐ(θ, φ)
//	Yth[m+n] = ∂Yₙᵐ/∂θ
//	Yph[m+n] = (i·m/sin θ)·Yₙᵐ
//
// Both derivatives are evaluated through ladder identities in the order
// (for ∂θ) and in the degree (for m/sinθ), so no division by sin θ occurs
// and the poles θ = 0, π are exact removable limits.
//
// Returns ErrDomain when n < 1.
func Spharm(n int, theta, phi float64) (y, yth, yph []complex128, err error) {
	if n < 1 {
		return nil, nil, nil, fmt.Errorf("Spharm: n=%d: %w", n, ErrDomain)
	}

	row, err := LegendreRow(n, theta)
	if err != nil {
		return nil, nil, nil, err
	}
	rowBelow, err := LegendreRow(n-1, theta)
	if err != nil {
		return nil, nil, nil, err
	}

	y = harmonicsFromRow(n, row, phi)
	below := harmonicsFromRow(n-1, rowBelow, phi)

	yth = make([]complex128, 2*n+1)
	yph = make([]complex128, 2*n+1)
	ep := cmplx.Exp(complex(0, phi))  // e^{+iφ}
	em := cmplx.Exp(complex(0, -phi)) // e^{−iφ}
	nf := float64(n)
	degRatio := math.Sqrt(float64(2*n+1) / float64(2*n-1))
	for m := -n; m <= n; m++ {
		mf := float64(m)

		// ∂θ ladder within degree n:
		// ∂θY = ½[√((n−m)(n+m+1))·e^{−iφ}·Yₙᵐ⁺¹ − √((n+m)(n−m+1))·e^{iφ}·Yₙᵐ⁻¹]
		var t complex128
		if m+1 <= n {
			t += complex(0.5*math.Sqrt((nf-mf)*(nf+mf+1)), 0) * em * y[m+1+n]
		}
		if m-1 >= -n {
			t -= complex(0.5*math.Sqrt((nf+mf)*(nf-mf+1)), 0) * ep * y[m-1+n]
		}
		yth[m+n] = t

		// m/sinθ ladder into degree n−1:
		// (m/sinθ)Y = −½√((2n+1)/(2n−1))·[√((n+m)(n+m−1))·e^{iφ}·Yₙ₋₁ᵐ⁻¹ +
		//             √((n−m)(n−m−1))·e^{−iφ}·Yₙ₋₁ᵐ⁺¹]
		var s complex128
		if lo := m - 1; lo >= -(n - 1) && lo <= n-1 {
			s += complex(math.Sqrt((nf+mf)*(nf+mf-1)), 0) * ep * below[lo+n-1]
		}
		if hi := m + 1; hi >= -(n - 1) && hi <= n-1 {
			s += complex(math.Sqrt((nf-mf)*(nf-mf-1)), 0) * em * below[hi+n-1]
		}
		yph[m+n] = complex(0, -0.5*degRatio) * s // i·(m/sinθ)Y
	}

	return y, yth, yph, nil
}

// harmonicsFromRow expands a non-negative-order Legendre row into the full
// −n..n harmonic slice using Yₙ⁻ᵐ = (−1)ᵐ·conj(Yₙᵐ).
func harmonicsFromRow(n int, row []float64, phi float64) []complex128 {
	y := make([]complex128, 2*n+1)
	for m := 0; m <= n; m++ {
		e := cmplx.Exp(complex(0, float64(m)*phi))
		y[m+n] = complex(row[m], 0) * e
		if m > 0 {
			sign := 1.0
			if m%2 == 1 {
				sign = -1.0
			}
			y[n-m] = complex(sign*row[m], 0) * cmplx.Conj(e)
		}
	}

	return y
}
