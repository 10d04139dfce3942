package sphfn

import "math"

// The ladder coefficients below are the couplings of cosθ and sinθ·e^{±iφ}
// acting on orthonormal spherical harmonics. They drive both the coaxial
// translation recurrences (transform) and the angular-momentum transfer
// sums (moment), so they live here as shared kernel functions.

// ALadder returns the cosθ coupling coefficient
//
//	aₙᵐ = √( ((n+1−m)(n+1+m)) / ((2n+1)(2n+3)) )
//
// appearing in cosθ·Yₙᵐ = aₙᵐ·Yₙ₊₁ᵐ + aₙ₋₁ᵐ·Yₙ₋₁ᵐ. It vanishes for
// n < |m|, which implements the zero boundary of every recurrence using it.
func ALadder(n, m int) float64 {
	if n < 0 || n < abs(m) {
		return 0
	}
	nf, mf := float64(n), float64(m)

	return math.Sqrt(((nf + 1 - mf) * (nf + 1 + mf)) / ((2*nf + 1) * (2*nf + 3)))
}

// BLadderUp returns the raising coupling
//
//	c⁺ₙᵐ = √( ((n+m+1)(n+m+2)) / ((2n+1)(2n+3)) )
//
// from sinθ·e^{iφ}·Yₙᵐ = −c⁺ₙᵐ·Yₙ₊₁ᵐ⁺¹ + c⁻ₙᵐ·Yₙ₋₁ᵐ⁺¹.
func BLadderUp(n, m int) float64 {
	if n < 0 || n < abs(m) {
		return 0
	}
	nf, mf := float64(n), float64(m)

	return math.Sqrt(((nf + mf + 1) * (nf + mf + 2)) / ((2*nf + 1) * (2*nf + 3)))
}

// BLadderDown returns the lowering-degree coupling
//
//	c⁻ₙᵐ = √( ((n−m)(n−m−1)) / ((2n−1)(2n+1)) )
//
// from the same sinθ·e^{iφ} identity as BLadderUp. It vanishes whenever the
// target degree n−1 cannot hold order m+1.
func BLadderDown(n, m int) float64 {
	if n < 1 || n-m < 1 {
		return 0
	}
	nf, mf := float64(n), float64(m)

	return math.Sqrt(((nf - mf) * (nf - mf - 1)) / ((2*nf - 1) * (2*nf + 1)))
}

// abs is the integer absolute value.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
