package moment

import (
	"math"
	"math/cmplx"

	"github.com/waveoptics/vswf/sphfn"
)

// The flux of an angular stream through the far sphere is a quadratic form
// coupling each mode to its degree and order neighbors. All degree
// couplings share the radial overlap factor √(n(n+2))/(n+1) applied to the
// cosθ and sinθ·e^{±iφ} harmonic ladders; the in-degree order couplings
// are the angular-momentum raising ladder scaled by 1/(n(n+1)).

// degreeLike couples (n,m) to (n+1,m).
func degreeLike(n, m int) float64 {
	nf := float64(n)

	return sphfn.ALadder(n, m) * math.Sqrt(nf*(nf+2)) / (nf + 1)
}

// degreeRaise couples (n,m) to (n+1,m+1).
func degreeRaise(n, m int) float64 {
	nf := float64(n)

	return sphfn.BLadderUp(n, m) * math.Sqrt(nf*(nf+2)) / (nf + 1)
}

// degreeLower couples (n,m) to (n+1,m−1).
func degreeLower(n, m int) float64 {
	nf := float64(n)

	return sphfn.BLadderUp(n, -m) * math.Sqrt(nf*(nf+2)) / (nf + 1)
}

// orderRaise couples (n,m) to (n,m+1).
func orderRaise(n, m int) float64 {
	nf, mf := float64(n), float64(m)

	return math.Sqrt((nf-mf)*(nf+mf+1)) / (nf * (nf + 1))
}

// flux holds the six flux sums of one outgoing angular stream: linear
// momentum, total angular momentum and spin, each split into the axial
// component and the complex transverse pair x+iy.
type flux struct {
	iz, jz, sz    float64
	ixy, jxy, sxy complex128
}

// accumulate sums the flux quadratic forms of the stream read through at.
// The accessor must report zero beyond its truncation order; the neighbor
// gathers of the last degree rely on that formal zero boundary.
func accumulate(at func(n, m int) (a, b complex128), nmax int) flux {
	var f flux
	for n := 1; n <= nmax; n++ {
		nf := float64(n)
		for m := -n; m <= n; m++ {
			mf := float64(m)
			a, b := at(n, m)
			aUp, bUp := at(n+1, m)
			// At m = n the order neighbor (n, n+1) lies outside the mode
			// triangle; its coupling weight is zero, so it stays at the
			// formal zero boundary instead of reaching the accessor.
			var aNext, bNext complex128
			if m < n {
				aNext, bNext = at(n, m+1)
			}
			aDiagUp, bDiagUp := at(n+1, m+1)
			aDiagDown, bDiagDown := at(n+1, m-1)

			axial := mf / (nf * (nf + 1))
			like := degreeLike(n, m)
			next := complex(orderRaise(n, m), 0)
			diagUp := complex(0, -degreeRaise(n, m))
			diagDown := complex(0, -degreeLower(n, m))

			f.iz += 2*axial*real(cmplx.Conj(a)*b) +
				2*like*(imag(cmplx.Conj(a)*aUp)+imag(cmplx.Conj(b)*bUp))
			f.sz += axial*(abs2(a)+abs2(b)) +
				2*like*(imag(cmplx.Conj(a)*bUp)+imag(cmplx.Conj(b)*aUp))
			f.jz += mf * (abs2(a) + abs2(b))

			f.ixy += next*(cmplx.Conj(aNext)*b+cmplx.Conj(bNext)*a) +
				diagUp*(cmplx.Conj(aDiagUp)*a+cmplx.Conj(bDiagUp)*b) +
				diagDown*(cmplx.Conj(a)*aDiagDown+cmplx.Conj(b)*bDiagDown)
			f.sxy += next*(cmplx.Conj(aNext)*a+cmplx.Conj(bNext)*b) +
				diagUp*(cmplx.Conj(bDiagUp)*a+cmplx.Conj(aDiagUp)*b) +
				diagDown*(cmplx.Conj(a)*bDiagDown+cmplx.Conj(b)*aDiagDown)
			f.jxy += complex(nf*(nf+1), 0) * next *
				(cmplx.Conj(aNext)*a + cmplx.Conj(bNext)*b)
		}
	}

	return f
}

// abs2 is |c|² without the square root.
func abs2(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}
