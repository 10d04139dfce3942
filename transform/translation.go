package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/sphfn"
)

// AxialTranslation is a precomputed translation operator along the z axis.
// It holds one pair of dense blocks per azimuthal order m >= 0: A couples
// like-type multipoles (TE→TE, TM→TM), B couples cross-type ones. Negative
// orders reuse the m >= 0 blocks with the sign of B flipped. Blocks are
// rectangular, so the output order may differ from the input order.
type AxialTranslation struct {
	nmaxOut, nmaxIn int
	kz              float64
	basis           coeffs.Basis

	// a[m], b[m] have rows n' = lo(m)..nmaxOut and columns n = lo(m)..nmaxIn
	// where lo(m) = max(1, m).
	a, b []*mat.CDense
}

// NewAxialTranslation builds the operator moving an expansion of order
// nmaxIn through the signed axial displacement kz (wavenumber-normalized)
// into an expansion of order nmaxOut. The scalar radial kernel follows the
// basis tag: regular sets translate on spherical Bessel j, outgoing on
// Hankel h⁽¹⁾, incoming on h⁽²⁾.
func NewAxialTranslation(nmaxOut, nmaxIn int, kz float64, basis coeffs.Basis) (*AxialTranslation, error) {
	if nmaxOut < 1 || nmaxIn < 1 {
		return nil, fmt.Errorf("NewAxialTranslation: orders %d,%d: %w", nmaxOut, nmaxIn, ErrBadOrder)
	}
	if !basis.Valid() {
		return nil, fmt.Errorf("NewAxialTranslation: basis %d: %w", int(basis), ErrBasis)
	}

	at := &AxialTranslation{nmaxOut: nmaxOut, nmaxIn: nmaxIn, kz: kz, basis: basis}
	if kz == 0 {
		at.identityBlocks()
		return at, nil
	}
	if err := at.buildBlocks(); err != nil {
		return nil, fmt.Errorf("NewAxialTranslation: %w", err)
	}

	return at, nil
}

// Apply translates s. Input modes beyond the operator's input order read as
// zero; the result has order nmaxOut and inherits basis and travel (travel
// accounting belongs to TranslateZ, not to the raw operator).
func (at *AxialTranslation) Apply(s coeffs.Set) (coeffs.Set, error) {
	if s.Basis() != at.basis {
		return coeffs.Set{}, fmt.Errorf("Apply: set is %s, operator built for %s: %w",
			s.Basis(), at.basis, ErrBasis)
	}

	modes := sphfn.ModeCount(at.nmaxOut)
	aOut := make([]complex128, modes)
	bOut := make([]complex128, modes)

	mMax := at.nmaxIn
	if at.nmaxOut < mMax {
		mMax = at.nmaxOut
	}
	for m := -mMax; m <= mMax; m++ {
		am := m
		bSign := complex(1, 0)
		if m < 0 {
			am = -m
			bSign = -1
		}
		blockA, blockB := at.a[am], at.b[am]
		lo := am
		if lo < 1 {
			lo = 1
		}

		for np := lo; np <= at.nmaxOut; np++ {
			var accA, accB complex128
			for n := lo; n <= at.nmaxIn; n++ {
				wa := blockA.At(np-lo, n-lo)
				wb := bSign * blockB.At(np-lo, n-lo)
				a, b := s.At(n, m)
				accA += wa*a + wb*b
				accB += wb*a + wa*b
			}
			pos := sphfn.Index(np, m) - 1
			aOut[pos] = accA
			bOut[pos] = accB
		}
	}

	return s.WithVectors(aOut, bOut)
}

// identityBlocks fills the operator with per-m identity coupling.
func (at *AxialTranslation) identityBlocks() {
	mMax := at.nmaxIn
	if at.nmaxOut < mMax {
		mMax = at.nmaxOut
	}
	at.a = make([]*mat.CDense, mMax+1)
	at.b = make([]*mat.CDense, mMax+1)
	for m := 0; m <= mMax; m++ {
		lo := m
		if lo < 1 {
			lo = 1
		}
		rows, cols := at.nmaxOut-lo+1, at.nmaxIn-lo+1
		at.a[m] = mat.NewCDense(rows, cols, nil)
		at.b[m] = mat.NewCDense(rows, cols, nil)
		for i := 0; i < rows && i < cols; i++ {
			at.a[m].Set(i, i, 1)
		}
	}
}

// buildBlocks runs the scalar coaxial recurrences at an enlarged working
// order and assembles the vector A/B blocks from the scalar layers.
//
// The scalar translation entries E^m_{n',n} satisfy, with the cosθ ladder
// aₙᵐ (sphfn.ALadder),
//
//	aₙᵐ·E^m_{n',n+1} = aᵐ_{n'−1}·E^m_{n'−1,n} − aᵐ_{n'}·E^m_{n'+1,n} + aᵐ_{n−1}·E^m_{n',n−1}
//
// seeded at n = 0 by E⁰_{l,0} = (−1)ˡ·√(2l+1)·z_l(kt), and the sectoral
// step to the next azimuthal order uses the sinθ·e^{iφ} couplings
// (sphfn.BLadderUp/Down). Every advance consumes one degree off the top of
// the working range, hence the 3·N+5 margin.
func (at *AxialTranslation) buildBlocks() error {
	t := at.kz
	flip := t < 0
	if flip {
		t = -t
	}

	nBig := at.nmaxOut
	if at.nmaxIn > nBig {
		nBig = at.nmaxIn
	}
	nw := 3*nBig + 5

	kernel, err := at.radialKernel(nw, t)
	if err != nil {
		return err
	}

	mMax := at.nmaxIn
	if at.nmaxOut < mMax {
		mMax = at.nmaxOut
	}
	at.a = make([]*mat.CDense, mMax+1)
	at.b = make([]*mat.CDense, mMax+1)

	// layer[np][n] holds E^m_{np,n}; columns n < m are identically zero.
	// An entry is trusted only while np <= nw − m − n: every unit of n or m
	// reached from the seed column costs one degree off the top of np.
	if at.nmaxOut+1 > nw-mMax-at.nmaxIn {
		return fmt.Errorf("working order %d too small for %d→%d: %w",
			nw, at.nmaxIn, at.nmaxOut, ErrBadOrder)
	}
	layer := make([][]complex128, nw+1)
	for np := range layer {
		layer[np] = make([]complex128, at.nmaxIn+1)
	}

	for m := 0; m <= mMax; m++ {
		if m == 0 {
			for np := 0; np <= nw; np++ {
				sign := 1.0
				if np%2 == 1 {
					sign = -1
				}
				layer[np][0] = complex(sign*math.Sqrt(float64(2*np+1)), 0) * kernel[np]
			}
		} else {
			// Sectoral step m-1 → m from the column n = m-1.
			next := make([][]complex128, nw+1)
			for np := range next {
				next[np] = make([]complex128, at.nmaxIn+1)
			}
			den := complex(sphfn.BLadderUp(m-1, m-1), 0)
			for np := m; np <= nw-2*m; np++ {
				up := complex(sphfn.BLadderUp(np-1, m-1), 0) * layer[np-1][m-1]
				down := complex(sphfn.BLadderDown(np+1, m-1), 0) * layer[np+1][m-1]
				next[np][m] = (up + down) / den
			}
			layer = next
		}

		// Degree advance fills the remaining columns of this layer.
		for n := m; n < at.nmaxIn; n++ {
			den := complex(sphfn.ALadder(n, m), 0)
			for np := m; np <= nw-m-n-1; np++ {
				var e complex128
				if np > 0 {
					e += complex(sphfn.ALadder(np-1, m), 0) * layer[np-1][n]
				}
				e -= complex(sphfn.ALadder(np, m), 0) * layer[np+1][n]
				if n > 0 {
					e += complex(sphfn.ALadder(n-1, m), 0) * layer[np][n-1]
				}
				layer[np][n+1] = e / den
			}
		}

		at.assembleVector(m, t, flip, layer)
	}

	return nil
}

// assembleVector converts one scalar layer into the vector A/B blocks.
func (at *AxialTranslation) assembleVector(m int, t float64, flip bool, layer [][]complex128) {
	lo := m
	if lo < 1 {
		lo = 1
	}
	rows, cols := at.nmaxOut-lo+1, at.nmaxIn-lo+1
	blockA := mat.NewCDense(rows, cols, nil)
	blockB := mat.NewCDense(rows, cols, nil)

	for np := lo; np <= at.nmaxOut; np++ {
		npf := float64(np)
		for n := lo; n <= at.nmaxIn; n++ {
			nf := float64(n)
			norm := math.Sqrt(nf * (nf + 1))

			a := complex(math.Sqrt(npf*(npf+1))/norm, 0) * layer[np][n]
			a += complex(t/norm, 0) *
				(complex(sphfn.ALadder(np-1, m)*math.Sqrt((npf+1)/npf), 0)*layer[np-1][n] +
					complex(sphfn.ALadder(np, m)*math.Sqrt(npf/(npf+1)), 0)*layer[np+1][n])

			b := complex(0, float64(m)*t/(norm*math.Sqrt(npf*(npf+1)))) * layer[np][n]

			if flip && (np+n)%2 == 1 {
				a = -a
			}
			if flip && (np+n)%2 == 0 {
				b = -b
			}
			blockA.Set(np-lo, n-lo, a)
			blockB.Set(np-lo, n-lo, b)
		}
	}

	at.a[m] = blockA
	at.b[m] = blockB
}

// radialKernel evaluates the scalar radial family selected by the basis tag.
func (at *AxialTranslation) radialKernel(nmax int, x float64) ([]complex128, error) {
	switch at.basis {
	case coeffs.Outgoing:
		return sphfn.SphHankel1(nmax, x)
	case coeffs.Incoming:
		return sphfn.SphHankel2(nmax, x)
	default:
		j, err := sphfn.SphBesselJ(nmax, x)
		if err != nil {
			return nil, err
		}
		z := make([]complex128, len(j))
		for i, v := range j {
			z[i] = complex(v, 0)
		}

		return z, nil
	}
}
