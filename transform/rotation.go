package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/sphfn"
)

// Rotation is a precomputed rotation operator for multipole expansions. It
// stores one dense Wigner-D block per degree; blocks are grown lazily when a
// higher-order Set is applied, so the same operator serves beams of any
// truncation order. Growth mutates the receiver, so a *Rotation must not be
// shared across goroutines without external locking.
type Rotation struct {
	alpha, beta, gamma float64

	// blocks[n-1] is the (2n+1)×(2n+1) block for degree n; row index is
	// m'+n, column index is m+n.
	blocks []*mat.CDense
}

// NewRotation builds the rotation operator for the proper rotation matrix r,
// with blocks precomputed up to degree nmax. The same TE and TM coefficient
// vectors transform with the same blocks, so one operator covers both.
func NewRotation(nmax int, r mat.Matrix) (*Rotation, error) {
	if nmax < 1 {
		return nil, fmt.Errorf("NewRotation: nmax=%d: %w", nmax, ErrBadOrder)
	}
	alpha, beta, gamma, err := eulerZYZ(r)
	if err != nil {
		return nil, fmt.Errorf("NewRotation: %w", err)
	}

	rot := &Rotation{alpha: alpha, beta: beta, gamma: gamma}
	if err = rot.extend(nmax); err != nil {
		return nil, fmt.Errorf("NewRotation: %w", err)
	}

	return rot, nil
}

// Inverse returns the operator of the inverse rotation. Blocks are rebuilt
// from the inverse Euler angles rather than conjugated in place, so the
// receiver is untouched.
func (rot *Rotation) Inverse() *Rotation {
	// (Rz(α)Ry(β)Rz(γ))⁻¹ = Rz(−γ)Ry(−β)Rz(−α).
	return &Rotation{alpha: -rot.gamma, beta: -rot.beta, gamma: -rot.alpha}
}

// Apply rotates s, returning a new Set of the same order, basis and travel.
func (rot *Rotation) Apply(s coeffs.Set) (coeffs.Set, error) {
	nmax := s.Nmax()
	if nmax == 0 {
		return s.Clone(), nil
	}
	if err := rot.extend(nmax); err != nil {
		return coeffs.Set{}, fmt.Errorf("Apply: %w", err)
	}

	modes := sphfn.ModeCount(nmax)
	aOut := make([]complex128, modes)
	bOut := make([]complex128, modes)
	for n := 1; n <= nmax; n++ {
		d := rot.blocks[n-1]
		for mp := -n; mp <= n; mp++ {
			var accA, accB complex128
			for m := -n; m <= n; m++ {
				w := d.At(mp+n, m+n)
				if w == 0 {
					continue
				}
				a, b := s.At(n, m)
				accA += w * a
				accB += w * b
			}
			pos := sphfn.Index(n, mp) - 1
			aOut[pos] = accA
			bOut[pos] = accB
		}
	}

	return s.WithVectors(aOut, bOut)
}

// extend grows the block list through degree nmax.
func (rot *Rotation) extend(nmax int) error {
	for n := len(rot.blocks) + 1; n <= nmax; n++ {
		d := mat.NewCDense(2*n+1, 2*n+1, nil)
		for mp := -n; mp <= n; mp++ {
			phase := cmplx.Exp(complex(0, -float64(mp)*rot.alpha))
			for m := -n; m <= n; m++ {
				little, err := sphfn.WignerLittleD(n, mp, m, rot.beta)
				if err != nil {
					return err
				}
				d.Set(mp+n, m+n,
					phase*complex(little, 0)*cmplx.Exp(complex(0, -float64(m)*rot.gamma)))
			}
		}
		rot.blocks = append(rot.blocks, d)
	}

	return nil
}

// Rotate applies a batch of rotation matrices to a batch of Sets. The two
// counts must each be 1 or equal; a single Set fans out across all matrices
// and a single matrix covers all Sets. Each output is first grown (lossless)
// to max(its order, requestedNmax); pass requestedNmax = 0 to keep current
// orders. Rotation itself conserves power exactly, so no power check is run.
func Rotate(sets []coeffs.Set, rs []mat.Matrix, requestedNmax int) ([]coeffs.Set, error) {
	if len(sets) == 0 || len(rs) == 0 ||
		(len(sets) != len(rs) && len(sets) != 1 && len(rs) != 1) {
		return nil, fmt.Errorf("Rotate: %d sets vs %d rotations: %w",
			len(sets), len(rs), ErrCardinalityMismatch)
	}

	count := len(sets)
	if len(rs) > count {
		count = len(rs)
	}
	out := make([]coeffs.Set, count)

	var shared *Rotation
	for i := 0; i < count; i++ {
		s := sets[min(i, len(sets)-1)]
		if requestedNmax > s.Nmax() {
			grown, err := s.Resize(requestedNmax, nil)
			if err != nil {
				return nil, fmt.Errorf("Rotate: %w", err)
			}
			s = grown
		}

		rot := shared
		if rot == nil {
			var err error
			if rot, err = NewRotation(s.Nmax(), rs[min(i, len(rs)-1)]); err != nil {
				return nil, err
			}
			if len(rs) == 1 {
				shared = rot
			}
		}

		rotated, err := rot.Apply(s)
		if err != nil {
			return nil, err
		}
		out[i] = rotated
	}

	return out, nil
}

// eulerZYZ factors a proper rotation matrix as Rz(α)·Ry(β)·Rz(γ).
func eulerZYZ(r mat.Matrix) (alpha, beta, gamma float64, err error) {
	if err = checkRotation(r); err != nil {
		return 0, 0, 0, err
	}

	c := r.At(2, 2)
	switch {
	case c > 1:
		c = 1
	case c < -1:
		c = -1
	}
	beta = math.Acos(c)

	const degenerate = 1e-9
	switch {
	case beta < degenerate:
		// Pure z rotation: α and γ are indistinct, fold into α.
		return math.Atan2(r.At(1, 0), r.At(0, 0)), 0, 0, nil
	case math.Pi-beta < degenerate:
		return math.Atan2(-r.At(1, 0), r.At(1, 1)), math.Pi, 0, nil
	}

	alpha = math.Atan2(r.At(1, 2), r.At(0, 2))
	gamma = math.Atan2(r.At(2, 1), -r.At(2, 0))

	return alpha, beta, gamma, nil
}

// checkRotation verifies shape, orthogonality and orientation.
func checkRotation(r mat.Matrix) error {
	rows, cols := r.Dims()
	if rows != 3 || cols != 3 {
		return fmt.Errorf("%dx%d matrix: %w", rows, cols, ErrBadRotation)
	}

	const tol = 1e-9
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var dot float64
			for k := 0; k < 3; k++ {
				dot += r.At(k, i) * r.At(k, j)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > tol {
				return fmt.Errorf("columns %d,%d not orthonormal: %w", i, j, ErrBadRotation)
			}
		}
	}

	det := r.At(0, 0)*(r.At(1, 1)*r.At(2, 2)-r.At(1, 2)*r.At(2, 1)) -
		r.At(0, 1)*(r.At(1, 0)*r.At(2, 2)-r.At(1, 2)*r.At(2, 0)) +
		r.At(0, 2)*(r.At(1, 0)*r.At(2, 1)-r.At(1, 1)*r.At(2, 0))
	if det < 0 {
		return fmt.Errorf("determinant %.3f: %w", det, ErrBadRotation)
	}

	return nil
}

// RotY returns the rotation matrix about the y axis by ang radians.
func RotY(ang float64) *mat.Dense {
	c, s := math.Cos(ang), math.Sin(ang)

	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the rotation matrix about the z axis by ang radians.
func RotZ(ang float64) *mat.Dense {
	c, s := math.Cos(ang), math.Sin(ang)

	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}
