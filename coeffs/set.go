package coeffs

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/waveoptics/vswf/sphfn"
)

// Set is a truncated VSWF expansion: two equal-length complex coefficient
// vectors (a for magnetic multipoles, b for electric multipoles) indexed by
// the combined mode index, a basis tag and the cumulative absolute axial
// displacement accumulated by translations.
//
// Set is a value type with copy-on-transform semantics: every method
// returns a fresh Set and never mutates the receiver's storage.
type Set struct {
	a, b  []complex128
	basis Basis
	absDz float64
}

// Zero returns an all-zero Set of the given truncation order and basis.
func Zero(nmax int, basis Basis) (Set, error) {
	if nmax < 1 {
		return Set{}, fmt.Errorf("Zero: nmax=%d: %w", nmax, ErrBadOrder)
	}
	n := sphfn.ModeCount(nmax)

	return Set{a: make([]complex128, n), b: make([]complex128, n), basis: basis}, nil
}

// FromVectors builds a Set from raw coefficient vectors. The vectors are
// copied, so the caller keeps ownership of its slices. The invariant
// len(a) == len(b) with a length equal to Nmax(Nmax+2) for some valid Nmax
// (or zero) is enforced here and nowhere else relied upon blindly.
func FromVectors(a, b []complex128, basis Basis) (Set, error) {
	if len(a) != len(b) {
		return Set{}, fmt.Errorf("FromVectors: len(a)=%d len(b)=%d: %w",
			len(a), len(b), ErrCoefficientLength)
	}
	if _, ok := sphfn.MaxDegree(len(a)); !ok {
		return Set{}, fmt.Errorf("FromVectors: length %d matches no truncation order: %w",
			len(a), ErrCoefficientLength)
	}

	s := Set{a: make([]complex128, len(a)), b: make([]complex128, len(b)), basis: basis}
	copy(s.a, a)
	copy(s.b, b)

	return s, nil
}

// WithVectors returns a Set carrying new coefficient vectors while keeping
// the receiver's basis tag and travel bookkeeping. Used by transformation
// layers that produce new amplitudes for the same logical beam.
func (s Set) WithVectors(a, b []complex128) (Set, error) {
	out, err := FromVectors(a, b, s.basis)
	if err != nil {
		return Set{}, err
	}
	out.absDz = s.absDz

	return out, nil
}

// WithBasis returns a copy of s carrying a different basis tag.
func (s Set) WithBasis(basis Basis) Set {
	out := s.Clone()
	out.basis = basis

	return out
}

// WithTravel returns a copy of s whose cumulative axial displacement has
// grown by |dz|. Translation operators call this; the value bounds how far
// the truncated expansion remains trustworthy.
func (s Set) WithTravel(dz float64) Set {
	out := s.Clone()
	if dz < 0 {
		dz = -dz
	}
	out.absDz += dz

	return out
}

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	out := Set{
		a:     make([]complex128, len(s.a)),
		b:     make([]complex128, len(s.b)),
		basis: s.basis,
		absDz: s.absDz,
	}
	copy(out.a, s.a)
	copy(out.b, s.b)

	return out
}

// Grow returns s zero-extended to order nmax; it never shrinks, so a value
// already at or beyond nmax comes back as a plain clone. Growth is lossless
// and needs no power accounting, which is why it carries no error.
func (s Set) Grow(nmax int) Set {
	modes := sphfn.ModeCount(nmax)
	if nmax < 1 || modes <= s.Len() {
		return s.Clone()
	}

	return s.grow(modes)
}

// Nmax returns the truncation order implied by the stored vector length.
func (s Set) Nmax() int {
	nmax, _ := sphfn.MaxDegree(len(s.a))

	return nmax
}

// Basis returns the radial-family tag.
func (s Set) Basis() Basis { return s.basis }

// AbsDz returns the cumulative absolute axial displacement.
func (s Set) AbsDz() float64 { return s.absDz }

// Len returns the stored mode count.
func (s Set) Len() int { return len(s.a) }

// Coefficients returns copies of the two coefficient vectors. Mutating the
// returned slices does not affect s.
func (s Set) Coefficients() (a, b []complex128) {
	a = make([]complex128, len(s.a))
	b = make([]complex128, len(s.b))
	copy(a, s.a)
	copy(b, s.b)

	return a, b
}

// At returns the coefficient pair of mode (n, m). Modes beyond the stored
// truncation order read as zero — the formal zero-padding boundary used by
// neighbor-gathering recurrences.
func (s Set) At(n, m int) (a, b complex128) {
	idx := sphfn.Index(n, m) - 1
	if idx >= len(s.a) {
		return 0, 0
	}

	return s.a[idx], s.b[idx]
}

// Power returns Σ(|a|² + |b|²) over both vectors.
func (s Set) Power() float64 {
	return vecPower(s.a) + vecPower(s.b)
}

// PowerAB returns the per-vector powers (Σ|a|², Σ|b|²).
func (s Set) PowerAB() (pa, pb float64) {
	return vecPower(s.a), vecPower(s.b)
}

// Scale returns s with both vectors multiplied by c. Basis and travel are
// inherited.
func (s Set) Scale(c complex128) Set {
	out := s.Clone()
	cmplxs.Scale(c, out.a)
	cmplxs.Scale(c, out.b)

	return out
}

// Add superposes two expansions amplitude-wise. The basis tags must match;
// differing truncation orders are reconciled by growing the smaller set
// (growth is always lossless).
func (s Set) Add(t Set) (Set, error) {
	if s.basis != t.basis {
		return Set{}, fmt.Errorf("Add: %s vs %s: %w", s.basis, t.basis, ErrBasisMismatch)
	}
	a, c := s, t
	if a.Len() < c.Len() {
		a = a.grow(c.Len())
	} else if c.Len() < a.Len() {
		c = c.grow(a.Len())
	}
	out := a.Clone()
	cmplxs.Add(out.a, c.a)
	cmplxs.Add(out.b, c.b)
	if c.absDz > out.absDz {
		out.absDz = c.absDz // keep the more pessimistic travel bound
	}

	return out, nil
}

// Reverse returns the expansion of the beam rotated by π about the y axis,
// i.e. the counter-propagating beam with aligned polarization. The Wigner
// matrix of that rotation is dⁿ_{m',m}(π) = (−1)^{n−m}·δ_{m',−m}, so the
// map is an exact index/sign shuffle.
func (s Set) Reverse() Set {
	out := s.Clone()
	nmax := s.Nmax()
	for n := 1; n <= nmax; n++ {
		for m := -n; m <= n; m++ {
			sign := complex(1, 0)
			if ((n-m)%2+2)%2 == 1 {
				sign = complex(-1, 0)
			}
			src := sphfn.Index(n, m) - 1
			dst := sphfn.Index(n, -m) - 1
			out.a[dst] = sign * s.a[src]
			out.b[dst] = sign * s.b[src]
		}
	}

	return out
}

// grow zero-extends to a larger mode count. Internal: callers guarantee
// modes >= len(s.a) and a valid mode count.
func (s Set) grow(modes int) Set {
	out := Set{
		a:     make([]complex128, modes),
		b:     make([]complex128, modes),
		basis: s.basis,
		absDz: s.absDz,
	}
	copy(out.a, s.a)
	copy(out.b, s.b)

	return out
}

// vecPower returns Σ|v|² without forming intermediate magnitudes.
func vecPower(v []complex128) float64 {
	var p float64
	for _, c := range v {
		p += real(c)*real(c) + imag(c)*imag(c)
	}

	return p
}
