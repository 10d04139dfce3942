package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/sphfn"
)

// TranslateZ moves s along the beam axis by the signed displacement z
// (wavenumber-normalized). The output order is max(current, requestedNmax);
// pass requestedNmax = 0 to keep the current order. The Set's cumulative
// travel grows by |z|; once it exceeds the characteristic radius of the
// output order (sphfn.NmaxToKa) the trusted-region advisory fires, handled
// per the selected AdvisoryPolicy. The built operator is returned for reuse
// on further Sets of the same order, basis and displacement.
func TranslateZ(s coeffs.Set, z float64, requestedNmax int, opts ...Option) (coeffs.Set, *AxialTranslation, error) {
	o := buildOptions(opts)

	nmaxOut := s.Nmax()
	if requestedNmax > nmaxOut {
		nmaxOut = requestedNmax
	}
	if nmaxOut < 1 {
		return coeffs.Set{}, nil, fmt.Errorf("TranslateZ: empty set: %w", ErrBadOrder)
	}

	at, err := NewAxialTranslation(nmaxOut, s.Nmax(), z, s.Basis())
	if err != nil {
		return coeffs.Set{}, nil, fmt.Errorf("TranslateZ: %w", err)
	}
	out, err := at.Apply(s)
	if err != nil {
		return coeffs.Set{}, nil, fmt.Errorf("TranslateZ: %w", err)
	}
	out = out.WithTravel(z)

	if trusted := sphfn.NmaxToKa(out.Nmax()); out.AbsDz() > trusted {
		switch o.advisory {
		case AdvisoryIgnore:
		case AdvisoryFail:
			return coeffs.Set{}, nil, fmt.Errorf("TranslateZ: travel %.3g exceeds trusted radius %.3g: %w",
				out.AbsDz(), trusted, ErrBeyondTrustedRegion)
		default:
			return out, at, fmt.Errorf("TranslateZ: travel %.3g exceeds trusted radius %.3g: %w",
				out.AbsDz(), trusted, ErrBeyondTrustedRegion)
		}
	}

	return out, at, nil
}

// Translate moves s by an arbitrary displacement p: the displacement axis is
// rotated onto z at the current order, the axial step runs there, and the
// inverse rotation restores the frame at the output order. Trusted-region
// handling matches TranslateZ.
func Translate(s coeffs.Set, p r3.Vec, requestedNmax int, opts ...Option) (coeffs.Set, error) {
	r := r3.Norm(p)
	if r == 0 {
		nmaxOut := s.Nmax()
		if requestedNmax > nmaxOut {
			nmaxOut = requestedNmax
		}
		out, err := s.Resize(nmaxOut, nil)
		if err != nil {
			return coeffs.Set{}, fmt.Errorf("Translate: %w", err)
		}

		return out, nil
	}

	theta := math.Acos(p.Z / r)
	phi := math.Atan2(p.Y, p.X)

	// Q maps the displacement direction onto +z.
	var q mat.Dense
	q.Mul(RotY(-theta), RotZ(-phi))
	rot, err := NewRotation(s.Nmax(), &q)
	if err != nil {
		return coeffs.Set{}, fmt.Errorf("Translate: %w", err)
	}

	aligned, err := rot.Apply(s)
	if err != nil {
		return coeffs.Set{}, fmt.Errorf("Translate: %w", err)
	}

	shifted, _, advisory := TranslateZ(aligned, r, requestedNmax, opts...)
	if advisory != nil && shifted.Len() == 0 {
		return coeffs.Set{}, advisory
	}

	out, err := rot.Inverse().Apply(shifted)
	if err != nil {
		return coeffs.Set{}, fmt.Errorf("Translate: %w", err)
	}

	return out, advisory
}

// Apply performs a rigid motion: rotation by r strictly before translation
// by p. Either part may be skipped with a nil matrix or a zero displacement.
func Apply(s coeffs.Set, r mat.Matrix, p r3.Vec, requestedNmax int, opts ...Option) (coeffs.Set, error) {
	out := s
	if r != nil {
		rot, err := NewRotation(s.Nmax(), r)
		if err != nil {
			return coeffs.Set{}, fmt.Errorf("Apply: %w", err)
		}
		if out, err = rot.Apply(out); err != nil {
			return coeffs.Set{}, fmt.Errorf("Apply: %w", err)
		}
	}

	return Translate(out, p, requestedNmax, opts...)
}
