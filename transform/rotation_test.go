package transform_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/sphfn"
	"github.com/waveoptics/vswf/transform"
)

// testSet builds a deterministic dense Set of order nmax with distinct
// complex amplitudes in every mode of both vectors.
func testSet(t *testing.T, nmax int, basis coeffs.Basis) coeffs.Set {
	t.Helper()
	modes := sphfn.ModeCount(nmax)
	a := make([]complex128, modes)
	b := make([]complex128, modes)
	for i := range a {
		f := float64(i + 1)
		a[i] = complex(math.Sin(f)/f, math.Cos(2*f)/f)
		b[i] = complex(math.Cos(3*f)/(f+1), math.Sin(f)/(f+1))
	}
	s, err := coeffs.FromVectors(a, b, basis)
	require.NoError(t, err)

	return s
}

// assertSetsClose compares two Sets mode by mode up to want's order.
func assertSetsClose(t *testing.T, want, got coeffs.Set, tol float64) {
	t.Helper()
	for n := 1; n <= want.Nmax(); n++ {
		for m := -n; m <= n; m++ {
			aw, bw := want.At(n, m)
			ag, bg := got.At(n, m)
			assert.InDelta(t, real(aw), real(ag), tol, "a(%d,%d) real", n, m)
			assert.InDelta(t, imag(aw), imag(ag), tol, "a(%d,%d) imag", n, m)
			assert.InDelta(t, real(bw), real(bg), tol, "b(%d,%d) real", n, m)
			assert.InDelta(t, imag(bw), imag(bg), tol, "b(%d,%d) imag", n, m)
		}
	}
}

// generalRotation is a fixed non-degenerate test rotation.
func generalRotation() mat.Matrix {
	var r mat.Dense
	r.Mul(transform.RotZ(0.7), transform.RotY(1.1))
	var rr mat.Dense
	rr.Mul(&r, transform.RotZ(-0.4))

	return &rr
}

// TestRotation_PowerConserved verifies that rotation is power-exact for a
// dense set: the Wigner blocks are unitary degree by degree.
func TestRotation_PowerConserved(t *testing.T) {
	s := testSet(t, 5, coeffs.Regular)
	rot, err := transform.NewRotation(5, generalRotation())
	require.NoError(t, err)

	out, err := rot.Apply(s)
	require.NoError(t, err)
	assert.InDelta(t, s.Power(), out.Power(), 1e-10)
	assert.Equal(t, s.Nmax(), out.Nmax())
	assert.Equal(t, s.Basis(), out.Basis())
}

// TestRotation_RoundTrip verifies the inverse rotation restores every mode.
func TestRotation_RoundTrip(t *testing.T) {
	s := testSet(t, 4, coeffs.Outgoing)
	rot, err := transform.NewRotation(4, generalRotation())
	require.NoError(t, err)

	fwd, err := rot.Apply(s)
	require.NoError(t, err)
	back, err := rot.Inverse().Apply(fwd)
	require.NoError(t, err)

	assertSetsClose(t, s, back, 1e-10)
}

// TestRotation_AboutZ verifies the closed form for a pure axial rotation:
// each mode picks up the phase e^{−imφ}.
func TestRotation_AboutZ(t *testing.T) {
	const phi = 0.9
	s := testSet(t, 3, coeffs.Regular)
	rot, err := transform.NewRotation(3, transform.RotZ(phi))
	require.NoError(t, err)

	out, err := rot.Apply(s)
	require.NoError(t, err)
	for n := 1; n <= 3; n++ {
		for m := -n; m <= n; m++ {
			aw, _ := s.At(n, m)
			want := aw * cmplx.Exp(complex(0, -float64(m)*phi))
			got, _ := out.At(n, m)
			assert.InDelta(t, real(want), real(got), 1e-12)
			assert.InDelta(t, imag(want), imag(got), 1e-12)
		}
	}
}

// TestRotate_Batch covers the 1-or-equal broadcasting rules.
func TestRotate_Batch(t *testing.T) {
	s := testSet(t, 2, coeffs.Regular)
	rs := []mat.Matrix{transform.RotY(0.3), transform.RotY(0.6), transform.RotY(0.9)}

	// One set fans out across three rotations.
	out, err := transform.Rotate([]coeffs.Set{s}, rs, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, o := range out {
		assert.InDelta(t, s.Power(), o.Power(), 1e-10)
	}

	// One rotation covers three sets, with requested growth.
	out, err = transform.Rotate([]coeffs.Set{s, s, s}, rs[:1], 4)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 4, out[0].Nmax())
}

// TestRotate_CardinalityMismatch verifies that three sets against two
// rotations are rejected with both counts reported.
func TestRotate_CardinalityMismatch(t *testing.T) {
	s := testSet(t, 1, coeffs.Regular)
	rs := []mat.Matrix{transform.RotY(0.3), transform.RotY(0.6)}

	_, err := transform.Rotate([]coeffs.Set{s, s, s}, rs, 0)
	require.ErrorIs(t, err, transform.ErrCardinalityMismatch)
	assert.Contains(t, err.Error(), "3 sets")
	assert.Contains(t, err.Error(), "2 rotations")
}

// TestNewRotation_RejectsImproper verifies shape and orthonormality guards.
func TestNewRotation_RejectsImproper(t *testing.T) {
	_, err := transform.NewRotation(2, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, transform.ErrBadRotation)

	// A reflection: orthonormal but determinant −1.
	reflect := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, -1})
	_, err = transform.NewRotation(2, reflect)
	assert.ErrorIs(t, err, transform.ErrBadRotation)

	scaled := mat.NewDense(3, 3, []float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
	_, err = transform.NewRotation(2, scaled)
	assert.ErrorIs(t, err, transform.ErrBadRotation)
}
