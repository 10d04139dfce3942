package beams_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/waveoptics/vswf/beams"
	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/field"
	"github.com/waveoptics/vswf/sphfn"
)

// TestFromDenseVectors_SparseTable checks the dense table lands on the
// canonical linear index with unlisted modes zero.
func TestFromDenseVectors_SparseTable(t *testing.T) {
	a := []complex128{1 + 2i, 3}
	b := []complex128{-1i, 0.5}
	s, err := beams.FromDenseVectors(a, b, []int{1, 3}, []int{-1, 2})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Nmax())
	assert.Equal(t, coeffs.Regular, s.Basis())

	ga, gb := s.At(1, -1)
	assert.Equal(t, 1+2i, ga)
	assert.Equal(t, complex(0, -1), gb)
	ga, gb = s.At(3, 2)
	assert.Equal(t, complex(3, 0), ga)
	assert.Equal(t, complex(0.5, 0), gb)
	ga, gb = s.At(2, 0)
	assert.Zero(t, ga)
	assert.Zero(t, gb)
}

// TestFromDenseVectors_EmptyTable yields the empty Set.
func TestFromDenseVectors_EmptyTable(t *testing.T) {
	s, err := beams.FromDenseVectors(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Nmax())
	assert.Zero(t, s.Len())
}

// TestFromDenseVectors_Validation covers slice mismatch, domain violations
// and repeated modes.
func TestFromDenseVectors_Validation(t *testing.T) {
	_, err := beams.FromDenseVectors([]complex128{1}, nil, []int{1}, []int{0})
	assert.ErrorIs(t, err, beams.ErrLength)

	_, err = beams.FromDenseVectors([]complex128{1}, []complex128{1}, []int{0}, []int{0})
	assert.ErrorIs(t, err, beams.ErrMode)

	_, err = beams.FromDenseVectors([]complex128{1}, []complex128{1}, []int{2}, []int{3})
	assert.ErrorIs(t, err, beams.ErrMode)

	_, err = beams.FromDenseVectors(
		[]complex128{1, 2}, []complex128{1, 2}, []int{1, 1}, []int{0, 0})
	assert.ErrorIs(t, err, beams.ErrMode)
}

// TestPlaneWave_DegreePower checks the closed-form mode power of a
// truncated plane wave: 4π(2n+1) per degree, 4π·nmax(nmax+2) in total.
func TestPlaneWave_DegreePower(t *testing.T) {
	const nmax = 7
	s, err := beams.PlaneWaveZ(nmax, beams.Linear(0))
	require.NoError(t, err)

	assert.InDelta(t, 4*math.Pi*nmax*(nmax+2), s.Power(), 1e-9)

	for n := 1; n <= nmax; n++ {
		var p float64
		for m := -n; m <= n; m++ {
			a, b := s.At(n, m)
			p += real(a)*real(a) + imag(a)*imag(a) + real(b)*real(b) + imag(b)*imag(b)
		}
		assert.InDelta(t, 4*math.Pi*float64(2*n+1), p, 1e-9, "degree %d", n)
	}
}

// TestPlaneWave_AxialModes verifies that a beam along +z occupies only the
// m = ±1 modes.
func TestPlaneWave_AxialModes(t *testing.T) {
	s, err := beams.PlaneWaveZ(5, beams.Circular(1))
	require.NoError(t, err)

	for n := 1; n <= 5; n++ {
		for m := -n; m <= n; m++ {
			a, b := s.At(n, m)
			if m == 1 || m == -1 {
				continue
			}
			assert.Zero(t, a, "a at n=%d m=%d", n, m)
			assert.Zero(t, b, "b at n=%d m=%d", n, m)
		}
	}
}

// TestPlaneWave_NearFieldMatches evaluates the truncated expansion off the
// origin and compares against the closed-form wave e^{ikz}·x̂.
func TestPlaneWave_NearFieldMatches(t *testing.T) {
	const nmax = 20
	s, err := beams.PlaneWaveZ(nmax, beams.Linear(0))
	require.NoError(t, err)

	pts := []r3.Vec{
		{X: 0.3, Y: 0.2, Z: 0.5},
		{X: 1.0, Y: -0.4, Z: 0.7},
		{X: 0.1, Y: 0.1, Z: -1.2},
	}
	e, _, err := field.NearField(s, pts)
	require.NoError(t, err)

	for i, p := range pts {
		r := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		c := e[i].Cartesian(math.Acos(p.Z/r), math.Atan2(p.Y, p.X))
		want := cmplx.Exp(complex(0, p.Z))
		assert.InDelta(t, 0, cmplx.Abs(c.X-want), 1e-10, "point %d Ex", i)
		assert.InDelta(t, 0, cmplx.Abs(c.Y), 1e-10, "point %d Ey", i)
		assert.InDelta(t, 0, cmplx.Abs(c.Z), 1e-10, "point %d Ez", i)
	}
}

// TestPlaneWave_UnitPower rescales to unit mode power for any direction
// and polarization.
func TestPlaneWave_UnitPower(t *testing.T) {
	s, err := beams.PlaneWave(6, 0.6, 0.8, beams.Circular(-1), beams.WithUnitPower())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Power(), 1e-12)
}

// TestPlaneWave_Validation covers order and polarization guards.
func TestPlaneWave_Validation(t *testing.T) {
	_, err := beams.PlaneWaveZ(0, beams.Linear(0))
	assert.ErrorIs(t, err, beams.ErrOrder)

	_, err = beams.PlaneWaveZ(3, beams.Polarization{})
	assert.ErrorIs(t, err, beams.ErrPolarization)
}

// TestPlaneWave_TiltedPowerSplit checks a tilted beam fills all azimuthal
// orders of each degree while keeping the per-degree power split.
func TestPlaneWave_TiltedPowerSplit(t *testing.T) {
	const nmax = 4
	s, err := beams.PlaneWave(nmax, 0.4, 1.1, beams.Linear(0.3))
	require.NoError(t, err)

	var occupied int
	for n := 1; n <= nmax; n++ {
		var p float64
		for m := -n; m <= n; m++ {
			a, b := s.At(n, m)
			mag := real(a)*real(a) + imag(a)*imag(a) + real(b)*real(b) + imag(b)*imag(b)
			if mag > 1e-20 {
				occupied++
			}
			p += mag
		}
		assert.InDelta(t, 4*math.Pi*float64(2*n+1), p, 1e-9, "degree %d", n)
	}
	assert.Greater(t, occupied, sphfn.ModeCount(nmax)/2)
}
