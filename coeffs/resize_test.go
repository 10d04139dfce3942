package coeffs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveoptics/vswf/coeffs"
)

// TestResize_NoOp verifies that resizing to the current order is a clone,
// not a shared-slice alias.
func TestResize_NoOp(t *testing.T) {
	s := rampSet(t, 2, coeffs.Regular)
	out, err := s.Resize(2, nil)
	require.NoError(t, err)

	assert.Equal(t, s.Len(), out.Len())
	assert.InDelta(t, s.Power(), out.Power(), 0)

	a, _ := out.Coefficients()
	a[0] = -1
	aOrig, _ := s.Coefficients()
	assert.Equal(t, complex(1, 0), aOrig[0])
}

// TestResize_GrowLossless verifies growth zero-extends and conserves power
// exactly.
func TestResize_GrowLossless(t *testing.T) {
	s := rampSet(t, 2, coeffs.Outgoing)
	out, err := s.Resize(6, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, out.Nmax())
	assert.Equal(t, s.Power(), out.Power())
	assert.Equal(t, coeffs.Outgoing, out.Basis())

	a, b := out.At(6, -4)
	assert.Zero(t, a)
	assert.Zero(t, b)
}

// TestResize_ShrinkWithinTolerance verifies that truncating away modes that
// carry negligible power succeeds silently.
func TestResize_ShrinkWithinTolerance(t *testing.T) {
	s := rampSet(t, 2, coeffs.Regular)
	// Pad to order 4; the new modes are exact zeros, so the shrink back is
	// lossless.
	grown, err := s.Resize(4, nil)
	require.NoError(t, err)

	back, err := grown.Resize(2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, back.Nmax())
	assert.InDelta(t, s.Power(), back.Power(), 1e-12)
}

// TestResize_ShrinkPolicies verifies the three power-loss policies on a
// lossy truncation: warn returns a usable result plus the advisory, ignore
// stays silent, fail returns no result.
func TestResize_ShrinkPolicies(t *testing.T) {
	s := rampSet(t, 3, coeffs.Regular) // ramp: high modes dominate the power

	out, err := s.Resize(1, nil) // default policy is warn
	require.ErrorIs(t, err, coeffs.ErrPowerLoss)
	assert.Equal(t, 1, out.Nmax(), "warn must still deliver the truncated set")
	assert.Greater(t, out.Power(), 0.0)

	opts := coeffs.DefaultResizeOptions()
	opts.OnPowerLoss = coeffs.PowerLossIgnore
	out, err = s.Resize(1, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Nmax())

	opts.OnPowerLoss = coeffs.PowerLossFail
	_, err = s.Resize(1, &opts)
	assert.ErrorIs(t, err, coeffs.ErrPowerLoss)
}

// TestResize_BadArguments covers the argument guards.
func TestResize_BadArguments(t *testing.T) {
	s := rampSet(t, 2, coeffs.Regular)

	_, err := s.Resize(0, nil)
	assert.ErrorIs(t, err, coeffs.ErrBadOrder)

	opts := coeffs.ResizeOptions{Tolerance: 0, OnPowerLoss: coeffs.PowerLossWarn}
	_, err = s.Resize(1, &opts)
	assert.ErrorIs(t, err, coeffs.ErrBadTolerance)
}

// TestShrinkToTolerance_FindsFirstOrder verifies the ascending scan stops at
// the lowest order whose a- and b-losses both stay under tol.
func TestShrinkToTolerance_FindsFirstOrder(t *testing.T) {
	s := rampSet(t, 2, coeffs.Regular)
	grown, err := s.Resize(7, nil)
	require.NoError(t, err)

	out, err := grown.ShrinkToTolerance(1e-9)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Nmax())
	assert.InDelta(t, s.Power(), out.Power(), 1e-12)
}

// TestShrinkToTolerance_KeepsAll verifies that a set whose every order
// carries significant power survives untouched.
func TestShrinkToTolerance_KeepsAll(t *testing.T) {
	s := rampSet(t, 3, coeffs.Regular)
	out, err := s.ShrinkToTolerance(1e-12)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Nmax())

	_, err = s.ShrinkToTolerance(0)
	assert.ErrorIs(t, err, coeffs.ErrBadTolerance)
}
