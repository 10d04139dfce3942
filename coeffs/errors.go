package coeffs

import "errors"

// Sentinel error set for the coeffs package. Fatal sentinels carry the
// offending dimensions in the wrap message; ErrPowerLoss is the package's
// only recoverable advisory and is returned alongside a valid result when
// the caller selected the warning policy.

var (
	// ErrCoefficientLength indicates malformed coefficient vectors: the two
	// vectors differ in length, or their common length matches no valid
	// truncation order. Always fatal.
	ErrCoefficientLength = errors.New("coeffs: malformed coefficient vectors")

	// ErrBasisMismatch indicates an operation combining sets whose basis
	// tags differ (amplitudes in different radial families cannot be
	// superposed). Always fatal.
	ErrBasisMismatch = errors.New("coeffs: basis tags differ")

	// ErrBadOrder indicates a requested truncation order below 1.
	ErrBadOrder = errors.New("coeffs: truncation order must be at least 1")

	// ErrBadTolerance indicates a non-positive power tolerance.
	ErrBadTolerance = errors.New("coeffs: tolerance must be positive")

	// ErrPowerLoss is the truncation advisory: shrinking discarded more
	// relative power than the tolerance allows. Under PowerLossWarn the
	// error is returned together with a valid truncated Set; under
	// PowerLossFail it is fatal. The wrap message carries the computed
	// relative loss.
	ErrPowerLoss = errors.New("coeffs: truncation power loss exceeds tolerance")
)
