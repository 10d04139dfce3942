package beams

import "errors"

var (
	// ErrLength reports dense mode slices of differing lengths.
	ErrLength = errors.New("beams: mode slices differ in length")

	// ErrMode reports a (degree, order) pair outside the triangular domain,
	// or one listed twice.
	ErrMode = errors.New("beams: invalid mode")

	// ErrOrder reports a truncation order below 1.
	ErrOrder = errors.New("beams: truncation order must be at least 1")

	// ErrPolarization reports a zero Jones vector.
	ErrPolarization = errors.New("beams: zero polarization")
)
