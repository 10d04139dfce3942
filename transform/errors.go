package transform

import "errors"

var (
	// ErrBadRotation reports a matrix that is not a proper 3×3 rotation
	// (wrong shape, not orthogonal, or negative determinant).
	ErrBadRotation = errors.New("transform: not a proper rotation matrix")

	// ErrCardinalityMismatch reports a batch call whose element count and
	// operator count are incompatible: each must be 1 or they must be equal.
	ErrCardinalityMismatch = errors.New("transform: batch cardinality mismatch")

	// ErrBasis reports an operation applied to a Set whose radial basis tag
	// does not match the operator it was built for.
	ErrBasis = errors.New("transform: radial basis mismatch")

	// ErrBadOrder reports a non-positive truncation order.
	ErrBadOrder = errors.New("transform: truncation order must be >= 1")

	// ErrBeyondTrustedRegion is the advisory raised when a Set's cumulative
	// axial travel exceeds the characteristic radius of its truncation
	// order. With the default Warn policy it is returned alongside a valid
	// result; callers may discharge it with errors.Is.
	ErrBeyondTrustedRegion = errors.New("transform: translation beyond trusted region of truncation order")
)
