package field

import "errors"

var (
	// ErrBasis reports a far-field request on a purely regular expansion:
	// a regular beam carries no radiation zone.
	ErrBasis = errors.New("field: regular expansion has no far field")

	// ErrOrder reports a Set whose truncation order exceeds the order a
	// GridCache was built for.
	ErrOrder = errors.New("field: set order exceeds cache order")

	// ErrNoPoints reports an evaluation over an empty point or direction
	// list.
	ErrNoPoints = errors.New("field: no evaluation points")
)
