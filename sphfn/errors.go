package sphfn

import "errors"

var (
	// ErrDomain indicates an argument outside the valid domain of a kernel
	// function (negative degree, |m| > n, non-positive truncation order,
	// negative radial argument). Callers match it via errors.Is.
	ErrDomain = errors.New("sphfn: argument outside function domain")
)

// Internal panic messages for programmer errors (invalid hard-coded indices).
const (
	panicIndexDegree = "sphfn: Index: degree must satisfy n >= 1 and |m| <= n"
)
