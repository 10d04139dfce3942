// Package coeffs defines the coefficient container for truncated vector
// spherical wave function expansions.
//
// The coeffs package provides:
//
//   - Set, a value type holding the two equal-length complex coefficient
//     vectors (a, b) of an expansion, linearly indexed by the combined mode
//     index idx(n,m) = n(n+1)+m for degrees n ≥ 1.
//   - Basis, the closed tag {Regular, Outgoing, Incoming} selecting the
//     radial special-function family and governing downstream validity.
//   - Truncation-order resizing with power bookkeeping: growth zero-extends
//     and is lossless, shrinking truncates and checks the relative power
//     loss against a caller-selectable policy.
//   - ShrinkToTolerance, returning the first truncation order whose power
//     loss stays under a tolerance.
//
// Every operation returns a new Set; callers never observe mutation of a
// value they passed in. A Set owns no external resources — its lifetime is
// plain value lifetime, and the persistable state is exactly the tuple
// (a, b, Nmax, basis).
package coeffs
