// Package sphfn provides the special-function kernel for vector spherical
// wave function (VSWF) expansions.
//
// The sphfn package provides:
//
//   - The linear mode index bijection idx(n,m) = n(n+1)+m and the
//     truncation-order ↔ size-parameter maps (Wiscombe criterion).
//   - Orthonormalized associated Legendre rows and spherical harmonics with
//     pole-safe angular derivatives.
//   - Spherical Bessel and Hankel functions of the first and second kind,
//     with derivative helpers.
//   - Wigner small-d rotation-matrix entries.
//   - The angular-momentum ladder coefficients shared by the translation and
//     moment recurrences.
//
// Everything in this package is a pure function of its arguments: no state,
// no allocation beyond the returned slices, deterministic for a given input.
// Higher layers (coeffs, transform, field, moment) compose these kernels;
// nothing here knows about coefficient sets or ensembles.
package sphfn
