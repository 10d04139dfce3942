// Package transform rigidly moves multipole expansions: rotation through
// per-degree Wigner-D blocks and translation along (or off) the beam axis
// through coaxial addition-theorem recurrences.
//
// Both operators act on coeffs.Set values and return new Sets; inputs are
// never mutated. Rotation is exact (a unitary map degree by degree), so no
// power accounting is attached to it. Translation is exact only in the
// infinite-order limit; the package tracks the cumulative axial travel of
// each Set and raises a recoverable ErrBeyondTrustedRegion advisory once
// the travel leaves the region where the stored truncation order is known
// to represent the beam faithfully.
//
// Operators are precomputed values (*Rotation, *AxialTranslation) so that a
// caller moving many beams through the same displacement pays the recurrence
// cost once. The convenience functions Rotate, TranslateZ, Translate and
// Apply build the operator, apply it and return it where reuse is likely.
package transform
