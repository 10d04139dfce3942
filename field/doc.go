// Package field evaluates the electromagnetic field of a multipole
// expansion at explicit points (near field) or directions on the unit
// sphere (far field). Components come back in the local spherical frame
// (r̂, θ̂, φ̂); SphVec.Cartesian converts where a lab-frame vector is wanted.
//
// The radial family follows the Set's basis tag: regular expansions
// evaluate on spherical Bessel j, outgoing on Hankel h⁽¹⁾, incoming on
// h⁽²⁾. A far field exists only for outgoing or incoming expansions; asking
// for the far field of a purely regular Set returns ErrBasis.
//
// For repeated evaluation on a fixed grid with varying coefficients,
// GridCache precomputes the angular basis once and reuses it; its results
// are identical to the direct path, it only moves work.
package field
