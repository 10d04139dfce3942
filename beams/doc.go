// Package beams constructs multipole coefficient sets for canonical
// illumination: dense externally produced mode tables and truncated plane
// waves.
//
// Every generator returns a regular expansion about the origin. Scattering
// operators consuming these sets are linear maps satisfying the Scatterer
// contract documented in package moment; this package never builds one.
package beams
