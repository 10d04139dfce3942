// Package ensemble groups coefficient sets under one of three combination
// disciplines: Independent elements are evaluated separately, Coherent
// elements superpose by amplitude before any quadratic quantity is formed,
// and Incoherent elements contribute their quadratic results as a scalar
// sum. Ensembles nest: an element may itself be an ensemble, and the
// coherence rules are enforced structurally at construction time — a
// coherent group can never contain an incoherent descendant, because no
// amplitude sum exists for it.
//
// The container is generic over any coefficient-like value (see
// CoefficientLike); the concrete instantiation used across this module is
// Ensemble[coeffs.Set]. Reductions always walk elements in ascending index
// order, so repeated evaluations of the same ensemble are bit-identical.
package ensemble
