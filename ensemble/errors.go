package ensemble

import "errors"

var (
	// ErrKind reports an unknown combination kind.
	ErrKind = errors.New("ensemble: unknown kind")

	// ErrEmpty reports a construction or reduction over zero elements.
	ErrEmpty = errors.New("ensemble: empty ensemble")

	// ErrCoherentContainsIncoherent reports the forbidden nesting: a
	// coherent group has no amplitude sum once any descendant combines
	// incoherently.
	ErrCoherentContainsIncoherent = errors.New("ensemble: coherent ensemble contains incoherent descendant")

	// ErrIndex reports an element index outside [0, Len).
	ErrIndex = errors.New("ensemble: element index out of range")

	// ErrNotLeaf reports a leaf operation applied to a nested sub-ensemble.
	ErrNotLeaf = errors.New("ensemble: element is a nested ensemble, not a leaf")

	// ErrNmax reports an assignment whose truncation order exceeds the
	// ensemble's.
	ErrNmax = errors.New("ensemble: assigned element exceeds ensemble truncation order")
)
