package moment

import "errors"

var (
	// ErrBasis reports a pair that cannot form a scattering configuration:
	// the incident expansion must be regular and the scattered one outgoing.
	ErrBasis = errors.New("moment: invalid incident/scattered basis pairing")

	// ErrCardinality reports paired ensembles whose element structure
	// differs.
	ErrCardinality = errors.New("moment: paired ensembles differ in structure")

	// ErrKind reports paired ensembles under different combination kinds.
	ErrKind = errors.New("moment: paired ensembles differ in kind")
)
