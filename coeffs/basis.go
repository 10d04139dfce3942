package coeffs

// Basis is the closed radial-family tag of an expansion.
//
//   - Regular  — spherical Bessel jₙ; finite everywhere, no far field.
//   - Outgoing — spherical Hankel hₙ⁽¹⁾; radiating waves.
//   - Incoming — spherical Hankel hₙ⁽²⁾; converging waves.
//
// Every consumer of the tag (field evaluation, translation-kernel choice)
// switches exhaustively over these three values.
type Basis int

const (
	// Regular tags an expansion over spherical Bessel functions jₙ.
	Regular Basis = iota

	// Outgoing tags an expansion over spherical Hankel functions hₙ⁽¹⁾.
	Outgoing

	// Incoming tags an expansion over spherical Hankel functions hₙ⁽²⁾.
	Incoming
)

// Valid reports whether b is one of the three closed variants.
func (b Basis) Valid() bool {
	return b == Regular || b == Outgoing || b == Incoming
}

// String returns the canonical lower-case tag name.
func (b Basis) String() string {
	switch b {
	case Regular:
		return "regular"
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	default:
		return "invalid"
	}
}
