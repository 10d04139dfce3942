package ensemble

import "fmt"

// Kind selects how an ensemble's elements combine.
type Kind int

const (
	// Independent elements are evaluated one by one; results stay per
	// element.
	Independent Kind = iota

	// Coherent elements superpose by complex amplitude before quadratic
	// quantities are formed.
	Coherent

	// Incoherent elements combine after the quadratic step, as a scalar
	// sum of per-element results.
	Incoherent
)

// Valid reports whether k is one of the three defined kinds.
func (k Kind) Valid() bool {
	return k == Independent || k == Coherent || k == Incoherent
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Independent:
		return "independent"
	case Coherent:
		return "coherent"
	case Incoherent:
		return "incoherent"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps the lower-case kind names back to their values.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "independent":
		return Independent, nil
	case "coherent":
		return Coherent, nil
	case "incoherent":
		return Incoherent, nil
	default:
		return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrKind)
	}
}
