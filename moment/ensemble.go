package moment

import (
	"fmt"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/ensemble"
)

// ForceTorqueEnsemble evaluates a paired incident/scattered ensemble. The
// two trees must mirror each other in kind and element structure. Coherent
// pairs superpose amplitudes first and yield a single Moments; incoherent
// pairs evaluate per element and sum the resulting scalars into one;
// independent pairs return one Moments per element, ascending index order.
func ForceTorqueEnsemble(inc, scat *ensemble.Ensemble[coeffs.Set]) ([]Moments, error) {
	if inc.Kind() != scat.Kind() {
		return nil, fmt.Errorf("ForceTorqueEnsemble: %s vs %s: %w", inc.Kind(), scat.Kind(), ErrKind)
	}

	switch inc.Kind() {
	case ensemble.Coherent:
		m, err := pairSum(inc, scat)
		if err != nil {
			return nil, err
		}

		return []Moments{m}, nil

	case ensemble.Incoherent:
		parts, err := pairElements(inc, scat)
		if err != nil {
			return nil, err
		}
		var total Moments
		for _, p := range parts {
			total = total.add(p)
		}

		return []Moments{total}, nil

	default:
		return pairElements(inc, scat)
	}
}

// pairSum reduces both trees coherently and evaluates the single pair.
func pairSum(inc, scat *ensemble.Ensemble[coeffs.Set]) (Moments, error) {
	si, err := inc.Sum()
	if err != nil {
		return Moments{}, fmt.Errorf("moment: incident: %w", err)
	}
	sc, err := scat.Sum()
	if err != nil {
		return Moments{}, fmt.Errorf("moment: scattered: %w", err)
	}
	f, tq, sp, err := ForceTorque(si, sc)
	if err != nil {
		return Moments{}, err
	}

	return Moments{Force: f, Torque: tq, Spin: sp}, nil
}

// pairElements walks both trees in lockstep and evaluates each leaf pair,
// recursing through mirrored sub-ensembles.
func pairElements(inc, scat *ensemble.Ensemble[coeffs.Set]) ([]Moments, error) {
	if inc.Len() != scat.Len() {
		return nil, fmt.Errorf("pairElements: %d vs %d elements: %w", inc.Len(), scat.Len(), ErrCardinality)
	}

	var out []Moments
	for i := 0; i < inc.Len(); i++ {
		subI, okI := inc.SubAt(i)
		subS, okS := scat.SubAt(i)
		switch {
		case okI != okS:
			return nil, fmt.Errorf("pairElements: element %d: leaf paired with sub-ensemble: %w",
				i, ErrCardinality)

		case okI:
			nested, err := ForceTorqueEnsemble(subI, subS)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)

		default:
			si, err := inc.At(i)
			if err != nil {
				return nil, fmt.Errorf("moment: incident: %w", err)
			}
			sc, err := scat.At(i)
			if err != nil {
				return nil, fmt.Errorf("moment: scattered: %w", err)
			}
			f, tq, sp, err := ForceTorque(si, sc)
			if err != nil {
				return nil, err
			}
			out = append(out, Moments{Force: f, Torque: tq, Spin: sp})
		}
	}

	return out, nil
}
