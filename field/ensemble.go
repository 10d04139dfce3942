package field

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/ensemble"
)

// Result pairs the two field vectors of one evaluated beam.
type Result struct {
	E, H []SphVec
}

// NearFieldEnsemble evaluates an ensemble's near field at pts. Coherent
// structure superposes amplitudes before evaluation and yields a single
// Result; independent and incoherent structure yields one Result per
// reduced element, in ascending index order.
func NearFieldEnsemble(ens *ensemble.Ensemble[coeffs.Set], pts []r3.Vec, opts ...Option) ([]Result, error) {
	return evalEnsemble(ens, func(s coeffs.Set) (Result, error) {
		e, h, err := NearField(s, pts, opts...)

		return Result{E: e, H: h}, err
	})
}

// FarFieldEnsemble is the radiation-zone counterpart of NearFieldEnsemble.
func FarFieldEnsemble(ens *ensemble.Ensemble[coeffs.Set], dirs []Dir) ([]Result, error) {
	return evalEnsemble(ens, func(s coeffs.Set) (Result, error) {
		e, h, err := FarField(s, dirs)

		return Result{E: e, H: h}, err
	})
}

// evalEnsemble applies the coherence reduction rules around a single-set
// evaluator.
func evalEnsemble(ens *ensemble.Ensemble[coeffs.Set], eval func(coeffs.Set) (Result, error)) ([]Result, error) {
	if ens.Kind() == ensemble.Coherent {
		s, err := ens.Sum()
		if err != nil {
			return nil, fmt.Errorf("field: %w", err)
		}
		res, err := eval(s)
		if err != nil {
			return nil, err
		}

		return []Result{res}, nil
	}

	var out []Result
	for i := 0; i < ens.Len(); i++ {
		if sub, ok := ens.SubAt(i); ok {
			nested, err := evalEnsemble(sub, eval)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		}
		s, err := ens.At(i)
		if err != nil {
			return nil, fmt.Errorf("field: %w", err)
		}
		res, err := eval(s)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}
