package coeffs_test

import (
	"errors"
	"fmt"

	"github.com/waveoptics/vswf/coeffs"
)

// ExampleSet_Resize shows the power-loss policy on a shrink: truncating a
// set that still carries power in its top degrees returns a valid result
// together with the advisory ErrPowerLoss.
//
// Scenario:
//
//	An order-2 set with unit amplitude in every TE mode (8 modes, power 8).
//	Shrinking to order 1 keeps 3 modes, so 5/8 of the power is discarded —
//	far beyond the default 1e-6 tolerance.
func ExampleSet_Resize() {
	a := make([]complex128, 8)
	b := make([]complex128, 8)
	for i := range a {
		a[i] = 1
	}
	s, err := coeffs.FromVectors(a, b, coeffs.Regular)
	if err != nil {
		panic(err)
	}

	small, err := s.Resize(1, nil)
	fmt.Printf("power %.0f -> %.0f\n", s.Power(), small.Power())
	fmt.Printf("advisory: %v\n", errors.Is(err, coeffs.ErrPowerLoss))

	// Output:
	// power 8 -> 3
	// advisory: true
}

// ExampleSet_Grow shows that growth is lossless and never warns.
func ExampleSet_Grow() {
	a := []complex128{1, 2i, -1}
	b := []complex128{0, 0, 3}
	s, err := coeffs.FromVectors(a, b, coeffs.Outgoing)
	if err != nil {
		panic(err)
	}

	big := s.Grow(4)
	fmt.Printf("order %d -> %d\n", s.Nmax(), big.Nmax())
	fmt.Printf("power %.0f -> %.0f\n", s.Power(), big.Power())

	// Output:
	// order 1 -> 4
	// power 15 -> 15
}
