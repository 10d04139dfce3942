package moment_test

import (
	"fmt"

	"github.com/waveoptics/vswf/beams"
	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/moment"
)

// ExampleForceTorque measures the momentum a perfect absorber takes from a
// unit-power circularly polarized beam: nmax/(nmax+1) of the ideal photon
// momentum, and exactly one unit of axial torque per unit power.
func ExampleForceTorque() {
	incident, err := beams.PlaneWaveZ(10, beams.Circular(1), beams.WithUnitPower())
	if err != nil {
		panic(err)
	}
	scattered := incident.Scale(-0.5).WithBasis(coeffs.Outgoing)

	force, torque, _, err := moment.ForceTorque(incident, scattered)
	if err != nil {
		panic(err)
	}

	fmt.Printf("axial force  %.6f\n", force.Z)
	fmt.Printf("axial torque %.6f\n", torque.Z)

	// Output:
	// axial force  0.909091
	// axial torque 1.000000
}
