package moment

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/waveoptics/vswf/coeffs"
)

// Scatterer is the linear-map collaborator turning an incident regular
// expansion into the outgoing scattered one. Moment and field evaluation
// consume the (incident, scattered) pair; neither builds the operator.
type Scatterer interface {
	Apply(coeffs.Set) (coeffs.Set, error)
}

// Moments groups the three transfer vectors of one scattering pair.
type Moments struct {
	Force, Torque, Spin r3.Vec
}

// add combines moments as scalars, the incoherent discipline.
func (m Moments) add(o Moments) Moments {
	return Moments{
		Force:  r3.Add(m.Force, o.Force),
		Torque: r3.Add(m.Torque, o.Torque),
		Spin:   r3.Add(m.Spin, o.Spin),
	}
}

// ForceTorque returns the force, torque and spin transferred from the
// incident beam to the scatterer producing scattered. The two sets need
// not share a truncation order: modes beyond either order read as zero,
// which matches lossless growth to the common order.
func ForceTorque(incident, scattered coeffs.Set) (force, torque, spin r3.Vec, err error) {
	if incident.Basis() != coeffs.Regular || scattered.Basis() != coeffs.Outgoing {
		return r3.Vec{}, r3.Vec{}, r3.Vec{}, fmt.Errorf(
			"ForceTorque: incident %s, scattered %s: %w",
			incident.Basis(), scattered.Basis(), ErrBasis)
	}

	nmax := incident.Nmax()
	if n := scattered.Nmax(); n > nmax {
		nmax = n
	}

	in := accumulate(incident.At, nmax)
	out := accumulate(func(n, m int) (complex128, complex128) {
		a, b := incident.At(n, m)
		sa, sb := scattered.At(n, m)

		return a + 2*sa, b + 2*sb
	}, nmax)

	force = vec(in.ixy-out.ixy, in.iz-out.iz)
	torque = vec(in.jxy-out.jxy, in.jz-out.jz)
	spin = vec(in.sxy-out.sxy, in.sz-out.sz)

	return force, torque, spin, nil
}

// Force returns only the force component of ForceTorque.
func Force(incident, scattered coeffs.Set) (r3.Vec, error) {
	f, _, _, err := ForceTorque(incident, scattered)

	return f, err
}

// Torque returns only the torque component of ForceTorque.
func Torque(incident, scattered coeffs.Set) (r3.Vec, error) {
	_, tq, _, err := ForceTorque(incident, scattered)

	return tq, err
}

// Spin returns only the spin component of ForceTorque.
func Spin(incident, scattered coeffs.Set) (r3.Vec, error) {
	_, _, sp, err := ForceTorque(incident, scattered)

	return sp, err
}

// vec assembles a 3-vector from the complex transverse pair x+iy and the
// axial component.
func vec(xy complex128, z float64) r3.Vec {
	return r3.Vec{X: real(xy), Y: imag(xy), Z: z}
}
