package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Dir is a direction on the unit sphere: polar angle theta from +z,
// azimuth phi from +x.
type Dir struct {
	Theta, Phi float64
}

// SphVec is a complex vector in the local spherical frame (r̂, θ̂, φ̂).
type SphVec struct {
	R, Theta, Phi complex128
}

// CartVec is a complex vector in the lab cartesian frame.
type CartVec struct {
	X, Y, Z complex128
}

// Cartesian converts v from the spherical frame anchored at (theta, phi)
// into lab coordinates.
func (v SphVec) Cartesian(theta, phi float64) CartVec {
	st, ct := math.Sin(theta), math.Cos(theta)
	sp, cp := math.Sin(phi), math.Cos(phi)

	return CartVec{
		X: v.R*complex(st*cp, 0) + v.Theta*complex(ct*cp, 0) - v.Phi*complex(sp, 0),
		Y: v.R*complex(st*sp, 0) + v.Theta*complex(ct*sp, 0) + v.Phi*complex(cp, 0),
		Z: v.R*complex(ct, 0) - v.Theta*complex(st, 0),
	}
}

// Norm2 returns |v|² summed over components.
func (v SphVec) Norm2() float64 {
	abs2 := func(c complex128) float64 { return real(c)*real(c) + imag(c)*imag(c) }

	return abs2(v.R) + abs2(v.Theta) + abs2(v.Phi)
}

// spherical splits a lab-frame point into (r, theta, phi).
func spherical(p r3.Vec) (r, theta, phi float64) {
	r = r3.Norm(p)
	if r == 0 {
		return 0, 0, 0
	}

	return r, math.Acos(p.Z / r), math.Atan2(p.Y, p.X)
}
