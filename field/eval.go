package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/waveoptics/vswf/coeffs"
	"github.com/waveoptics/vswf/sphfn"
)

// minRadiusDefault substitutes for points at the coordinate origin, where
// the 1/(kr) weights of the electric multipole are singular.
const minRadiusDefault = 1e-15

type options struct {
	minRadius float64
}

// Option tunes a near-field evaluation.
type Option func(*options)

// WithMinRadius overrides the radius substituted for on-origin points.
func WithMinRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.minRadius = r
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{minRadius: minRadiusDefault}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// angularPoint holds the angular basis of one point: per degree n the
// 2n+1-long rows of Yₙᵐ, ∂θYₙᵐ and (im/sinθ)Yₙᵐ, indexed m+n.
type angularPoint struct {
	y, yth, yph [][]complex128
}

func angularAt(nmax int, theta, phi float64) (angularPoint, error) {
	ap := angularPoint{
		y:   make([][]complex128, nmax),
		yth: make([][]complex128, nmax),
		yph: make([][]complex128, nmax),
	}
	for n := 1; n <= nmax; n++ {
		y, yth, yph, err := sphfn.Spharm(n, theta, phi)
		if err != nil {
			return angularPoint{}, err
		}
		ap.y[n-1], ap.yth[n-1], ap.yph[n-1] = y, yth, yph
	}

	return ap, nil
}

// radialAt evaluates the basis-selected radial family and its Riccati
// derivative term at kr = x.
func radialAt(basis coeffs.Basis, nmax int, x float64) (z, ric []complex128, err error) {
	switch basis {
	case coeffs.Outgoing:
		z, err = sphfn.SphHankel1(nmax, x)
	case coeffs.Incoming:
		z, err = sphfn.SphHankel2(nmax, x)
	default:
		var j []float64
		if j, err = sphfn.SphBesselJ(nmax, x); err == nil {
			z = make([]complex128, len(j))
			for i, v := range j {
				z[i] = complex(v, 0)
			}
		}
	}
	if err != nil {
		return nil, nil, err
	}

	return z, sphfn.RiccatiTerm(z, x), nil
}

// evalPoint sums the multipole series at one near-field point. The magnetic
// multipole M rides the C harmonic on the plain radial function; the
// electric multipole N splits into a radial part on Y and a tangential part
// on B weighted by the Riccati term.
func evalPoint(s coeffs.Set, ap angularPoint, z, ric []complex128, x float64) (e, h SphVec) {
	nmax := s.Nmax()
	for n := 1; n <= nmax; n++ {
		nf := float64(n)
		norm := complex(1/math.Sqrt(nf*(nf+1)), 0)
		radialY := complex(nf*(nf+1)/x, 0) * z[n]

		for m := -n; m <= n; m++ {
			a, b := s.At(n, m)
			if a == 0 && b == 0 {
				continue
			}
			col := m + n
			y, yth, yph := ap.y[n-1][col], ap.yth[n-1][col], ap.yph[n-1][col]

			mTh := norm * z[n] * yph
			mPh := -norm * z[n] * yth
			nR := norm * radialY * y
			nTh := norm * ric[n] * yth
			nPh := norm * ric[n] * yph

			e.R += b * nR
			e.Theta += a*mTh + b*nTh
			e.Phi += a*mPh + b*nPh

			h.R += -1i * a * nR
			h.Theta += -1i * (a*nTh + b*mTh)
			h.Phi += -1i * (a*nPh + b*mPh)
		}
	}

	return e, h
}

// NearField evaluates E and H at the lab-frame points pts. Results align
// index-wise with pts and sit in each point's local spherical frame.
func NearField(s coeffs.Set, pts []r3.Vec, opts ...Option) (e, h []SphVec, err error) {
	if len(pts) == 0 {
		return nil, nil, fmt.Errorf("NearField: %w", ErrNoPoints)
	}
	o := buildOptions(opts)
	nmax := s.Nmax()

	e = make([]SphVec, len(pts))
	h = make([]SphVec, len(pts))
	for i, p := range pts {
		r, theta, phi := spherical(p)
		if r < o.minRadius {
			r = o.minRadius
		}

		ap, err := angularAt(nmax, theta, phi)
		if err != nil {
			return nil, nil, fmt.Errorf("NearField: point %d: %w", i, err)
		}
		z, ric, err := radialAt(s.Basis(), nmax, r)
		if err != nil {
			return nil, nil, fmt.Errorf("NearField: point %d: %w", i, err)
		}
		e[i], h[i] = evalPoint(s, ap, z, ric, r)
	}

	return e, h, nil
}

// FarField evaluates the radiation-zone angular pattern of an outgoing or
// incoming expansion, with the radial factor e^{±ikr}/(kr) stripped. A
// purely regular Set has no radiation zone and is rejected.
func FarField(s coeffs.Set, dirs []Dir) (e, h []SphVec, err error) {
	if len(dirs) == 0 {
		return nil, nil, fmt.Errorf("FarField: %w", ErrNoPoints)
	}
	if s.Basis() == coeffs.Regular {
		return nil, nil, fmt.Errorf("FarField: %w", ErrBasis)
	}

	// Outgoing h⁽¹⁾ₙ(x) → (−i)ⁿ⁺¹e^{ix}/x, incoming h⁽²⁾ₙ(x) → iⁿ⁺¹e^{−ix}/x.
	unit := complex(0, -1)
	if s.Basis() == coeffs.Incoming {
		unit = complex(0, 1)
	}

	nmax := s.Nmax()
	e = make([]SphVec, len(dirs))
	h = make([]SphVec, len(dirs))
	for i, d := range dirs {
		ap, err := angularAt(nmax, d.Theta, d.Phi)
		if err != nil {
			return nil, nil, fmt.Errorf("FarField: direction %d: %w", i, err)
		}

		phase := unit // (∓i)^n, starting at n = 1
		for n := 1; n <= nmax; n++ {
			nf := float64(n)
			norm := complex(1/math.Sqrt(nf*(nf+1)), 0)
			wA := phase * unit * norm // (∓i)^{n+1}
			wB := phase * norm

			for m := -n; m <= n; m++ {
				a, b := s.At(n, m)
				if a == 0 && b == 0 {
					continue
				}
				col := m + n
				yth, yph := ap.yth[n-1][col], ap.yph[n-1][col]

				e[i].Theta += wA*a*yph + wB*b*yth
				e[i].Phi += -wA*a*yth + wB*b*yph

				h[i].Theta += -1i * (wB*a*yth + wA*b*yph)
				h[i].Phi += -1i * (wB*a*yph - wA*b*yth)
			}
			phase *= unit
		}
	}

	return e, h, nil
}
