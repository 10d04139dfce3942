package field

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/waveoptics/vswf/coeffs"
)

// GridCache precomputes the angular basis of a fixed point grid up to a
// fixed order, so many coefficient sets can be evaluated on the same grid
// without recomputing harmonics. Radial families are cached lazily per
// basis tag and set order on first use; keying by order keeps the radial
// recurrence start identical to the direct path, so cached results match
// it bit for bit. A GridCache is not safe for concurrent use.
type GridCache struct {
	nmax      int
	minRadius float64

	r, theta, phi []float64
	ang           []angularPoint

	radial map[radialKey]*radialGrid
}

// radialKey identifies one cached radial family. The downward radial
// recurrence depends on the order it starts from, so families of distinct
// set orders never share an entry.
type radialKey struct {
	basis coeffs.Basis
	nmax  int
}

type radialGrid struct {
	z, ric [][]complex128
}

// NewGridCache builds the cache for pts at truncation order nmax.
func NewGridCache(nmax int, pts []r3.Vec, opts ...Option) (*GridCache, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("NewGridCache: %w", ErrNoPoints)
	}
	o := buildOptions(opts)

	gc := &GridCache{
		nmax:      nmax,
		minRadius: o.minRadius,
		r:         make([]float64, len(pts)),
		theta:     make([]float64, len(pts)),
		phi:       make([]float64, len(pts)),
		ang:       make([]angularPoint, len(pts)),
		radial:    make(map[radialKey]*radialGrid),
	}
	for i, p := range pts {
		r, theta, phi := spherical(p)
		if r < o.minRadius {
			r = o.minRadius
		}
		gc.r[i], gc.theta[i], gc.phi[i] = r, theta, phi

		ap, err := angularAt(nmax, theta, phi)
		if err != nil {
			return nil, fmt.Errorf("NewGridCache: point %d: %w", i, err)
		}
		gc.ang[i] = ap
	}

	return gc, nil
}

// Nmax returns the order the cache was built for.
func (gc *GridCache) Nmax() int { return gc.nmax }

// NearField evaluates E and H for s on the cached grid. The Set's order may
// not exceed the cache's. Results are identical to the direct NearField
// path on the same points.
func (gc *GridCache) NearField(s coeffs.Set) (e, h []SphVec, err error) {
	if s.Nmax() > gc.nmax {
		return nil, nil, fmt.Errorf("GridCache.NearField: set order %d, cache order %d: %w",
			s.Nmax(), gc.nmax, ErrOrder)
	}

	rad, err := gc.radialFor(s.Basis(), s.Nmax())
	if err != nil {
		return nil, nil, fmt.Errorf("GridCache.NearField: %w", err)
	}

	e = make([]SphVec, len(gc.r))
	h = make([]SphVec, len(gc.r))
	for i := range gc.r {
		e[i], h[i] = evalPoint(s, gc.ang[i], rad.z[i], rad.ric[i], gc.r[i])
	}

	return e, h, nil
}

// radialFor returns the per-point radial family for (basis, nmax),
// computing and caching it on first request.
func (gc *GridCache) radialFor(basis coeffs.Basis, nmax int) (*radialGrid, error) {
	key := radialKey{basis: basis, nmax: nmax}
	if rad, ok := gc.radial[key]; ok {
		return rad, nil
	}

	rad := &radialGrid{
		z:   make([][]complex128, len(gc.r)),
		ric: make([][]complex128, len(gc.r)),
	}
	for i, r := range gc.r {
		z, ric, err := radialAt(basis, nmax, r)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		rad.z[i], rad.ric[i] = z, ric
	}
	gc.radial[key] = rad

	return rad, nil
}
