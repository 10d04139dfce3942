package sphfn

import "math"

// Index maps a (degree, order) pair to the combined linear mode index
//
//	idx(n, m) = n(n+1) + m
//
// for degree n ≥ 1 and order m ∈ [−n, n]. The smallest mode (n=1, m=−1) has
// index 1, so an order-Nmax expansion occupies indices 1..Nmax(Nmax+2) and a
// coefficient vector stores index idx at slice position idx−1.
//
// Index panics when n < 1 or |m| > n; mode addressing is internal plumbing and
// an invalid pair is a programmer error, not a runtime condition.
func Index(n, m int) int {
	if n < 1 || m < -n || m > n {
		panic(panicIndexDegree)
	}

	return n*(n+1) + m
}

// Degree inverts Index: given a combined mode index it returns the (n, m)
// pair with n ≥ 1, m ∈ [−n, n]. Degree(Index(n, m)) == (n, m) for every
// valid pair.
func Degree(idx int) (n, m int) {
	n = int(math.Floor(math.Sqrt(float64(idx))))
	m = idx - n*(n+1)
	// Guard against floating-point edge cases at block boundaries.
	if m > n {
		n++
		m = idx - n*(n+1)
	} else if m < -n {
		n--
		m = idx - n*(n+1)
	}

	return n, m
}

// ModeCount returns the number of retained modes for a truncation order:
// Nmax(Nmax+2). A non-positive nmax yields 0.
func ModeCount(nmax int) int {
	if nmax < 1 {
		return 0
	}

	return nmax * (nmax + 2)
}

// MaxDegree returns the truncation order whose mode count equals length,
// and whether such an order exists. Length 0 maps to order 0 (an empty set
// is considered well formed).
func MaxDegree(length int) (nmax int, ok bool) {
	if length == 0 {
		return 0, true
	}
	if length < 0 {
		return 0, false
	}
	nmax = int(math.Round(math.Sqrt(float64(length+1)))) - 1

	return nmax, nmax >= 1 && nmax*(nmax+2) == length
}

// KaToNmax returns the truncation order recommended by the Wiscombe
// criterion for a size parameter ka:
//
//	Nmax = ⌈ka + 3·ka^(1/3)⌉
//
// with a floor of 1 so the result is always a valid order.
func KaToNmax(ka float64) int {
	if ka <= 0 {
		return 1
	}
	w := ka + 3*math.Cbrt(ka)
	// Snap to the nearest integer when w sits within rounding error of it,
	// so a ka produced by NmaxToKa ceils back to its own order instead of
	// one above.
	if r := math.Round(w); math.Abs(w-r) <= 1e-12*math.Max(1, w) {
		w = r
	}
	nmax := int(math.Ceil(w))
	if nmax < 1 {
		nmax = 1
	}

	return nmax
}

// NmaxToKa inverts the Wiscombe criterion: it returns the size parameter ka
// solving Nmax = ka + 3·ka^(1/3). Substituting t = ka^(1/3) gives the
// depressed cubic t³ + 3t − Nmax = 0, solved in closed form by Cardano.
// The returned ka is the characteristic radius (in units of 1/k) inside
// which an order-Nmax expansion is trusted.
func NmaxToKa(nmax int) float64 {
	if nmax < 1 {
		return 0
	}
	half := float64(nmax) / 2
	root := math.Sqrt(half*half + 1)
	t := math.Cbrt(half+root) + math.Cbrt(half-root)

	return t * t * t
}
