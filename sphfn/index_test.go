package sphfn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveoptics/vswf/sphfn"
)

// TestIndex_Bijection verifies idx⁻¹(idx(n,m)) == (n,m) over every valid
// (degree, order) pair up to a moderate truncation.
func TestIndex_Bijection(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for m := -n; m <= n; m++ {
			idx := sphfn.Index(n, m)
			gotN, gotM := sphfn.Degree(idx)
			assert.Equal(t, n, gotN, "degree mismatch at idx %d", idx)
			assert.Equal(t, m, gotM, "order mismatch at idx %d", idx)
		}
	}
}

// TestIndex_Sequential verifies that valid indices tile 1..Nmax(Nmax+2)
// without gaps.
func TestIndex_Sequential(t *testing.T) {
	const nmax = 6
	want := 1
	for n := 1; n <= nmax; n++ {
		for m := -n; m <= n; m++ {
			assert.Equal(t, want, sphfn.Index(n, m))
			want++
		}
	}
	assert.Equal(t, sphfn.ModeCount(nmax)+1, want)
}

// TestIndex_PanicsOnInvalidDegree ensures invalid (n, m) pairs are rejected
// as programmer errors.
func TestIndex_PanicsOnInvalidDegree(t *testing.T) {
	assert.Panics(t, func() { sphfn.Index(0, 0) }, "degree 0 is not a retained mode")
	assert.Panics(t, func() { sphfn.Index(2, 3) }, "|m| > n must panic")
	assert.Panics(t, func() { sphfn.Index(2, -3) }, "|m| > n must panic")
}

// TestMaxDegree_RoundTrip checks ModeCount/MaxDegree agreement and rejection
// of lengths that match no truncation order.
func TestMaxDegree_RoundTrip(t *testing.T) {
	for nmax := 1; nmax <= 20; nmax++ {
		got, ok := sphfn.MaxDegree(sphfn.ModeCount(nmax))
		require.True(t, ok, "ModeCount(%d) must be a valid length", nmax)
		assert.Equal(t, nmax, got)
	}

	_, ok := sphfn.MaxDegree(4) // between 3 (Nmax=1) and 8 (Nmax=2)
	assert.False(t, ok, "length 4 matches no truncation order")

	got, ok := sphfn.MaxDegree(0)
	assert.True(t, ok, "empty sets are well formed")
	assert.Equal(t, 0, got)
}

// TestNmaxToKa_InvertsWiscombe verifies the Cardano inversion: the returned
// ka must satisfy ka + 3·ka^(1/3) = Nmax to numerical precision, and feeding
// it back through KaToNmax recovers the order.
func TestNmaxToKa_InvertsWiscombe(t *testing.T) {
	for _, nmax := range []int{1, 2, 5, 10, 30, 100} {
		ka := sphfn.NmaxToKa(nmax)
		assert.InDelta(t, float64(nmax), ka+3*math.Cbrt(ka), 1e-9, "Nmax=%d", nmax)
		assert.Equal(t, nmax, sphfn.KaToNmax(ka), "round trip at Nmax=%d", nmax)
	}
}
