package coeffs

import (
	"fmt"
	"math"

	"github.com/waveoptics/vswf/sphfn"
)

// PowerLossPolicy selects what happens when shrinking a Set discards more
// relative power than the tolerance allows.
type PowerLossPolicy int

const (
	// PowerLossWarn returns the truncated Set together with ErrPowerLoss;
	// the result is valid and the error is advisory. This is the default.
	PowerLossWarn PowerLossPolicy = iota

	// PowerLossIgnore silently accepts any truncation loss.
	PowerLossIgnore

	// PowerLossFail treats excess truncation loss as fatal: no result.
	PowerLossFail
)

// DefaultPowerTolerance is the relative power loss accepted silently by a
// shrink. It is a pragmatic default inherited from common toolbox practice,
// not a derived bound; tighten it per call when the application demands.
const DefaultPowerTolerance = 1e-6

// ResizeOptions configures Resize.
//
// Fields:
//   - Tolerance   — maximum accepted relative power loss |ΔP|/P on shrink.
//   - OnPowerLoss — policy when the loss exceeds Tolerance.
//
// The zero value is NOT usable; obtain defaults from DefaultResizeOptions.
type ResizeOptions struct {
	Tolerance   float64
	OnPowerLoss PowerLossPolicy
}

// DefaultResizeOptions returns the documented defaults: tolerance 1e-6,
// warn on excess loss.
func DefaultResizeOptions() ResizeOptions {
	return ResizeOptions{Tolerance: DefaultPowerTolerance, OnPowerLoss: PowerLossWarn}
}

// Resize returns s re-truncated to the requested order.
//
// Behavior:
//   - No-op (cheap clone) when the mode count already matches.
//   - Growth zero-extends: exact, no power check.
//   - Shrink truncates the higher-degree modes and computes the apparent
//     relative error |P_before − P_after| / P_before. When it exceeds
//     opts.Tolerance the OnPowerLoss policy decides between silence, a
//     returned-but-recoverable ErrPowerLoss, and failure.
//
// A nil opts means DefaultResizeOptions.
func (s Set) Resize(nmax int, opts *ResizeOptions) (Set, error) {
	if nmax < 1 {
		return Set{}, fmt.Errorf("Resize: nmax=%d: %w", nmax, ErrBadOrder)
	}
	o := DefaultResizeOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tolerance <= 0 {
		return Set{}, fmt.Errorf("Resize: tolerance=%g: %w", o.Tolerance, ErrBadTolerance)
	}

	modes := sphfn.ModeCount(nmax)
	switch {
	case modes == s.Len():
		return s.Clone(), nil
	case modes > s.Len():
		return s.grow(modes), nil
	}

	powerBefore := s.Power()
	out := Set{a: make([]complex128, modes), b: make([]complex128, modes), basis: s.basis, absDz: s.absDz}
	copy(out.a, s.a[:modes])
	copy(out.b, s.b[:modes])

	if powerBefore == 0 {
		return out, nil
	}
	apparentError := math.Abs(powerBefore-out.Power()) / powerBefore
	if apparentError <= o.Tolerance {
		return out, nil
	}

	switch o.OnPowerLoss {
	case PowerLossIgnore:
		return out, nil
	case PowerLossFail:
		return Set{}, fmt.Errorf("Resize: %d→%d lost %.3e relative power (tolerance %.3e): %w",
			s.Nmax(), nmax, apparentError, o.Tolerance, ErrPowerLoss)
	default: // PowerLossWarn
		return out, fmt.Errorf("Resize: %d→%d lost %.3e relative power (tolerance %.3e): %w",
			s.Nmax(), nmax, apparentError, o.Tolerance, ErrPowerLoss)
	}
}

// ShrinkToTolerance returns s truncated to the first (lowest) order whose
// truncation keeps the relative power error of BOTH coefficient vectors
// under tol. The scan ascends n = 1, 2, … and stops at the first
// acceptable order — a pragmatic "good enough" choice, not a globally
// minimal one.
func (s Set) ShrinkToTolerance(tol float64) (Set, error) {
	if tol <= 0 {
		return Set{}, fmt.Errorf("ShrinkToTolerance: tolerance=%g: %w", tol, ErrBadTolerance)
	}
	nmax := s.Nmax()
	if nmax <= 1 {
		return s.Clone(), nil
	}

	paFull, pbFull := s.PowerAB()
	for n := 1; n < nmax; n++ {
		modes := sphfn.ModeCount(n)
		pa := vecPower(s.a[:modes])
		pb := vecPower(s.b[:modes])
		if relLoss(paFull, pa) <= tol && relLoss(pbFull, pb) <= tol {
			opts := ResizeOptions{Tolerance: tol, OnPowerLoss: PowerLossIgnore}

			return s.Resize(n, &opts)
		}
	}

	return s.Clone(), nil
}

// relLoss returns the relative power discarded by a truncation; an empty
// vector loses nothing.
func relLoss(full, kept float64) float64 {
	if full == 0 {
		return 0
	}

	return math.Abs(full-kept) / full
}
