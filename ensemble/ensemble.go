package ensemble

import (
	"fmt"

	"github.com/waveoptics/vswf/coeffs"
)

// CoefficientLike is the capability surface an element type must offer for
// ensemble reductions: lossless growth to a common order, amplitude
// addition, scaling, power, and the radial basis tag. The type parameter is
// the element type itself, so methods return concrete values rather than
// interfaces.
type CoefficientLike[T any] interface {
	Grow(nmax int) T
	Add(other T) (T, error)
	Scale(c complex128) T
	Power() float64
	Nmax() int
	Basis() coeffs.Basis
}

// element is either a leaf value or a nested sub-ensemble.
type element[T CoefficientLike[T]] struct {
	leaf T
	sub  *Ensemble[T]
}

func (e element[T]) isSub() bool { return e.sub != nil }

// Ensemble is an ordered group of coefficient-like elements under one
// combination Kind. The zero value is not usable; construct with New or
// NewNested.
type Ensemble[T CoefficientLike[T]] struct {
	kind  Kind
	elems []element[T]
}

// New builds a flat ensemble of leaf elements.
func New[T CoefficientLike[T]](kind Kind, elems ...T) (*Ensemble[T], error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("New: %s: %w", kind, ErrKind)
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmpty)
	}

	e := &Ensemble[T]{kind: kind, elems: make([]element[T], len(elems))}
	for i, v := range elems {
		e.elems[i] = element[T]{leaf: v}
	}

	return e, nil
}

// NewNested builds an ensemble whose elements are themselves ensembles.
// A coherent parent rejects any child holding incoherent structure anywhere
// below it.
func NewNested[T CoefficientLike[T]](kind Kind, subs ...*Ensemble[T]) (*Ensemble[T], error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("NewNested: %s: %w", kind, ErrKind)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("NewNested: %w", ErrEmpty)
	}

	e := &Ensemble[T]{kind: kind, elems: make([]element[T], len(subs))}
	for i, sub := range subs {
		if kind == Coherent && sub.ContainsIncoherent() {
			return nil, fmt.Errorf("NewNested: child %d: %w", i, ErrCoherentContainsIncoherent)
		}
		e.elems[i] = element[T]{sub: sub}
	}

	return e, nil
}

// Kind returns the combination discipline.
func (e *Ensemble[T]) Kind() Kind { return e.kind }

// Len returns the number of direct elements.
func (e *Ensemble[T]) Len() int { return len(e.elems) }

// ContainsIncoherent folds the tree: true when this ensemble, or any
// descendant, combines incoherently.
func (e *Ensemble[T]) ContainsIncoherent() bool {
	if e.kind == Incoherent {
		return true
	}
	for _, el := range e.elems {
		if el.isSub() && el.sub.ContainsIncoherent() {
			return true
		}
	}

	return false
}

// Nmax returns the largest truncation order found among the leaves.
func (e *Ensemble[T]) Nmax() int {
	var nmax int
	for _, el := range e.elems {
		var n int
		if el.isSub() {
			n = el.sub.Nmax()
		} else {
			n = el.leaf.Nmax()
		}
		if n > nmax {
			nmax = n
		}
	}

	return nmax
}

// At returns leaf element i. Nested sub-ensembles are not leaves; reach
// them with SubAt.
func (e *Ensemble[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(e.elems) {
		return zero, fmt.Errorf("At: %d of %d: %w", i, len(e.elems), ErrIndex)
	}
	if e.elems[i].isSub() {
		return zero, fmt.Errorf("At: %d: %w", i, ErrNotLeaf)
	}

	return e.elems[i].leaf, nil
}

// SubAt returns element i as a sub-ensemble, with ok=false for leaves.
func (e *Ensemble[T]) SubAt(i int) (*Ensemble[T], bool) {
	if i < 0 || i >= len(e.elems) || !e.elems[i].isSub() {
		return nil, false
	}

	return e.elems[i].sub, true
}

// Slice returns the half-open element range [i, j) as a new ensemble of the
// same Kind, sharing element values with the receiver.
func (e *Ensemble[T]) Slice(i, j int) (*Ensemble[T], error) {
	if i < 0 || j > len(e.elems) || i >= j {
		return nil, fmt.Errorf("Slice: [%d,%d) of %d: %w", i, j, len(e.elems), ErrIndex)
	}
	out := &Ensemble[T]{kind: e.kind, elems: make([]element[T], j-i)}
	copy(out.elems, e.elems[i:j])

	return out, nil
}

// Assign replaces leaf element i with v. The replacement may not exceed the
// ensemble's truncation order; a smaller one is zero-padded up to it.
func (e *Ensemble[T]) Assign(i int, v T) error {
	if i < 0 || i >= len(e.elems) {
		return fmt.Errorf("Assign: %d of %d: %w", i, len(e.elems), ErrIndex)
	}
	if e.elems[i].isSub() {
		return fmt.Errorf("Assign: %d: %w", i, ErrNotLeaf)
	}
	if nmax := e.Nmax(); v.Nmax() > nmax {
		return fmt.Errorf("Assign: order %d exceeds ensemble order %d: %w", v.Nmax(), nmax, ErrNmax)
	} else if v.Nmax() < nmax {
		v = v.Grow(nmax)
	}
	e.elems[i] = element[T]{leaf: v}

	return nil
}

// Merge combines two ensembles. Same-kind coherent (or independent) pairs
// concatenate in place order; a coherent pair whose leaves carry different
// basis tags has no joint amplitude sum, so it joins every other pairing in
// the fallback: a fresh two-element independent ensemble holding both.
func (e *Ensemble[T]) Merge(other *Ensemble[T]) (*Ensemble[T], error) {
	if e.kind == other.kind && e.kind != Incoherent {
		joinable := e.kind != Coherent
		if !joinable {
			eb, eok := e.uniformBasis()
			ob, ook := other.uniformBasis()
			joinable = eok && ook && eb == ob
		}
		if joinable {
			out := &Ensemble[T]{kind: e.kind, elems: make([]element[T], 0, len(e.elems)+len(other.elems))}
			out.elems = append(out.elems, e.elems...)
			out.elems = append(out.elems, other.elems...)

			return out, nil
		}
	}

	return NewNested(Independent, e, other)
}

// uniformBasis returns the basis tag shared by every leaf of the tree, with
// ok=false when leaves disagree.
func (e *Ensemble[T]) uniformBasis() (basis coeffs.Basis, ok bool) {
	seen := false
	var walk func(e *Ensemble[T]) bool
	walk = func(e *Ensemble[T]) bool {
		for _, el := range e.elems {
			if el.isSub() {
				if !walk(el.sub) {
					return false
				}
				continue
			}
			b := el.leaf.Basis()
			if !seen {
				basis, seen = b, true
			} else if b != basis {
				return false
			}
		}

		return true
	}

	return basis, walk(e)
}

// Sum reduces the ensemble to a single amplitude superposition, walking
// elements in ascending index order and nested ensembles depth first. It is
// the reduction a coherent ensemble feeds to quadratic evaluators; calling
// it on incoherent structure is rejected.
func (e *Ensemble[T]) Sum() (T, error) {
	var zero T
	if e.ContainsIncoherent() {
		return zero, fmt.Errorf("Sum: %w", ErrCoherentContainsIncoherent)
	}

	nmax := e.Nmax()
	acc, err := e.reduceAt(0, nmax)
	if err != nil {
		return zero, err
	}
	for i := 1; i < len(e.elems); i++ {
		next, err := e.reduceAt(i, nmax)
		if err != nil {
			return zero, err
		}
		if acc, err = acc.Add(next); err != nil {
			return zero, fmt.Errorf("Sum: element %d: %w", i, err)
		}
	}

	return acc, nil
}

// PowerSum reduces the ensemble to a scalar: coherent structure superposes
// first and contributes |sum|² power, everything else contributes its
// elements' powers added as scalars.
func (e *Ensemble[T]) PowerSum() (float64, error) {
	if e.kind == Coherent {
		s, err := e.Sum()
		if err != nil {
			return 0, err
		}

		return s.Power(), nil
	}

	var total float64
	for i, el := range e.elems {
		if el.isSub() {
			p, err := el.sub.PowerSum()
			if err != nil {
				return 0, fmt.Errorf("PowerSum: element %d: %w", i, err)
			}
			total += p
			continue
		}
		total += el.leaf.Power()
	}

	return total, nil
}

// reduceAt resolves element i to a single grown value.
func (e *Ensemble[T]) reduceAt(i, nmax int) (T, error) {
	el := e.elems[i]
	if el.isSub() {
		v, err := el.sub.Sum()
		if err != nil {
			var zero T
			return zero, err
		}

		return v.Grow(nmax), nil
	}

	return el.leaf.Grow(nmax), nil
}
