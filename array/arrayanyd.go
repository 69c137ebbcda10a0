// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvarray/scalar"
	"github.com/katalvlaran/lvarray/store"
)

// ArrayAnyD is a zero-copy N-dimensional column-major view of a whole store.
// Reference (r0, r1, ..., rn) lives at slot Σ r[d]*stride[d] with
// stride[0] = 1 and stride[d] = stride[d-1]*structure[d-1].
type ArrayAnyD[N any] struct {
	store     store.Store[N]
	structure []int
	strides   []int
}

// NewAnyD views s with the given structure (extent per dimension).
//
// Errors:
//   - ErrNilStore when s is nil.
//   - ErrInvalidDimensions for an empty structure or a negative extent.
//   - ErrShapeMismatch when the product of extents differs from s.Len().
func NewAnyD[N any](s store.Store[N], structure ...int) (*ArrayAnyD[N], error) {
	if s == nil {
		return nil, fmt.Errorf("NewAnyD: %w", ErrNilStore)
	}
	count, err := countOf("NewAnyD", structure)
	if err != nil {
		return nil, err
	}
	if count != s.Len() {
		return nil, fmt.Errorf("NewAnyD%v over %d: %w", structure, s.Len(), ErrShapeMismatch)
	}

	return newArrayAnyD(s, structure), nil
}

// countOf validates structure and returns the product of its extents.
func countOf(method string, structure []int) (int, error) {
	if len(structure) == 0 {
		return 0, fmt.Errorf("%s: empty structure: %w", method, ErrInvalidDimensions)
	}
	count := 1
	for _, n := range structure {
		if n < 0 {
			return 0, fmt.Errorf("%s%v: %w", method, structure, ErrInvalidDimensions)
		}
		count *= n
	}

	return count, nil
}

func newArrayAnyD[N any](s store.Store[N], structure []int) *ArrayAnyD[N] {
	dims := slices.Clone(structure)
	strides := make([]int, len(dims))
	strides[0] = 1
	for d := 1; d < len(dims); d++ {
		strides[d] = strides[d-1] * dims[d-1]
	}

	return &ArrayAnyD[N]{store: s, structure: dims, strides: strides}
}

func (a *ArrayAnyD[N]) Store() store.Store[N]    { return a.store }
func (a *ArrayAnyD[N]) Domain() scalar.Domain[N] { return a.store.Domain() }
func (a *ArrayAnyD[N]) Rank() int                { return len(a.structure) }
func (a *ArrayAnyD[N]) Count() int               { return a.store.Len() }

// Structure returns a copy of the extents.
func (a *ArrayAnyD[N]) Structure() []int { return slices.Clone(a.structure) }

// CountOf returns the extent of dimension dim.
func (a *ArrayAnyD[N]) CountOf(dim int) int {
	a.checkDim("CountOf", dim)
	return a.structure[dim]
}

func (a *ArrayAnyD[N]) checkDim(method string, dim int) {
	if dim < 0 || dim >= len(a.structure) {
		panic(viewErrorf("ArrayAnyD."+method, []int{dim}, ErrIndexOutOfRange))
	}
}

// offset maps a full reference to its store slot.
func (a *ArrayAnyD[N]) offset(method string, ref []int) int {
	if len(ref) != len(a.structure) {
		panic(viewErrorf("ArrayAnyD."+method, ref, ErrIndexOutOfRange))
	}
	off := 0
	for d, r := range ref {
		if r < 0 || r >= a.structure[d] {
			panic(viewErrorf("ArrayAnyD."+method, ref, ErrIndexOutOfRange))
		}
		off += r * a.strides[d]
	}

	return off
}

// reference maps a store slot back to its reference.
func (a *ArrayAnyD[N]) reference(index int) []int {
	ref := make([]int, len(a.structure))
	for d, n := range a.structure {
		if n == 0 {
			return ref
		}
		ref[d] = index % n
		index /= n
	}

	return ref
}

func (a *ArrayAnyD[N]) Get(ref ...int) N    { return a.store.Get(a.offset("Get", ref)) }
func (a *ArrayAnyD[N]) Set(v N, ref ...int) { a.store.Set(a.offset("Set", ref), v) }

func (a *ArrayAnyD[N]) DoubleValue(ref ...int) float64 {
	return a.store.DoubleValue(a.offset("DoubleValue", ref))
}

// set addresses the 1-D run along dim starting at ref.
func (a *ArrayAnyD[N]) set(method string, dim int, ref []int) (first, limit, step int) {
	a.checkDim(method, dim)
	first = a.offset(method, ref)
	step = a.strides[dim]

	return first, limitFor(first, step, a.structure[dim]-ref[dim]), step
}

// Slice returns the zero-copy 1-D view along dim from ref to the end of
// that dimension.
func (a *ArrayAnyD[N]) Slice(dim int, ref ...int) *Array1D[N] {
	first, limit, step := a.set("Slice", dim, ref)
	return newArray1D(a.store, first, limit, step)
}

// FillSet assigns v along dim from ref to the end of that dimension.
func (a *ArrayAnyD[N]) FillSet(dim int, v N, ref ...int) {
	first, limit, step := a.set("FillSet", dim, ref)
	a.store.Fill(first, limit, step, v)
}

// ModifySet replaces values along dim from ref with fn(v).
func (a *ArrayAnyD[N]) ModifySet(dim int, fn func(v N) N, ref ...int) {
	first, limit, step := a.set("ModifySet", dim, ref)
	a.store.Modify(first, limit, step, fn)
}

// VisitSet passes values along dim from ref to visitor.
func (a *ArrayAnyD[N]) VisitSet(dim int, visitor func(v N), ref ...int) {
	first, limit, step := a.set("VisitSet", dim, ref)
	a.store.Visit(first, limit, step, visitor)
}

func (a *ArrayAnyD[N]) FillAll(v N)                { a.store.Fill(0, a.store.Len(), 1, v) }
func (a *ArrayAnyD[N]) FillAllFunc(fn func() N)    { a.store.FillFunc(0, a.store.Len(), 1, fn) }
func (a *ArrayAnyD[N]) ModifyAll(fn func(v N) N)   { a.store.Modify(0, a.store.Len(), 1, fn) }
func (a *ArrayAnyD[N]) VisitAll(visitor func(v N)) { a.store.Visit(0, a.store.Len(), 1, visitor) }
func (a *ArrayAnyD[N]) IsAllZeros() bool           { return a.store.IsZeros(0, a.store.Len(), 1) }

// IndexOfLargest returns the reference of the element with the greatest
// magnitude (first in column-major order on ties).
func (a *ArrayAnyD[N]) IndexOfLargest() []int {
	return a.reference(a.store.IndexOfLargest(0, a.store.Len(), 1))
}

// Reshape returns a zero-copy view of the same store with a new structure.
// The element count must not change.
func (a *ArrayAnyD[N]) Reshape(structure ...int) (*ArrayAnyD[N], error) {
	count, err := countOf("ArrayAnyD.Reshape", structure)
	if err != nil {
		return nil, err
	}
	if count != a.store.Len() {
		return nil, fmt.Errorf("ArrayAnyD.Reshape%v from %v: %w", structure, a.structure, ErrShapeMismatch)
	}

	return newArrayAnyD(a.store, structure), nil
}

// Flatten returns the zero-copy column-major 1-D view of all elements.
func (a *ArrayAnyD[N]) Flatten() *Array1D[N] { return newArray1D(a.store, 0, a.store.Len(), 1) }

// Copy returns an independent array with the same structure.
func (a *ArrayAnyD[N]) Copy() *ArrayAnyD[N] {
	return newArrayAnyD(a.store.Copy(), a.structure)
}

// Equals reports whether other has the same structure and element-wise
// equal values; the backing stores need not be the same.
func (a *ArrayAnyD[N]) Equals(other *ArrayAnyD[N]) bool {
	if other == nil || !slices.Equal(a.structure, other.structure) {
		return false
	}
	d := a.store.Domain()
	for i := range a.store.Len() {
		if !d.Equal(a.store.Get(i), other.store.Get(i)) {
			return false
		}
	}

	return true
}

// Hash returns a content hash consistent with Equals.
func (a *ArrayAnyD[N]) Hash() uint64 {
	h := newHasher(a.store.Domain())
	h.ints(len(a.structure))
	h.ints(a.structure...)
	a.VisitAll(h.value)

	return h.sum()
}

// String renders the structure followed by the column-major values.
func (a *ArrayAnyD[N]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v ", a.structure)
	b.WriteString(a.Flatten().String())

	return b.String()
}
