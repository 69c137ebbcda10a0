// SPDX-License-Identifier: MIT

package store

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvarray/scalar"
)

// Source is a read-only, logically indexed sequence used as the second
// operand of element-wise (zip) operations. Element k pairs with the k-th
// touched slot of the receiving range.
type Source[N any] interface {
	Count() int
	Get(k int) N
}

// Store is the Scalar Domain Adapter: a fixed-length buffer of one numeric
// domain with bulk operations over (first, limit, step) triples.
type Store[N any] interface {
	// Len is the number of slots; it never changes.
	Len() int
	// Domain returns the arithmetic of the stored values.
	Domain() scalar.Domain[N]

	Get(i int) N
	Set(i int, v N)
	// DoubleValue converts slot i to float64.
	DoubleValue(i int) float64
	// ToScalar wraps slot i as a typed scalar.
	ToScalar(i int) scalar.Scalar[N]

	Fill(first, limit, step int, v N)
	FillFunc(first, limit, step int, supplier func() N)
	// FillMatching assigns fn(left[k], right[k]) to the k-th touched slot.
	FillMatching(first, limit, step int, left Source[N], fn func(l, r N) N, right Source[N])

	// Exchange swaps count pairs of slots starting at firstA and firstB,
	// advancing both cursors by step.
	Exchange(firstA, firstB, step, count int)

	Modify(first, limit, step int, fn func(v N) N)
	// ModifyLeft assigns fn(left, slot).
	ModifyLeft(first, limit, step int, left N, fn func(l, v N) N)
	// ModifyRight assigns fn(slot, right).
	ModifyRight(first, limit, step int, fn func(v, r N) N, right N)
	// ModifyMatchingLeft assigns fn(left[k], slot).
	ModifyMatchingLeft(first, limit, step int, left Source[N], fn func(l, v N) N)
	// ModifyMatchingRight assigns fn(slot, right[k]).
	ModifyMatchingRight(first, limit, step int, fn func(v, r N) N, right Source[N])

	// Visit passes every touched value to visitor without mutating the store.
	Visit(first, limit, step int, visitor func(v N))

	// IndexOfLargest returns the logical index (0 for first) of the value
	// with the greatest magnitude; the first occurrence wins ties. An empty
	// range yields 0.
	IndexOfLargest(first, limit, step int) int

	IsZero(i int) bool
	IsZeros(first, limit, step int) bool
	IsAbsolute(i int) bool
	IsPositive(i int) bool
	IsReal(i int) bool

	// SortAscending sorts the whole store in place.
	SortAscending()
	// SearchAscending binary-searches the whole store for key. The store must
	// be sorted ascending; on unsorted data the result is undefined. A miss
	// returns -(insertionPoint) - 1.
	SearchAscending(key N) int

	// Copy returns an independent store with the same layout and values.
	Copy() Store[N]
}

// Count returns the number of slots touched by (first, limit, step):
// first, first+step, ... while < limit.
func Count(first, limit, step int) int {
	if limit <= first {
		return 0
	}

	return (limit - first + step - 1) / step
}

// checkRange panics with ErrInvalidRange unless 0 <= first <= limit <= length
// and step >= 1.
func checkRange(method string, first, limit, step, length int) {
	if first < 0 || limit < first || limit > length || step < 1 {
		panic(rangeErrorf(method, first, limit, step, ErrInvalidRange))
	}
}

// checkSource panics with ErrLengthMismatch when src cannot feed every
// touched slot.
func checkSource[N any](method string, first, limit, step int, src Source[N]) {
	if src.Count() < Count(first, limit, step) {
		panic(rangeErrorf(method, first, limit, step, ErrLengthMismatch))
	}
}

// checkExchange validates both cursors of an exchange.
func checkExchange(method string, firstA, firstB, step, count, length int) {
	if count == 0 {
		return
	}
	lastOffset := (count - 1) * step
	if count < 0 || step < 1 || firstA < 0 || firstB < 0 ||
		firstA+lastOffset >= length || firstB+lastOffset >= length {
		panic(rangeErrorf(method, firstA, firstB, step, ErrIndexOutOfRange))
	}
}

// NewPrimitive allocates a zeroed float64 store.
func NewPrimitive(n int) *Dense[float64] { return NewDense[float64](scalar.Primitive{}, n) }

// NewBig allocates a zeroed arbitrary-precision decimal store.
func NewBig(n int) *Dense[decimal.Decimal] { return NewDense[decimal.Decimal](scalar.Big{}, n) }

// NewComplex allocates a zeroed complex128 store.
func NewComplex(n int) *Dense[complex128] { return NewDense[complex128](scalar.Complex{}, n) }

// NewRational allocates a zeroed rational store.
func NewRational(n int) *Dense[scalar.Rational] {
	return NewDense[scalar.Rational](scalar.RationalDomain{}, n)
}
