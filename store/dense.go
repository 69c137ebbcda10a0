// SPDX-License-Identifier: MIT

// Dense is the contiguous backing store: one []N plus the domain that
// interprets it.
//
// Complexity quicksheet:
//   - Get/Set/predicates: O(1); bulk ops: O(count); Sort: O(n log n);
//     Search: O(log n); Copy: O(n).

package store

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvarray/scalar"
)

// Dense is a flat, contiguous Store.
type Dense[N any] struct {
	data   []N              // backing slice, never resized
	domain scalar.Domain[N] // arithmetic for data
}

// Compile-time assertion.
var _ Store[float64] = (*Dense[float64])(nil)

// NewDense allocates n zero-valued slots.
// It panics with ErrInvalidLength when n < 0.
func NewDense[N any](d scalar.Domain[N], n int) *Dense[N] {
	if n < 0 {
		panic(fmt.Errorf("NewDense(%d): %w", n, ErrInvalidLength))
	}
	data := make([]N, n)
	// Go zero values are numeric zero for every domain except a Rational's
	// denominator, which reads as 1 anyway; filling keeps the invariant explicit.
	zero := d.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Dense[N]{data: data, domain: d}
}

// WrapDense adopts data without copying; the caller must not retain
// conflicting references.
func WrapDense[N any](d scalar.Domain[N], data []N) *Dense[N] {
	return &Dense[N]{data: data, domain: d}
}

// Data exposes the backing slice for flat fast paths.
func (s *Dense[N]) Data() []N { return s.data }

func (s *Dense[N]) Len() int                  { return len(s.data) }
func (s *Dense[N]) Domain() scalar.Domain[N]  { return s.domain }
func (s *Dense[N]) Get(i int) N               { return s.data[i] }
func (s *Dense[N]) Set(i int, v N)            { s.data[i] = v }
func (s *Dense[N]) DoubleValue(i int) float64 { return s.domain.Float(s.data[i]) }

func (s *Dense[N]) ToScalar(i int) scalar.Scalar[N] { return scalar.Of(s.domain, s.data[i]) }

// Fill assigns v to every touched slot.
func (s *Dense[N]) Fill(first, limit, step int, v N) {
	checkRange("Dense.Fill", first, limit, step, len(s.data))
	if step == 1 {
		fill := s.data[first:limit]
		for i := range fill {
			fill[i] = v
		}
		return
	}
	for i := first; i < limit; i += step {
		s.data[i] = v
	}
}

// FillFunc assigns successive supplier results in traversal order.
func (s *Dense[N]) FillFunc(first, limit, step int, supplier func() N) {
	checkRange("Dense.FillFunc", first, limit, step, len(s.data))
	for i := first; i < limit; i += step {
		s.data[i] = supplier()
	}
}

func (s *Dense[N]) FillMatching(first, limit, step int, left Source[N], fn func(l, r N) N, right Source[N]) {
	checkRange("Dense.FillMatching", first, limit, step, len(s.data))
	checkSource("Dense.FillMatching", first, limit, step, left)
	checkSource("Dense.FillMatching", first, limit, step, right)
	for i, k := first, 0; i < limit; i, k = i+step, k+1 {
		s.data[i] = fn(left.Get(k), right.Get(k))
	}
}

func (s *Dense[N]) Exchange(firstA, firstB, step, count int) {
	checkExchange("Dense.Exchange", firstA, firstB, step, count, len(s.data))
	a, b := firstA, firstB
	for n := 0; n < count; n++ {
		s.data[a], s.data[b] = s.data[b], s.data[a]
		a += step
		b += step
	}
}

func (s *Dense[N]) Modify(first, limit, step int, fn func(v N) N) {
	checkRange("Dense.Modify", first, limit, step, len(s.data))
	for i := first; i < limit; i += step {
		s.data[i] = fn(s.data[i])
	}
}

func (s *Dense[N]) ModifyLeft(first, limit, step int, left N, fn func(l, v N) N) {
	checkRange("Dense.ModifyLeft", first, limit, step, len(s.data))
	for i := first; i < limit; i += step {
		s.data[i] = fn(left, s.data[i])
	}
}

func (s *Dense[N]) ModifyRight(first, limit, step int, fn func(v, r N) N, right N) {
	checkRange("Dense.ModifyRight", first, limit, step, len(s.data))
	for i := first; i < limit; i += step {
		s.data[i] = fn(s.data[i], right)
	}
}

func (s *Dense[N]) ModifyMatchingLeft(first, limit, step int, left Source[N], fn func(l, v N) N) {
	checkRange("Dense.ModifyMatchingLeft", first, limit, step, len(s.data))
	checkSource("Dense.ModifyMatchingLeft", first, limit, step, left)
	for i, k := first, 0; i < limit; i, k = i+step, k+1 {
		s.data[i] = fn(left.Get(k), s.data[i])
	}
}

func (s *Dense[N]) ModifyMatchingRight(first, limit, step int, fn func(v, r N) N, right Source[N]) {
	checkRange("Dense.ModifyMatchingRight", first, limit, step, len(s.data))
	checkSource("Dense.ModifyMatchingRight", first, limit, step, right)
	for i, k := first, 0; i < limit; i, k = i+step, k+1 {
		s.data[i] = fn(s.data[i], right.Get(k))
	}
}

func (s *Dense[N]) Visit(first, limit, step int, visitor func(v N)) {
	checkRange("Dense.Visit", first, limit, step, len(s.data))
	for i := first; i < limit; i += step {
		visitor(s.data[i])
	}
}

// IndexOfLargest scans by domain magnitude; strict comparison keeps the
// first of equal candidates.
func (s *Dense[N]) IndexOfLargest(first, limit, step int) int {
	checkRange("Dense.IndexOfLargest", first, limit, step, len(s.data))
	best, bestMag := 0, -1.0
	for i, k := first, 0; i < limit; i, k = i+step, k+1 {
		if mag := s.domain.Magnitude(s.data[i]); mag > bestMag {
			best, bestMag = k, mag
		}
	}

	return best
}

func (s *Dense[N]) IsZero(i int) bool     { return s.domain.IsZero(s.data[i]) }
func (s *Dense[N]) IsAbsolute(i int) bool { return s.domain.IsAbsolute(s.data[i]) }
func (s *Dense[N]) IsPositive(i int) bool { return s.domain.IsPositive(s.data[i]) }
func (s *Dense[N]) IsReal(i int) bool     { return s.domain.IsReal(s.data[i]) }

// IsZeros reports whether every touched slot is zero; an empty range is true.
func (s *Dense[N]) IsZeros(first, limit, step int) bool {
	checkRange("Dense.IsZeros", first, limit, step, len(s.data))
	for i := first; i < limit; i += step {
		if !s.domain.IsZero(s.data[i]) {
			return false
		}
	}

	return true
}

func (s *Dense[N]) SortAscending() {
	slices.SortFunc(s.data, s.domain.Compare)
}

func (s *Dense[N]) SearchAscending(key N) int {
	pos, found := slices.BinarySearchFunc(s.data, key, s.domain.Compare)
	if found {
		return pos
	}

	return -pos - 1
}

func (s *Dense[N]) Copy() Store[N] {
	return &Dense[N]{data: slices.Clone(s.data), domain: s.domain}
}
