// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/katalvlaran/lvarray/scalar"
)

// Segmented is a logical buffer split into Dense segments of size elements.
// Every segment but the last holds exactly size slots; the last holds the
// remainder (or size when the remainder is zero). Index i lives in segment
// i/size at local index i%size, re-derived on every access.
//
// Bulk operations with step <= size walk whole segments and delegate a
// sub-range to each; larger steps fall back to one element at a time.
type Segmented[N any] struct {
	segments []*Dense[N]
	size     int // elements per full segment
	length   int
	domain   scalar.Domain[N]
}

// Compile-time assertion.
var _ Store[float64] = (*Segmented[float64])(nil)

// NewSegmented allocates n zeroed slots split into segments. The segment
// size defaults to SegmentSize(sizeof(N)).
// It panics with ErrInvalidLength when n < 0.
func NewSegmented[N any](d scalar.Domain[N], n int, opts ...Option) *Segmented[N] {
	if n < 0 {
		panic(fmt.Errorf("NewSegmented(%d): %w", n, ErrInvalidLength))
	}
	o := gatherOptions(opts...)
	size := o.segmentSize
	if size == 0 {
		var zero N
		size = SegmentSize(unsafe.Sizeof(zero))
		logger.WithDomain(d.Name()).LogSegmentSize(cacheBytes, unsafe.Sizeof(zero), size)
	}

	count := (n + size - 1) / size
	segments := make([]*Dense[N], count)
	for i := range segments {
		l := size
		if i == count-1 && n%size != 0 {
			l = n % size
		}
		segments[i] = NewDense(d, l)
	}
	logger.WithDomain(d.Name()).LogSegmented(n, size, count)

	return &Segmented[N]{segments: segments, size: size, length: n, domain: d}
}

// NewSegmentedPrimitive allocates a segmented float64 store.
func NewSegmentedPrimitive(n int, opts ...Option) *Segmented[float64] {
	return NewSegmented[float64](scalar.Primitive{}, n, opts...)
}

// SegmentLen returns the number of elements per full segment.
func (s *Segmented[N]) SegmentLen() int { return s.size }

// Segments returns the number of segments.
func (s *Segmented[N]) Segments() int { return len(s.segments) }

func (s *Segmented[N]) Len() int                 { return s.length }
func (s *Segmented[N]) Domain() scalar.Domain[N] { return s.domain }

func (s *Segmented[N]) locate(i int) (*Dense[N], int) {
	if i < 0 || i >= s.length {
		panic(fmt.Errorf("Segmented.locate(%d): %w", i, ErrIndexOutOfRange))
	}

	return s.segments[i/s.size], i % s.size
}

func (s *Segmented[N]) Get(i int) N {
	seg, local := s.locate(i)
	return seg.data[local]
}

func (s *Segmented[N]) Set(i int, v N) {
	seg, local := s.locate(i)
	seg.data[local] = v
}

func (s *Segmented[N]) DoubleValue(i int) float64 { return s.domain.Float(s.Get(i)) }

func (s *Segmented[N]) ToScalar(i int) scalar.Scalar[N] { return scalar.Of(s.domain, s.Get(i)) }

// each translates a logical (first, limit, step) into per-segment local
// ranges and calls run for each non-empty one. k is the logical index (0 for
// first) of the first slot touched in that local range.
//
// For step <= size the local first of each following segment is the offset
// at which the stride re-enters a fresh segment:
// (step - (size - prevLocalFirst) % step) % step. The step itself never
// changes. For step > size every touched slot is its own one-element range.
func (s *Segmented[N]) each(first, limit, step int, run func(seg *Dense[N], localFirst, localLimit, k int)) {
	if first >= limit {
		return
	}
	size := s.size

	if step > size {
		for i, k := first, 0; i < limit; i, k = i+step, k+1 {
			local := i % size
			run(s.segments[i/size], local, local+1, k)
		}
		return
	}

	firstSeg, lastSeg := first/size, (limit-1)/size
	localFirst := first % size
	k := 0
	for idx := firstSeg; idx <= lastSeg; idx++ {
		seg := s.segments[idx]
		localLimit := len(seg.data)
		if idx == lastSeg {
			localLimit = (limit-1)%size + 1
		}
		if localFirst < localLimit {
			run(seg, localFirst, localLimit, k)
			k += Count(localFirst, localLimit, step)
		}
		localFirst = (step - (size-localFirst)%step) % step
	}
}

func (s *Segmented[N]) Fill(first, limit, step int, v N) {
	checkRange("Segmented.Fill", first, limit, step, s.length)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		seg.Fill(lf, ll, step, v)
	})
}

func (s *Segmented[N]) FillFunc(first, limit, step int, supplier func() N) {
	checkRange("Segmented.FillFunc", first, limit, step, s.length)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		seg.FillFunc(lf, ll, step, supplier)
	})
}

func (s *Segmented[N]) FillMatching(first, limit, step int, left Source[N], fn func(l, r N) N, right Source[N]) {
	checkRange("Segmented.FillMatching", first, limit, step, s.length)
	checkSource("Segmented.FillMatching", first, limit, step, left)
	checkSource("Segmented.FillMatching", first, limit, step, right)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, k int) {
		seg.FillMatching(lf, ll, step, shift(left, k), fn, shift(right, k))
	})
}

// Exchange walks both cursors element by element; they may sit in
// different segments.
func (s *Segmented[N]) Exchange(firstA, firstB, step, count int) {
	checkExchange("Segmented.Exchange", firstA, firstB, step, count, s.length)
	a, b := firstA, firstB
	for n := 0; n < count; n++ {
		segA, la := s.locate(a)
		segB, lb := s.locate(b)
		segA.data[la], segB.data[lb] = segB.data[lb], segA.data[la]
		a += step
		b += step
	}
}

func (s *Segmented[N]) Modify(first, limit, step int, fn func(v N) N) {
	checkRange("Segmented.Modify", first, limit, step, s.length)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		seg.Modify(lf, ll, step, fn)
	})
}

func (s *Segmented[N]) ModifyLeft(first, limit, step int, left N, fn func(l, v N) N) {
	checkRange("Segmented.ModifyLeft", first, limit, step, s.length)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		seg.ModifyLeft(lf, ll, step, left, fn)
	})
}

func (s *Segmented[N]) ModifyRight(first, limit, step int, fn func(v, r N) N, right N) {
	checkRange("Segmented.ModifyRight", first, limit, step, s.length)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		seg.ModifyRight(lf, ll, step, fn, right)
	})
}

func (s *Segmented[N]) ModifyMatchingLeft(first, limit, step int, left Source[N], fn func(l, v N) N) {
	checkRange("Segmented.ModifyMatchingLeft", first, limit, step, s.length)
	checkSource("Segmented.ModifyMatchingLeft", first, limit, step, left)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, k int) {
		seg.ModifyMatchingLeft(lf, ll, step, shift(left, k), fn)
	})
}

func (s *Segmented[N]) ModifyMatchingRight(first, limit, step int, fn func(v, r N) N, right Source[N]) {
	checkRange("Segmented.ModifyMatchingRight", first, limit, step, s.length)
	checkSource("Segmented.ModifyMatchingRight", first, limit, step, right)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, k int) {
		seg.ModifyMatchingRight(lf, ll, step, fn, shift(right, k))
	})
}

func (s *Segmented[N]) Visit(first, limit, step int, visitor func(v N)) {
	checkRange("Segmented.Visit", first, limit, step, s.length)
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		seg.Visit(lf, ll, step, visitor)
	})
}

// IndexOfLargest keeps a best-so-far across segments; a later segment wins
// only with a strictly greater magnitude, so ties resolve to the first
// occurrence exactly as on a Dense store.
func (s *Segmented[N]) IndexOfLargest(first, limit, step int) int {
	checkRange("Segmented.IndexOfLargest", first, limit, step, s.length)
	best, bestMag := 0, -1.0
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, k int) {
		local := seg.IndexOfLargest(lf, ll, step)
		if mag := s.domain.Magnitude(seg.data[lf+local*step]); mag > bestMag {
			best, bestMag = k+local, mag
		}
	})

	return best
}

func (s *Segmented[N]) IsZero(i int) bool     { return s.domain.IsZero(s.Get(i)) }
func (s *Segmented[N]) IsAbsolute(i int) bool { return s.domain.IsAbsolute(s.Get(i)) }
func (s *Segmented[N]) IsPositive(i int) bool { return s.domain.IsPositive(s.Get(i)) }
func (s *Segmented[N]) IsReal(i int) bool     { return s.domain.IsReal(s.Get(i)) }

func (s *Segmented[N]) IsZeros(first, limit, step int) bool {
	checkRange("Segmented.IsZeros", first, limit, step, s.length)
	zeros := true
	s.each(first, limit, step, func(seg *Dense[N], lf, ll, _ int) {
		if zeros && !seg.IsZeros(lf, ll, step) {
			zeros = false
		}
	})

	return zeros
}

// SortAscending sorts across segment boundaries in place through the
// logical index space.
func (s *Segmented[N]) SortAscending() {
	sort.Sort(logicalOrder[N]{s})
}

// SearchAscending binary-searches the logical index space.
func (s *Segmented[N]) SearchAscending(key N) int {
	pos := sort.Search(s.length, func(i int) bool {
		return s.domain.Compare(s.Get(i), key) >= 0
	})
	if pos < s.length && s.domain.Compare(s.Get(pos), key) == 0 {
		return pos
	}

	return -pos - 1
}

func (s *Segmented[N]) Copy() Store[N] {
	segments := make([]*Dense[N], len(s.segments))
	for i, seg := range s.segments {
		segments[i] = seg.Copy().(*Dense[N])
	}

	return &Segmented[N]{segments: segments, size: s.size, length: s.length, domain: s.domain}
}

// logicalOrder adapts a Segmented store to sort.Interface.
type logicalOrder[N any] struct{ s *Segmented[N] }

func (o logicalOrder[N]) Len() int { return o.s.length }

func (o logicalOrder[N]) Less(i, j int) bool {
	return o.s.domain.Compare(o.s.Get(i), o.s.Get(j)) < 0
}

func (o logicalOrder[N]) Swap(i, j int) { o.s.Exchange(i, j, 1, 1) }

// shifted re-bases a Source so that element 0 is src[offset].
type shifted[N any] struct {
	src    Source[N]
	offset int
}

func shift[N any](src Source[N], offset int) Source[N] {
	if offset == 0 {
		return src
	}

	return shifted[N]{src: src, offset: offset}
}

func (s shifted[N]) Count() int  { return s.src.Count() - s.offset }
func (s shifted[N]) Get(k int) N { return s.src.Get(k + s.offset) }
