// SPDX-License-Identifier: MIT

package array

import (
	"github.com/katalvlaran/lvarray/store"
)

// Access1D is read access by logical index. Array1D implements it, and it
// satisfies store.Source so any Access1D can feed element-wise operations.
type Access1D[N any] interface {
	Count() int
	Get(k int) N
	DoubleValue(k int) float64
}

// Access2D is read access by (row, col). Array2D and Raw2D implement it.
type Access2D[N any] interface {
	RowDim() int
	ColDim() int
	Count() int
	Get(row, col int) N
	DoubleValue(row, col int) float64
}

// Generator supplies uniform random numbers in [0, 1); *rand.Rand from
// math/rand/v2 satisfies it.
type Generator interface {
	Float64() float64
}

var (
	_ store.Source[float64] = Access1D[float64](nil)
	_ Access1D[float64]     = (*Array1D[float64])(nil)
	_ Access2D[float64]     = (*Array2D[float64])(nil)
	_ Access2D[float64]     = (*Raw2D)(nil)
)

// flat returns the backing slice when s is a contiguous Dense store.
func flat[N any](s store.Store[N]) ([]N, bool) {
	if d, ok := s.(*store.Dense[N]); ok {
		return d.Data(), true
	}

	return nil, false
}

// limitFor returns the exclusive store limit of count elements starting at
// first with the given step.
func limitFor(first, step, count int) int {
	if count <= 0 {
		return first
	}

	return first + (count-1)*step + 1
}

// newLike allocates an empty store of the same kind as s (segmented stays
// segmented with the same segment size).
func newLike[N any](s store.Store[N], count int) store.Store[N] {
	if seg, ok := s.(*store.Segmented[N]); ok {
		return store.NewSegmented(s.Domain(), count, store.WithSegmentSize(seg.SegmentLen()))
	}

	return store.NewDense(s.Domain(), count)
}
