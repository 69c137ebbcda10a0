// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"unsafe"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvarray/scalar"
	"github.com/katalvlaran/lvarray/store"
)

// Factory builds stores and views of one scalar domain. Factories are
// immutable; With returns a reconfigured copy.
type Factory[N any] struct {
	domain scalar.Domain[N]
	opts   Options
}

// Per-domain factories with default options.
var (
	Primitive = NewFactory[float64](scalar.Primitive{})
	Big       = NewFactory[decimal.Decimal](scalar.Big{})
	Complex   = NewFactory[complex128](scalar.Complex{})
	Rational  = NewFactory[scalar.Rational](scalar.RationalDomain{})
)

// NewFactory returns a factory for domain d.
func NewFactory[N any](d scalar.Domain[N], opts ...Option) *Factory[N] {
	return &Factory[N]{domain: d, opts: gatherOptions(defaultOptions(), opts...)}
}

// With returns a copy of f with opts applied on top of its options.
func (f *Factory[N]) With(opts ...Option) *Factory[N] {
	return &Factory[N]{domain: f.domain, opts: gatherOptions(f.opts, opts...)}
}

// Domain returns the factory's scalar domain.
func (f *Factory[N]) Domain() scalar.Domain[N] { return f.domain }

// segmentSize resolves the elements per segment for N.
func (f *Factory[N]) segmentSize() int {
	if f.opts.segmentSize > 0 {
		return f.opts.segmentSize
	}
	var zero N

	return store.SegmentSize(unsafe.Sizeof(zero))
}

// NewStore allocates count zeroed slots: a Dense store, or a Segmented one
// when segmentation is enabled and count exceeds the threshold.
// It panics when count < 0; the Make* methods validate first.
func (f *Factory[N]) NewStore(count int) store.Store[N] {
	if !f.opts.segmentation {
		return store.NewDense(f.domain, count)
	}
	size := f.segmentSize()
	threshold := f.opts.threshold
	if threshold == 0 {
		threshold = size
	}
	if count > threshold {
		return store.NewSegmented(f.domain, count, store.WithSegmentSize(size))
	}

	return store.NewDense(f.domain, count)
}

// Make1D allocates a zeroed 1-D array of count elements.
func (f *Factory[N]) Make1D(count int) (*Array1D[N], error) {
	if count < 0 {
		return nil, fmt.Errorf("Make1D(%d): %w", count, ErrInvalidDimensions)
	}

	return newArray1D(f.NewStore(count), 0, count, 1), nil
}

// Make2D allocates a zeroed rowDim x colDim array.
func (f *Factory[N]) Make2D(rowDim, colDim int) (*Array2D[N], error) {
	if rowDim < 0 || colDim < 0 {
		return nil, fmt.Errorf("Make2D(%d,%d): %w", rowDim, colDim, ErrInvalidDimensions)
	}

	return &Array2D[N]{store: f.NewStore(rowDim * colDim), rowDim: rowDim, colDim: colDim}, nil
}

// MakeAnyD allocates a zeroed array with the given structure.
func (f *Factory[N]) MakeAnyD(structure ...int) (*ArrayAnyD[N], error) {
	count, err := countOf("MakeAnyD", structure)
	if err != nil {
		return nil, err
	}

	return newArrayAnyD(f.NewStore(count), structure), nil
}

// random converts the next generator sample into the domain.
func (f *Factory[N]) random(gen Generator) func() N {
	return func() N { return f.domain.FromFloat(gen.Float64()) }
}

// MakeRandom1D allocates count elements drawn from gen.
func (f *Factory[N]) MakeRandom1D(count int, gen Generator) (*Array1D[N], error) {
	a, err := f.Make1D(count)
	if err != nil {
		return nil, err
	}
	a.FillAllFunc(f.random(gen))

	return a, nil
}

// MakeRandom2D allocates a rowDim x colDim array drawn from gen in
// column-major order.
func (f *Factory[N]) MakeRandom2D(rowDim, colDim int, gen Generator) (*Array2D[N], error) {
	a, err := f.Make2D(rowDim, colDim)
	if err != nil {
		return nil, err
	}
	a.FillAllFunc(f.random(gen))

	return a, nil
}

// MakeRandomAnyD allocates an array with the given structure drawn from gen.
func (f *Factory[N]) MakeRandomAnyD(gen Generator, structure ...int) (*ArrayAnyD[N], error) {
	a, err := f.MakeAnyD(structure...)
	if err != nil {
		return nil, err
	}
	a.FillAllFunc(f.random(gen))

	return a, nil
}

// Copy1D copies any logically indexed source (including another view).
func (f *Factory[N]) Copy1D(src store.Source[N]) *Array1D[N] {
	n := src.Count()
	s := f.NewStore(n)
	for k := range n {
		s.Set(k, src.Get(k))
	}

	return newArray1D(s, 0, n, 1)
}

// Copy2D copies any 2-D source of the same domain.
func (f *Factory[N]) Copy2D(src Access2D[N]) *Array2D[N] {
	rows, cols := src.RowDim(), src.ColDim()
	s := f.NewStore(rows * cols)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			s.Set(i+j*rows, src.Get(i, j))
		}
	}

	return &Array2D[N]{store: s, rowDim: rows, colDim: cols}
}

// CopyRaw converts float64 values into the domain.
func (f *Factory[N]) CopyRaw(values ...float64) *Array1D[N] {
	s := f.NewStore(len(values))
	for k, v := range values {
		s.Set(k, f.domain.FromFloat(v))
	}

	return newArray1D(s, 0, len(values), 1)
}

// CopyRaw2D converts row-major float64 data into the domain.
// Jagged input yields ErrRawShape.
func (f *Factory[N]) CopyRaw2D(rows [][]float64) (*Array2D[N], error) {
	raw, err := RawRows(rows)
	if err != nil {
		return nil, fmt.Errorf("CopyRaw2D: %w", err)
	}

	return f.Convert2D(raw), nil
}

// Convert2D converts any float64-valued 2-D source (a Raw2D or a primitive
// Array2D) into the domain.
func (f *Factory[N]) Convert2D(src Access2D[float64]) *Array2D[N] {
	rows, cols := src.RowDim(), src.ColDim()
	s := f.NewStore(rows * cols)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			s.Set(i+j*rows, f.domain.FromFloat(src.DoubleValue(i, j)))
		}
	}

	return &Array2D[N]{store: s, rowDim: rows, colDim: cols}
}

// CopyList copies typed values.
func (f *Factory[N]) CopyList(values ...N) *Array1D[N] {
	s := f.NewStore(len(values))
	for k, v := range values {
		s.Set(k, v)
	}

	return newArray1D(s, 0, len(values), 1)
}

// Wrap views buffer without copying; writes through the view are visible
// in buffer. Wrapped buffers are never segmented.
func (f *Factory[N]) Wrap(buffer []N) *Array1D[N] {
	return newArray1D[N](store.WrapDense(f.domain, buffer), 0, len(buffer), 1)
}

// Wrap2D views a column-major buffer as rowDim rows without copying.
// len(buffer) must be a multiple of rowDim.
func (f *Factory[N]) Wrap2D(buffer []N, rowDim int) (*Array2D[N], error) {
	if rowDim < 0 || (rowDim == 0 && len(buffer) > 0) {
		return nil, fmt.Errorf("Wrap2D(%d): %w", rowDim, ErrInvalidDimensions)
	}
	colDim := 0
	if rowDim > 0 {
		if len(buffer)%rowDim != 0 {
			return nil, fmt.Errorf("Wrap2D(%d) over %d: %w", rowDim, len(buffer), ErrShapeMismatch)
		}
		colDim = len(buffer) / rowDim
	}

	return &Array2D[N]{store: store.WrapDense(f.domain, buffer), rowDim: rowDim, colDim: colDim}, nil
}

// WrapAnyD views buffer with the given structure without copying.
func (f *Factory[N]) WrapAnyD(buffer []N, structure ...int) (*ArrayAnyD[N], error) {
	return NewAnyD[N](store.WrapDense(f.domain, buffer), structure...)
}
