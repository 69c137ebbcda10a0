// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvarray/scalar"
	"github.com/katalvlaran/lvarray/store"
)

// Rendering tokens shared by String implementations.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array2D is a zero-copy column-major view of a whole store:
// (row, col) lives at store slot row + col*rowDim.
type Array2D[N any] struct {
	store  store.Store[N]
	rowDim int
	colDim int
}

// New2D views s as a rowDim x colDim array.
// MAIN DESCRIPTION:
//   - The shape is validated once here; later operations trust it.
//
// Errors:
//   - ErrNilStore when s is nil.
//   - ErrInvalidDimensions when rowDim or colDim is negative.
//   - ErrShapeMismatch when rowDim*colDim != s.Len().
func New2D[N any](s store.Store[N], rowDim, colDim int) (*Array2D[N], error) {
	if s == nil {
		return nil, fmt.Errorf("New2D: %w", ErrNilStore)
	}
	if rowDim < 0 || colDim < 0 {
		return nil, fmt.Errorf("New2D(%d,%d): %w", rowDim, colDim, ErrInvalidDimensions)
	}
	if rowDim*colDim != s.Len() {
		return nil, fmt.Errorf("New2D(%d,%d) over %d: %w", rowDim, colDim, s.Len(), ErrShapeMismatch)
	}

	return &Array2D[N]{store: s, rowDim: rowDim, colDim: colDim}, nil
}

func (a *Array2D[N]) Store() store.Store[N]    { return a.store }
func (a *Array2D[N]) Domain() scalar.Domain[N] { return a.store.Domain() }
func (a *Array2D[N]) RowDim() int              { return a.rowDim }
func (a *Array2D[N]) ColDim() int              { return a.colDim }
func (a *Array2D[N]) Count() int               { return a.rowDim * a.colDim }
func (a *Array2D[N]) IsEmpty() bool            { return a.rowDim == 0 || a.colDim == 0 }
func (a *Array2D[N]) IsSquare() bool           { return a.rowDim == a.colDim }
func (a *Array2D[N]) IsVector() bool           { return a.rowDim == 1 || a.colDim == 1 }

// Flatten returns the zero-copy column-major 1-D view of all elements.
func (a *Array2D[N]) Flatten() *Array1D[N] { return newArray1D(a.store, 0, a.store.Len(), 1) }

// DoubleValue converts (row, col) to float64.
func (a *Array2D[N]) DoubleValue(row, col int) float64 {
	return a.store.DoubleValue(a.offset("DoubleValue", row, col))
}

// offset maps (row, col) to a store slot, panicking with ErrIndexOutOfRange
// when either coordinate is outside the shape.
func (a *Array2D[N]) offset(method string, row, col int) int {
	if row < 0 || row >= a.rowDim || col < 0 || col >= a.colDim {
		panic(viewErrorf("Array2D."+method, []int{row, col}, ErrIndexOutOfRange))
	}

	return row + col*a.rowDim
}

func (a *Array2D[N]) Get(row, col int) N    { return a.store.Get(a.offset("Get", row, col)) }
func (a *Array2D[N]) Set(row, col int, v N) { a.store.Set(a.offset("Set", row, col), v) }

// ToScalar wraps (row, col) as a typed scalar.
func (a *Array2D[N]) ToScalar(row, col int) scalar.Scalar[N] {
	return a.store.ToScalar(a.offset("ToScalar", row, col))
}

func (a *Array2D[N]) IsZero(row, col int) bool     { return a.store.IsZero(a.offset("IsZero", row, col)) }
func (a *Array2D[N]) IsAbsolute(row, col int) bool { return a.store.IsAbsolute(a.offset("IsAbsolute", row, col)) }
func (a *Array2D[N]) IsPositive(row, col int) bool { return a.store.IsPositive(a.offset("IsPositive", row, col)) }
func (a *Array2D[N]) IsReal(row, col int) bool     { return a.store.IsReal(a.offset("IsReal", row, col)) }

// Addressing of the 1-D runs starting at (row, col):
//
//	column:   step 1,          count rowDim-row
//	row:      step rowDim,     count colDim-col
//	diagonal: step rowDim+1,   count min(rowDim-row, colDim-col)
func (a *Array2D[N]) column(method string, row, col int) (first, limit, step int) {
	first = a.offset(method, row, col)
	return first, limitFor(first, 1, a.rowDim-row), 1
}

func (a *Array2D[N]) row(method string, row, col int) (first, limit, step int) {
	first = a.offset(method, row, col)
	return first, limitFor(first, a.rowDim, a.colDim-col), a.rowDim
}

func (a *Array2D[N]) diagonal(method string, row, col int) (first, limit, step int) {
	first = a.offset(method, row, col)
	return first, limitFor(first, a.rowDim+1, min(a.rowDim-row, a.colDim-col)), a.rowDim + 1
}

// SliceColumn returns the zero-copy view of column col from row down.
func (a *Array2D[N]) SliceColumn(row, col int) *Array1D[N] {
	first, limit, step := a.column("SliceColumn", row, col)
	return newArray1D(a.store, first, limit, step)
}

// SliceRow returns the zero-copy view of row row from column col rightwards.
func (a *Array2D[N]) SliceRow(row, col int) *Array1D[N] {
	first, limit, step := a.row("SliceRow", row, col)
	return newArray1D(a.store, first, limit, step)
}

// SliceDiagonal returns the zero-copy view of the diagonal through (row, col).
func (a *Array2D[N]) SliceDiagonal(row, col int) *Array1D[N] {
	first, limit, step := a.diagonal("SliceDiagonal", row, col)
	return newArray1D(a.store, first, limit, step)
}

// FillAll assigns v to every element.
func (a *Array2D[N]) FillAll(v N) { a.store.Fill(0, a.store.Len(), 1, v) }

// FillRange assigns v to flat column-major slots [first, limit).
func (a *Array2D[N]) FillRange(first, limit int, v N) {
	if first < 0 || limit < first || limit > a.store.Len() {
		panic(viewErrorf("Array2D.FillRange", []int{first, limit}, ErrInvalidRange))
	}
	a.store.Fill(first, limit, 1, v)
}

func (a *Array2D[N]) FillColumn(row, col int, v N) {
	first, limit, step := a.column("FillColumn", row, col)
	a.store.Fill(first, limit, step, v)
}

func (a *Array2D[N]) FillRow(row, col int, v N) {
	first, limit, step := a.row("FillRow", row, col)
	a.store.Fill(first, limit, step, v)
}

func (a *Array2D[N]) FillDiagonal(row, col int, v N) {
	first, limit, step := a.diagonal("FillDiagonal", row, col)
	a.store.Fill(first, limit, step, v)
}

// FillAllFunc assigns successive supplier results in column-major order.
func (a *Array2D[N]) FillAllFunc(supplier func() N) {
	a.store.FillFunc(0, a.store.Len(), 1, supplier)
}

// FillMatching assigns fn(left, right) element-wise; both operands must
// have the receiver's shape.
func (a *Array2D[N]) FillMatching(left Access2D[N], fn func(l, r N) N, right Access2D[N]) {
	a.sameShape("FillMatching", left)
	a.sameShape("FillMatching", right)
	a.store.FillMatching(0, a.store.Len(), 1, columnMajor(left), fn, columnMajor(right))
}

// ModifyAll replaces every element v with fn(v).
func (a *Array2D[N]) ModifyAll(fn func(v N) N) { a.store.Modify(0, a.store.Len(), 1, fn) }

// ModifyOne replaces (row, col) with fn of its value.
func (a *Array2D[N]) ModifyOne(row, col int, fn func(v N) N) {
	i := a.offset("ModifyOne", row, col)
	a.store.Set(i, fn(a.store.Get(i)))
}

func (a *Array2D[N]) ModifyColumn(row, col int, fn func(v N) N) {
	first, limit, step := a.column("ModifyColumn", row, col)
	a.store.Modify(first, limit, step, fn)
}

func (a *Array2D[N]) ModifyRow(row, col int, fn func(v N) N) {
	first, limit, step := a.row("ModifyRow", row, col)
	a.store.Modify(first, limit, step, fn)
}

func (a *Array2D[N]) ModifyDiagonal(row, col int, fn func(v N) N) {
	first, limit, step := a.diagonal("ModifyDiagonal", row, col)
	a.store.Modify(first, limit, step, fn)
}

// ModifyMatchingLeft replaces each element v with fn(left(r,c), v).
func (a *Array2D[N]) ModifyMatchingLeft(left Access2D[N], fn func(l, v N) N) {
	a.sameShape("ModifyMatchingLeft", left)
	a.store.ModifyMatchingLeft(0, a.store.Len(), 1, columnMajor(left), fn)
}

// ModifyMatchingRight replaces each element v with fn(v, right(r,c)).
func (a *Array2D[N]) ModifyMatchingRight(fn func(v, r N) N, right Access2D[N]) {
	a.sameShape("ModifyMatchingRight", right)
	a.store.ModifyMatchingRight(0, a.store.Len(), 1, fn, columnMajor(right))
}

// VisitAll passes every element to visitor in column-major order.
func (a *Array2D[N]) VisitAll(visitor func(v N)) { a.store.Visit(0, a.store.Len(), 1, visitor) }

func (a *Array2D[N]) VisitColumn(row, col int, visitor func(v N)) {
	first, limit, step := a.column("VisitColumn", row, col)
	a.store.Visit(first, limit, step, visitor)
}

func (a *Array2D[N]) VisitRow(row, col int, visitor func(v N)) {
	first, limit, step := a.row("VisitRow", row, col)
	a.store.Visit(first, limit, step, visitor)
}

func (a *Array2D[N]) VisitDiagonal(row, col int, visitor func(v N)) {
	first, limit, step := a.diagonal("VisitDiagonal", row, col)
	a.store.Visit(first, limit, step, visitor)
}

// ExchangeRows swaps rows rowA and rowB across every column.
func (a *Array2D[N]) ExchangeRows(rowA, rowB int) {
	a.offset("ExchangeRows", rowA, 0)
	a.offset("ExchangeRows", rowB, 0)
	if rowA == rowB {
		return
	}
	a.store.Exchange(rowA, rowB, a.rowDim, a.colDim)
}

// ExchangeColumns swaps columns colA and colB across every row.
func (a *Array2D[N]) ExchangeColumns(colA, colB int) {
	a.offset("ExchangeColumns", 0, colA)
	a.offset("ExchangeColumns", 0, colB)
	if colA == colB {
		return
	}
	a.store.Exchange(colA*a.rowDim, colB*a.rowDim, 1, a.rowDim)
}

// IndexOfLargest returns the coordinates of the element with the greatest
// magnitude, first in column-major order on ties; (0, 0) when empty.
func (a *Array2D[N]) IndexOfLargest() (row, col int) {
	if a.IsEmpty() {
		return 0, 0
	}
	k := a.store.IndexOfLargest(0, a.store.Len(), 1)

	return k % a.rowDim, k / a.rowDim
}

// IndexOfLargestInColumn returns the row index of the largest element of
// column col at or below row.
func (a *Array2D[N]) IndexOfLargestInColumn(row, col int) int {
	first, limit, step := a.column("IndexOfLargestInColumn", row, col)
	return row + a.store.IndexOfLargest(first, limit, step)
}

// IndexOfLargestInRow returns the column index of the largest element of
// row row at or right of col.
func (a *Array2D[N]) IndexOfLargestInRow(row, col int) int {
	first, limit, step := a.row("IndexOfLargestInRow", row, col)
	return col + a.store.IndexOfLargest(first, limit, step)
}

// IndexOfLargestOnDiagonal returns the offset d of the largest element
// (row+d, col+d) on the diagonal through (row, col).
func (a *Array2D[N]) IndexOfLargestOnDiagonal(row, col int) int {
	first, limit, step := a.diagonal("IndexOfLargestOnDiagonal", row, col)
	return a.store.IndexOfLargest(first, limit, step)
}

// IsAllZeros reports whether every element is zero.
func (a *Array2D[N]) IsAllZeros() bool { return a.store.IsZeros(0, a.store.Len(), 1) }

// IsColumnZeros reports whether column col is zero from row down.
func (a *Array2D[N]) IsColumnZeros(row, col int) bool {
	first, limit, step := a.column("IsColumnZeros", row, col)
	return a.store.IsZeros(first, limit, step)
}

// IsRowZeros reports whether row row is zero from col rightwards.
func (a *Array2D[N]) IsRowZeros(row, col int) bool {
	first, limit, step := a.row("IsRowZeros", row, col)
	return a.store.IsZeros(first, limit, step)
}

// ToRawCopy returns the elements as row-major [][]float64.
func (a *Array2D[N]) ToRawCopy() [][]float64 {
	raw := make([][]float64, a.rowDim)
	var i, j int
	for i = 0; i < a.rowDim; i++ { // one slice per row
		raw[i] = make([]float64, a.colDim)
		for j = 0; j < a.colDim; j++ {
			raw[i][j] = a.store.DoubleValue(i + j*a.rowDim)
		}
	}

	return raw
}

// Copy returns an independent array of the same shape in a newly allocated
// store of the same kind.
func (a *Array2D[N]) Copy() *Array2D[N] {
	var s store.Store[N]
	if data, ok := flat(a.store); ok {
		s = store.WrapDense(a.store.Domain(), slices.Clone(data))
	} else {
		s = a.store.Copy()
	}

	return &Array2D[N]{store: s, rowDim: a.rowDim, colDim: a.colDim}
}

// Equals reports whether other has the same shape and element-wise equal values.
func (a *Array2D[N]) Equals(other Access2D[N]) bool {
	if other == nil || other.RowDim() != a.rowDim || other.ColDim() != a.colDim {
		return false
	}
	d := a.store.Domain()
	var i, j int
	for j = 0; j < a.colDim; j++ {
		for i = 0; i < a.rowDim; i++ {
			if !d.Equal(a.store.Get(i+j*a.rowDim), other.Get(i, j)) {
				return false
			}
		}
	}

	return true
}

// Hash returns a content hash consistent with Equals.
func (a *Array2D[N]) Hash() uint64 {
	h := newHasher(a.store.Domain())
	h.ints(a.rowDim, a.colDim)
	a.VisitAll(h.value)

	return h.sum()
}

// String renders one bracketed line per row.
func (a *Array2D[N]) String() string {
	var b strings.Builder
	d := a.store.Domain()
	var i, j int
	for i = 0; i < a.rowDim; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < a.colDim; j++ {
			b.WriteString(d.Format(a.store.Get(i + j*a.rowDim)))
			if j+1 < a.colDim {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func (a *Array2D[N]) sameShape(method string, other Access2D[N]) {
	if other.RowDim() != a.rowDim || other.ColDim() != a.colDim {
		panic(viewErrorf("Array2D."+method, []int{a.rowDim, a.colDim, other.RowDim(), other.ColDim()}, ErrLengthMismatch))
	}
}

// columnMajor adapts an Access2D as a flat column-major source.
func columnMajor[N any](src Access2D[N]) store.Source[N] {
	if arr, ok := src.(*Array2D[N]); ok {
		return newArray1D(arr.store, 0, arr.store.Len(), 1)
	}

	return columnSource[N]{src: src}
}

type columnSource[N any] struct{ src Access2D[N] }

func (c columnSource[N]) Count() int { return c.src.Count() }
func (c columnSource[N]) Get(k int) N {
	rows := c.src.RowDim()
	return c.src.Get(k%rows, k/rows)
}
