// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major array view) & safe accessors.
//
// Purpose:
//   - Keep the Matrix surface error-returning while the storage lives in an
//     array.Array2D[float64] (offset = row + col*rows).
//   - Hand out zero-copy row, column and diagonal views for array kernels.
//   - Support no-copy windows (MatrixView) and copy-based extraction (Induced).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1); Induced: O(r'*c').

package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvarray/array"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxApply  = "Apply"   // method tag used in error wrappers
	ctxView   = "View"    // ctor tag for Dense.View
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
	ctxRow    = "Row"     // accessor tag for Dense.Row
	ctxCol    = "Col"     // accessor tag for Dense.Col
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix over a column-major array view.
//   - arr holds the values; arr.RowDim()/ColDim() are the dimensions.
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
//   - eps is the tolerance used by AllCloseEps.
type Dense struct {
	arr            *array.Array2D[float64] // shared with Row/Col/Diag views
	fac            *array.Factory[float64] // allocates results with the same storage options
	validateNaNInf bool                    // numeric guard: reject NaN/Inf in Set when true
	eps            float64                 // tolerance inherited by clones
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and numeric policy from options.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	fac := o.factory()
	arr, err := fac.Make2D(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense{arr: arr, fac: fac, validateNaNInf: o.validateNaNInf, eps: o.eps}, nil
}

// FromRows copies row-major data into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrBadShape for jagged input.
//   - ErrNaNInf for non-finite values under the default policy.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	fac := o.factory()
	arr, err := fac.CopyRaw2D(rows)
	if errors.Is(err, array.ErrRawShape) {
		return nil, fmt.Errorf("FromRows: %w: %w", ErrBadShape, err)
	}
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	m := &Dense{arr: arr, fac: fac, validateNaNInf: o.validateNaNInf, eps: o.eps}
	if m.validateNaNInf {
		var bad error
		m.Do(func(i, j int, v float64) bool {
			if isNonFinite(v) {
				bad = denseErrorf("FromRows", i, j, ErrNaNInf)
				return false
			}
			return true
		})
		if bad != nil {
			return nil, bad
		}
	}

	return m, nil
}

// like allocates a zero matrix with m's policy and the given shape.
func (m *Dense) like(rows, cols int) *Dense {
	arr, _ := m.fac.Make2D(rows, cols) // shape already validated

	return &Dense{arr: arr, fac: m.fac, validateNaNInf: m.validateNaNInf, eps: m.eps}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.arr.RowDim() }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.arr.ColDim() }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.arr.RowDim(), m.arr.ColDim() }

// Array exposes the backing 2-D view; writes through it bypass the NaN/Inf guard.
func (m *Dense) Array() *array.Array2D[float64] { return m.arr }

func (m *Dense) inRange(row, col int) bool {
	return row >= 0 && row < m.arr.RowDim() && col >= 0 && col < m.arr.ColDim()
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inRange(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.arr.Get(row, col), nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inRange(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.arr.Set(row, col, v)

	return nil
}

// Row returns the zero-copy view of row i.
func (m *Dense) Row(i int) (*array.Array1D[float64], error) {
	if !m.inRange(i, 0) {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.arr.SliceRow(i, 0), nil
}

// Col returns the zero-copy view of column j.
func (m *Dense) Col(j int) (*array.Array1D[float64], error) {
	if !m.inRange(0, j) {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.arr.SliceColumn(0, j), nil
}

// Diag returns the zero-copy view of the main diagonal.
func (m *Dense) Diag() *array.Array1D[float64] { return m.arr.SliceDiagonal(0, 0) }

// Clone returns a deep copy (new store, same numeric policy).
func (m *Dense) Clone() Matrix {
	return &Dense{arr: m.arr.Copy(), fac: m.fac, validateNaNInf: m.validateNaNInf, eps: m.eps}
}

// String provides a readable row-wise dump for diagnostics.
func (m *Dense) String() string { return m.arr.String() }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	rows, cols := m.Shape()
	var i, j int
	for i = 0; i < rows; i++ { // iterate rows deterministically
		for j = 0; j < cols; j++ {
			if !f(i, j, m.arr.Get(i, j)) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Under the NaN/Inf policy the first non-finite result stops the pass and
// is reported; elements visited before it keep their new values.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	rows, cols := m.Shape()
	var i, j int
	var nv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			nv = f(i, j, m.arr.Get(i, j))
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.arr.Set(i, j, nv)
		}
	}

	return nil
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// Zero-area windows are legal.
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy submatrix using explicit index sets.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.Rows() {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.Cols() {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	res := m.like(len(rowsIdx), len(colsIdx))
	for j, cj := range colsIdx {
		for i, ri := range rowsIdx {
			res.arr.Set(i, j, m.arr.Get(ri, cj))
		}
	}

	return res, nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
// Not implementing Matrix interface to avoid accidental copies in ops.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.arr.Get(v.r0+i, v.c0+j), nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.arr.Set(v.r0+i, v.c0+j, val) // write through

	return nil
}

// Col returns the zero-copy view of window column j.
func (v *MatrixView) Col(j int) (*array.Array1D[float64], error) {
	if j < 0 || j >= v.c || v.r == 0 {
		return nil, fmt.Errorf("MatrixView.Col(%d): %w", j, ErrOutOfRange)
	}

	return v.base.arr.SliceColumn(v.r0, v.c0+j).SubList(0, v.r), nil
}

// Row returns the zero-copy view of window row i.
func (v *MatrixView) Row(i int) (*array.Array1D[float64], error) {
	if i < 0 || i >= v.r || v.c == 0 {
		return nil, fmt.Errorf("MatrixView.Row(%d): %w", i, ErrOutOfRange)
	}

	return v.base.arr.SliceRow(v.r0+i, v.c0).SubList(0, v.c), nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
