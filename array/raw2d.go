// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
)

// Raw2D is a read-only Access2D over caller-owned [][]float64, either one
// slice per row (RawRows) or one slice per column (RawColumns). The data is
// not copied; later caller writes are visible.
type Raw2D struct {
	data        [][]float64
	rowDim      int
	colDim      int
	columnMajor bool
}

// RawRows adapts row-major data: rows[r][c].
func RawRows(rows [][]float64) (*Raw2D, error) {
	inner, err := rectangular("RawRows", rows)
	if err != nil {
		return nil, err
	}

	return &Raw2D{data: rows, rowDim: len(rows), colDim: inner}, nil
}

// RawColumns adapts column-major data: columns[c][r].
func RawColumns(columns [][]float64) (*Raw2D, error) {
	inner, err := rectangular("RawColumns", columns)
	if err != nil {
		return nil, err
	}

	return &Raw2D{data: columns, rowDim: inner, colDim: len(columns), columnMajor: true}, nil
}

// rectangular returns the common inner length or ErrRawShape for jagged input.
func rectangular(method string, data [][]float64) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	inner := len(data[0])
	for i, s := range data {
		if len(s) != inner {
			return 0, fmt.Errorf("%s: slice %d has %d values, want %d: %w", method, i, len(s), inner, ErrRawShape)
		}
	}

	return inner, nil
}

func (r *Raw2D) RowDim() int { return r.rowDim }
func (r *Raw2D) ColDim() int { return r.colDim }
func (r *Raw2D) Count() int  { return r.rowDim * r.colDim }

// Get returns (row, col); it panics with ErrIndexOutOfRange outside the shape.
func (r *Raw2D) Get(row, col int) float64 {
	if row < 0 || row >= r.rowDim || col < 0 || col >= r.colDim {
		panic(viewErrorf("Raw2D.Get", []int{row, col}, ErrIndexOutOfRange))
	}
	if r.columnMajor {
		return r.data[col][row]
	}

	return r.data[row][col]
}

// DoubleValue is Get; the data is already float64.
func (r *Raw2D) DoubleValue(row, col int) float64 { return r.Get(row, col) }
