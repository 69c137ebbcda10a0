// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise sanitizing, comparison and broadcast scaling kernels.
//   - Dense inputs run on zero-copy array views (flat store, row and
//     column slices); other Matrix implementations use At/Set.
//
// Determinism & Performance:
//   - Fixed loop orders; no hidden allocations beyond the output Dense.
//   - O(r*c) time and space for every kernel.

package matrix

import (
	"math"
)

const (
	opClip          = "Clip"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "AllClose"
	opScaleRows     = "ScaleRows"
	opScaleCols     = "ScaleCols"
)

// mapped returns out[i,j] = fn(X[i,j]) without applying the NaN/Inf policy.
func mapped(op string, X Matrix, fn func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if d, ok := X.(*Dense); ok {
		out := d.Clone().(*Dense)
		out.arr.ModifyAll(fn)

		return out, nil
	}

	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.arr.Set(i, j, fn(v))
		}
	}

	return out, nil
}

// Clip bounds every element into [lo, hi]. Swapped bounds are normalized;
// NaN elements are left as they are.
//
// Errors: ErrNilMatrix, ErrNaNInf when lo or hi is not finite.
func Clip(X Matrix, lo, hi float64) (Matrix, error) {
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return mapped(opClip, X, func(v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		default:
			return v
		}
	})
}

// ReplaceInfNaN substitutes val for every NaN or ±Inf element.
// The result is always a new matrix; X is not modified.
func ReplaceInfNaN(X Matrix, val float64) (Matrix, error) {
	return mapped(opReplaceInfNaN, X, func(v float64) float64 {
		if isNonFinite(v) {
			return val
		}
		return v
	})
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// NaN never compares close; equal infinities do.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape for negative
// or non-finite tolerances.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 || atol < 0 || isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrBadShape)
	}
	var (
		x, y float64
		err  error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if y, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !isClose(x, y, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllCloseEps is AllClose with rtol = 0 and atol = the epsilon m was built
// with (WithEpsilon).
func (m *Dense) AllCloseEps(b Matrix) (bool, error) { return AllClose(m, b, 0, m.eps) }

func isClose(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// ScaleRows computes out[i,j] = X[i,j] * scale[i].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != Rows.
func ScaleRows(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(scale, X.Rows()); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := mapped(opScaleRows, X, func(v float64) float64 { return v })
	if err != nil {
		return nil, err
	}
	for i, s := range scale {
		out.arr.SliceRow(i, 0).ModifyAllRight(mul, s)
	}

	return out, nil
}

// ScaleCols computes out[i,j] = X[i,j] * scale[j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != Cols.
func ScaleCols(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(scale, X.Cols()); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out, err := mapped(opScaleCols, X, func(v float64) float64 { return v })
	if err != nil {
		return nil, err
	}
	for j, s := range scale {
		out.arr.SliceColumn(0, j).ModifyAllRight(mul, s)
	}

	return out, nil
}
