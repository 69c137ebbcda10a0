// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row/column reductions and row normalization built on the aggregator
//     folds over zero-copy row and column views.
//
// Zero-size policy:
//   - Dense matrices are never empty; degenerate rows (norm 0) are left
//     unchanged by normalization.

package matrix

import (
	"github.com/katalvlaran/lvarray/aggregator"
	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/scalar"
)

const (
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
)

var primitive = scalar.Primitive{}

// asDense returns X itself when it is a *Dense, otherwise a Dense copy.
func asDense(op string, X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if d, ok := X.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(X.Rows(), X.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var v float64
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			d.arr.Set(i, j, v)
		}
	}

	return d, nil
}

// reduce folds each row (byRow) or column of X with agg.
func reduce(op string, X Matrix, byRow bool, agg aggregator.Aggregator[float64, float64]) ([]float64, error) {
	d, err := asDense(op, X)
	if err != nil {
		return nil, err
	}
	n := d.Cols()
	if byRow {
		n = d.Rows()
	}
	out := make([]float64, n)
	var line *array.Array1D[float64]
	for k := range n {
		if byRow {
			line = d.arr.SliceRow(k, 0)
		} else {
			line = d.arr.SliceColumn(0, k)
		}
		out[k] = aggregator.Fold[float64, float64](line, agg)
	}

	return out, nil
}

// RowSums returns Σ_j X[i,j] for every row i.
func RowSums(X Matrix) ([]float64, error) {
	return reduce(opRowSums, X, true, aggregator.Sum[float64](primitive))
}

// ColSums returns Σ_i X[i,j] for every column j.
func ColSums(X Matrix) ([]float64, error) {
	return reduce(opColSums, X, false, aggregator.Sum[float64](primitive))
}

// normalizeRows divides each row by its norm; rows with norm 0 stay as is.
func normalizeRows(op string, X Matrix, norm aggregator.Aggregator[float64, float64]) (Matrix, []float64, error) {
	norms, err := reduce(op, X, true, norm)
	if err != nil {
		return nil, nil, err
	}
	scale := make([]float64, len(norms))
	for i, n := range norms {
		scale[i] = 1.0
		if n > 0 {
			scale[i] = 1.0 / n
		}
	}
	out, err := ScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(op, err)
	}

	return out, norms, nil
}

// NormalizeRowsL1 scales every row to unit L1 norm (Σ_j |x_ij| = 1) and
// returns the original norms.
//
// Complexity: O(r*c) time and space.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	return normalizeRows(opNormalizeRowsL1, X, aggregator.Norm1[float64](primitive))
}

// NormalizeRowsL2 scales every row to unit Euclidean norm and returns the
// original norms.
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	return normalizeRows(opNormalizeRowsL2, X, aggregator.Norm2[float64](primitive))
}
