// SPDX-License-Identifier: MIT

// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, Hadamard product, matrix
// multiplication, transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvarray/array"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResult allocates a zero result shaped rows×cols, inheriting storage and
// numeric policy from src when it is a *Dense.
func newResult(src Matrix, rows, cols int) (*Dense, error) {
	if d, ok := src.(*Dense); ok {
		return d.like(rows, cols), nil
	}

	return NewDense(rows, cols)
}

// elementwise evaluates out[i,j] = fn(a[i,j], b[i,j]).
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): clone a when both operands are Dense, else allocate.
// Stage 3 (Execute): flat zip over both stores, or the At/Set fallback.
// Complexity: O(r·c) time and memory.
func elementwise(op string, a, b Matrix, fn func(x, y float64) float64) (Matrix, error) {
	// Stage 1: Validate
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 2+3: Fast-path for two Dense matrices (same column-major layout)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			res := da.Clone().(*Dense)
			res.arr.Flatten().ModifyMatchingRight(fn, db.arr.Flatten())

			return res, nil
		}
	}

	// Fallback: generic interface loop
	rows, cols := a.Rows(), a.Cols()
	res, err := newResult(a, rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var (
		i, j   int // loop iterators
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			res.arr.Set(i, j, fn(av, bv)) // in bounds by construction
		}
	}

	return res, nil
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }

// Add returns a new Matrix containing the element-wise sum of a and b.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (Matrix, error) { return elementwise(opAdd, a, b, add) }

// Sub returns a new Matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) { return elementwise(opSub, a, b, sub) }

// Hadamard returns the element-wise product a ⊙ b.
// Complexity: O(r·c) time and memory.
func Hadamard(a, b Matrix) (Matrix, error) { return elementwise(opHadamard, a, b, mul) }

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): column axpy on Dense (res[:,j] += b[k,j]·a[:,k]),
// or the i-j-k triple loop for other implementations.
// Stage 4 (Finalize): return result.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResult(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var out *array.Array1D[float64]
			for j = 0; j < bCols; j++ {
				out = res.arr.SliceColumn(0, j)
				for k = 0; k < aCols; k++ {
					bv = db.arr.Get(k, j)
					if bv == 0 {
						continue // skip zero for performance
					}
					factor := bv
					out.ModifyMatchingRight(func(v, x float64) float64 { return v + factor*x }, da.arr.SliceColumn(0, k))
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue // skip zero for performance
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv // accumulate product
			}
			res.arr.Set(i, j, current)
		}
	}

	// Stage 4: Return result
	return res, nil
}

// MatVec computes y = m·x. len(x) must equal m.Cols().
// Complexity: O(r·c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	if dm, ok := m.(*Dense); ok {
		y := array.Primitive.Wrap(out) // writes land in out
		for k := 0; k < cols; k++ {
			if x[k] == 0 {
				continue
			}
			factor := x[k]
			y.ModifyMatchingRight(func(v, a float64) float64 { return v + factor*a }, dm.arr.SliceColumn(0, k))
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			out[i] += v * x[j]
		}
	}

	return out, nil
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): copy column j of m into row j of the result on Dense,
// else the At/Set loop.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 2: Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := newResult(m, cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 3: Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		for j = 0; j < cols; j++ {
			res.arr.SliceRow(j, 0).ModifyMatchingRight(func(_, v float64) float64 { return v }, dm.arr.SliceColumn(0, j))
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.arr.Set(j, i, v)
		}
	}

	return res, nil
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Stage 2: Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		res := dm.Clone().(*Dense)
		res.arr.Flatten().ModifyAllRight(mul, alpha)

		return res, nil
	}

	// Fallback: generic interface loop
	rows, cols := m.Rows(), m.Cols()
	res, err := newResult(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.arr.Set(i, j, v*alpha)
		}
	}

	return res, nil
}
