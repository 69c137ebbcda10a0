// SPDX-License-Identifier: MIT
// Package matrix - public constructors and facades.
//
// Purpose:
//   - Provide thin entry points for common construction tasks.
//   - Each facade delegates to the canonical constructor or kernel.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal fill.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	I.arr.FillDiagonal(0, 0, 1.0)

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newResult(m, m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	I, err := newResult(m, m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	I.arr.FillDiagonal(0, 0, 1.0)

	return I, nil
}
