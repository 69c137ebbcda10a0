// SPDX-License-Identifier: MIT

// Package array provides zero-copy 1-D, 2-D and N-D views over lvarray
// backing stores.
//
// A view never owns data. Array1D is a (first, limit, step) projection of a
// store: logical index k lives at store index first + k*step. Array2D and
// ArrayAnyD address the whole store in column-major order:
//
//	Array2D:   offset(row, col) = row + col*rowDim
//	ArrayAnyD: offset(ref)      = Σ ref[d]*stride[d], stride[0] = 1,
//	           stride[d] = stride[d-1]*structure[d-1]
//
// Rows, columns, diagonals and N-D slices are Array1D views over the same
// store, so writes through any of them are visible through all the others.
// Copy materializes an independent store.
//
// Factories (Primitive, Big, Complex, Rational) build stores and views from
// sizes, raw float64 data, typed lists, other views or existing buffers, and
// switch to a segmented store for large allocations.
//
// Error policy:
//   - Construction (factories, New2D, NewAnyD, Reshape) returns wrapped
//     sentinel errors.
//   - Element access and range arguments are preconditions: violations panic
//     with an error wrapping ErrIndexOutOfRange, ErrInvalidRange or
//     ErrLengthMismatch, before anything is written.
//
// Views are not safe for concurrent mutation; callers serialize access.
package array
