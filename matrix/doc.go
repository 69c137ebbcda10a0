// SPDX-License-Identifier: MIT

// Package matrix offers a float64 Matrix surface over lvarray views.
//
// The matrix package provides:
//
//   - Dense, a rows×cols matrix stored column-major in an
//     array.Array2D[float64], with error-returning At/Set and an optional
//     NaN/Inf guard.
//   - MatrixView, a no-copy window into a Dense.
//   - Element-wise kernels (Add, Sub, Hadamard, Scale, Clip, ReplaceInfNaN,
//     AllClose), products (Mul, MatVec), Transpose, and row/column
//     statistics built on the array and aggregator packages.
//
// Row(i), Col(j) and Diag() hand out zero-copy *array.Array1D views, so any
// array operation (sorting, folds, zip kernels) can run on a matrix slice
// and write straight back into the matrix.
//
// Unlike the array package, the matrix surface never panics on user input:
// every failure is a wrapped sentinel error matched with errors.Is.
package matrix
