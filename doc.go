// SPDX-License-Identifier: MIT

// Package lvarray is a generic numeric array library: one storage engine
// and one set of strided views shared by four scalar domains.
//
// What is inside:
//
//	scalar/     - Domain[N] adapters: float64, decimal, complex128, rational
//	store/      - Store[N] backends: Dense (one slice) and Segmented (fixed-size chunks)
//	array/      - Array1D, Array2D, ArrayAnyD views, Factory, Raw2D adapter
//	aggregator/ - folds (Sum, Norm2, Largest, ...) over any visitable view
//	matrix/     - error-returning float64 Matrix surface over Array2D
//
// Quick example:
//
//	a, _ := array.Primitive.Make2D(3, 3)
//	a.FillDiagonal(0, 0, 1)
//	col := a.SliceColumn(0, 1) // zero-copy view of column 1
//	col.Set(0, 5)
//	fmt.Print(a)
//
// Every view is a (first, limit, step) addressing over a store, so slicing
// never copies and writes through any view are visible in every other view
// of the same store. Large allocations are segmented automatically.
package lvarray
