// SPDX-License-Identifier: MIT

// Package aggregator provides folds over the values of a view or store range.
//
// An Aggregator is a pure value: a seed, a step function returning the next
// accumulator and an optional finishing transform. Folding never mutates the
// aggregator, so one Aggregator can be reused across ranges and goroutines.
//
//	sum := aggregator.Fold(view, aggregator.Sum[float64](scalar.Primitive{}))
//	norm := aggregator.Over(func(f func(float64)) { m.VisitRow(r, 0, f) },
//		aggregator.Norm2[float64](scalar.Primitive{}))
package aggregator
