// SPDX-License-Identifier: MIT

package aggregator

import (
	"math"

	"github.com/katalvlaran/lvarray/scalar"
)

// Aggregator folds values of type N into an accumulator of type A.
type Aggregator[N, A any] struct {
	// Seed is the accumulator before the first value.
	Seed A
	// Step returns the accumulator after observing v.
	Step func(acc A, v N) A
	// Finish, when set, transforms the final accumulator.
	Finish func(acc A) A
}

// Visitable streams its values in traversal order.
type Visitable[N any] interface {
	VisitAll(visitor func(v N))
}

// Fold runs agg over every value of src.
func Fold[N, A any](src Visitable[N], agg Aggregator[N, A]) A {
	return Over(src.VisitAll, agg)
}

// Over runs agg over the values produced by visit, e.g. a method value such
// as view.VisitRange bound through a closure.
func Over[N, A any](visit func(visitor func(v N)), agg Aggregator[N, A]) A {
	acc := agg.Seed
	visit(func(v N) { acc = agg.Step(acc, v) })
	if agg.Finish != nil {
		acc = agg.Finish(acc)
	}

	return acc
}

// Extreme is the accumulator of Min and Max. Valid is false when no value
// was observed.
type Extreme[N any] struct {
	Value N
	Valid bool
}

// Sum adds every value.
func Sum[N any](d scalar.Domain[N]) Aggregator[N, N] {
	return Aggregator[N, N]{Seed: d.Zero(), Step: d.Add}
}

// Product multiplies every value; the empty product is one.
func Product[N any](d scalar.Domain[N]) Aggregator[N, N] {
	return Aggregator[N, N]{Seed: d.One(), Step: d.Multiply}
}

// Min tracks the smallest value under the domain order.
func Min[N any](d scalar.Domain[N]) Aggregator[N, Extreme[N]] {
	return Aggregator[N, Extreme[N]]{
		Step: func(acc Extreme[N], v N) Extreme[N] {
			if !acc.Valid || d.Compare(v, acc.Value) < 0 {
				return Extreme[N]{Value: v, Valid: true}
			}
			return acc
		},
	}
}

// Max tracks the largest value under the domain order.
func Max[N any](d scalar.Domain[N]) Aggregator[N, Extreme[N]] {
	return Aggregator[N, Extreme[N]]{
		Step: func(acc Extreme[N], v N) Extreme[N] {
			if !acc.Valid || d.Compare(v, acc.Value) > 0 {
				return Extreme[N]{Value: v, Valid: true}
			}
			return acc
		},
	}
}

// Largest is the greatest magnitude; zero for an empty range.
func Largest[N any](d scalar.Domain[N]) Aggregator[N, float64] {
	return Aggregator[N, float64]{
		Step: func(acc float64, v N) float64 { return math.Max(acc, d.Magnitude(v)) },
	}
}

// Smallest is the smallest non-zero magnitude; zero when every value is zero.
func Smallest[N any](d scalar.Domain[N]) Aggregator[N, float64] {
	return Aggregator[N, float64]{
		Seed: math.Inf(1),
		Step: func(acc float64, v N) float64 {
			if d.IsZero(v) {
				return acc
			}
			return math.Min(acc, d.Magnitude(v))
		},
		Finish: func(acc float64) float64 {
			if math.IsInf(acc, 1) {
				return 0
			}
			return acc
		},
	}
}

// Norm1 sums magnitudes.
func Norm1[N any](d scalar.Domain[N]) Aggregator[N, float64] {
	return Aggregator[N, float64]{
		Step: func(acc float64, v N) float64 { return acc + d.Magnitude(v) },
	}
}

// SumOfSquares sums squared magnitudes (|v|², so complex values count their
// modulus).
func SumOfSquares[N any](d scalar.Domain[N]) Aggregator[N, float64] {
	return Aggregator[N, float64]{
		Step: func(acc float64, v N) float64 {
			m := d.Magnitude(v)
			return acc + m*m
		},
	}
}

// Norm2 is the Euclidean norm.
func Norm2[N any](d scalar.Domain[N]) Aggregator[N, float64] {
	agg := SumOfSquares(d)
	agg.Finish = math.Sqrt

	return agg
}

// Cardinality counts non-zero values.
func Cardinality[N any](d scalar.Domain[N]) Aggregator[N, int] {
	return Aggregator[N, int]{
		Step: func(acc int, v N) int {
			if d.IsZero(v) {
				return acc
			}
			return acc + 1
		},
	}
}
