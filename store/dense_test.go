package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/scalar"
	"github.com/katalvlaran/lvarray/store"
)

// TestDenseScenario reproduces the stride example: 0..9, range (2,9,2).
func TestDenseScenario(t *testing.T) {
	s := sequence(store.NewPrimitive(10))

	var sum float64
	var seen []float64
	s.Visit(2, 9, 2, func(v float64) {
		sum += v
		seen = append(seen, v)
	})
	require.Equal(t, []float64{2, 4, 6, 8}, seen)
	require.Equal(t, 20.0, sum)
	require.Equal(t, 3, s.IndexOfLargest(2, 9, 2)) // logical index of 8
	require.Equal(t, 4, store.Count(2, 9, 2))
}

// TestDenseFill checks contiguous and strided fills.
func TestDenseFill(t *testing.T) {
	s := store.NewPrimitive(6)
	s.Fill(0, 6, 1, 1)
	s.Fill(1, 6, 2, 7)
	require.Equal(t, []float64{1, 7, 1, 7, 1, 7}, contents(s))

	n := 0.0
	s.FillFunc(0, 6, 3, func() float64 { n++; return n })
	require.Equal(t, []float64{1, 7, 1, 2, 1, 7}, contents(s))
}

// TestDenseModifyVariants covers argument order of the binary modifiers.
func TestDenseModifyVariants(t *testing.T) {
	sub := func(a, b float64) float64 { return a - b }

	s := sequence(store.NewPrimitive(4))
	s.ModifyLeft(0, 4, 1, 10, sub) // 10 - v
	require.Equal(t, []float64{10, 9, 8, 7}, contents(s))

	s.ModifyRight(0, 4, 2, sub, 1) // v - 1 on even slots
	require.Equal(t, []float64{9, 9, 7, 7}, contents(s))

	s.Modify(1, 4, 2, func(v float64) float64 { return -v })
	require.Equal(t, []float64{9, -9, 7, -7}, contents(s))

	s.ModifyMatchingLeft(0, 4, 1, sliceSource{1, 2, 3, 4}, sub) // src - v
	require.Equal(t, []float64{-8, 11, -4, 11}, contents(s))

	s.ModifyMatchingRight(0, 4, 3, sub, sliceSource{1, 1}) // v - src on slots 0,3
	require.Equal(t, []float64{-9, 11, -4, 10}, contents(s))

	s.FillMatching(0, 4, 1, sliceSource{1, 2, 3, 4}, func(a, b float64) float64 { return a * b }, sliceSource{2, 2, 2, 2})
	require.Equal(t, []float64{2, 4, 6, 8}, contents(s))
}

// TestDenseExchange swaps two strided runs.
func TestDenseExchange(t *testing.T) {
	s := sequence(store.NewPrimitive(6))
	s.Exchange(0, 1, 2, 3) // swap (0,1), (2,3), (4,5)
	require.Equal(t, []float64{1, 0, 3, 2, 5, 4}, contents(s))

	err := recoverError(t, func() { s.Exchange(0, 4, 2, 2) })
	require.ErrorIs(t, err, store.ErrIndexOutOfRange)
}

// TestDensePredicates covers zero/absolute/positive/real checks.
func TestDensePredicates(t *testing.T) {
	s := store.NewPrimitive(5)
	require.True(t, s.IsZeros(0, 5, 1))
	s.Set(3, -2)
	require.False(t, s.IsZeros(0, 5, 1))
	require.True(t, s.IsZeros(0, 5, 2)) // 0,2,4
	require.True(t, s.IsZero(0))
	require.False(t, s.IsAbsolute(3))
	require.False(t, s.IsPositive(3))
	require.True(t, s.IsReal(3))

	c := store.NewComplex(2)
	c.Set(1, 1+2i)
	require.False(t, c.IsReal(1))
	require.True(t, c.IsReal(0))
	require.Equal(t, 1.0, c.DoubleValue(1))
}

// TestDenseSortSearch checks binary-search hits and insertion points.
func TestDenseSortSearch(t *testing.T) {
	s := store.WrapDense[float64](scalar.Primitive{}, []float64{5, 1, 9, 3, 7})
	s.SortAscending()
	require.Equal(t, []float64{1, 3, 5, 7, 9}, s.Data())

	require.Equal(t, 2, s.SearchAscending(5))
	require.Equal(t, -1, s.SearchAscending(0))  // insertion point 0
	require.Equal(t, -3, s.SearchAscending(4))  // insertion point 2
	require.Equal(t, -6, s.SearchAscending(10)) // insertion point 5
}

// TestDenseRangeValidation ensures bad triples fail before mutation.
func TestDenseRangeValidation(t *testing.T) {
	s := store.NewPrimitive(4)

	cases := []struct {
		name               string
		first, limit, step int
	}{
		{"negative first", -1, 2, 1},
		{"limit beyond length", 0, 5, 1},
		{"limit before first", 3, 2, 1},
		{"zero step", 0, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := recoverError(t, func() { s.Fill(tc.first, tc.limit, tc.step, 1) })
			require.ErrorIs(t, err, store.ErrInvalidRange)
		})
	}
	require.True(t, s.IsZeros(0, 4, 1))

	err := recoverError(t, func() { s.ModifyMatchingLeft(0, 4, 1, sliceSource{1}, func(a, b float64) float64 { return a }) })
	require.ErrorIs(t, err, store.ErrLengthMismatch)
	require.True(t, s.IsZeros(0, 4, 1))
}

// TestDenseCopyIndependence verifies Copy does not alias.
func TestDenseCopyIndependence(t *testing.T) {
	a := sequence(store.NewPrimitive(3))
	b := a.Copy()
	b.Set(0, 42)
	require.Equal(t, 0.0, a.Get(0))
	require.Equal(t, 42.0, b.Get(0))
}

// TestDenseDomains checks fill/read idempotence for every domain.
func TestDenseDomains(t *testing.T) {
	big := store.NewBig(3)
	big.Fill(0, 3, 1, decimal.RequireFromString("1.25"))
	for i := 0; i < 3; i++ {
		require.True(t, big.Get(i).Equal(decimal.RequireFromString("1.25")))
	}
	require.Equal(t, "1.25", big.ToScalar(0).String())

	cx := store.NewComplex(3)
	cx.Fill(0, 3, 1, 2-1i)
	require.Equal(t, []complex128{2 - 1i, 2 - 1i, 2 - 1i}, cx.Data())

	rat := store.NewRational(3)
	rat.Fill(0, 3, 1, scalar.NewRational(2, 3))
	require.Equal(t, "2/3", rat.Get(2).String())
	require.InDelta(t, 0.6667, rat.DoubleValue(1), 1e-4)

	rat.Set(1, scalar.NewRational(-5, 1))
	require.Equal(t, 1, rat.IndexOfLargest(0, 3, 1))
}

// TestDenseEmptyRange covers zero-length triples.
func TestDenseEmptyRange(t *testing.T) {
	s := store.NewPrimitive(3)
	s.Fill(3, 3, 1, 9)
	require.True(t, s.IsZeros(0, 3, 1))
	require.Equal(t, 0, s.IndexOfLargest(2, 2, 1))
	require.Equal(t, 0, store.Count(2, 2, 5))
}
