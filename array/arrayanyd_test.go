package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/scalar"
	"github.com/katalvlaran/lvarray/store"
)

// cube returns a 2x3x4 primitive array holding 0..23 in column-major order.
func cube(t *testing.T, f *array.Factory[float64]) *array.ArrayAnyD[float64] {
	t.Helper()
	a, err := f.MakeAnyD(2, 3, 4)
	require.NoError(t, err)
	k := 0.0
	a.FillAllFunc(func() float64 { v := k; k++; return v })

	return a
}

// TestNewAnyDValidation checks structure validation.
func TestNewAnyDValidation(t *testing.T) {
	s := store.NewPrimitive(6)
	_, err := array.NewAnyD[float64](s, 2, 4)
	require.ErrorIs(t, err, array.ErrShapeMismatch)
	_, err = array.NewAnyD[float64](s)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)
	_, err = array.NewAnyD[float64](s, -2, -3)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)

	a, err := array.NewAnyD[float64](s, 1, 6, 1)
	require.NoError(t, err)
	require.Equal(t, 3, a.Rank())
}

// TestArrayAnyDAddressing checks column-major strides.
func TestArrayAnyDAddressing(t *testing.T) {
	a := cube(t, array.Primitive)
	require.Equal(t, 3, a.Rank())
	require.Equal(t, []int{2, 3, 4}, a.Structure())
	require.Equal(t, 3, a.CountOf(1))
	require.Equal(t, 24, a.Count())

	require.Equal(t, 23.0, a.Get(1, 2, 3))
	require.Equal(t, 2.0, a.Get(0, 1, 0))
	a.Set(-5, 1, 0, 1)
	require.Equal(t, -5.0, a.Store().Get(1+6))
	require.Equal(t, -5.0, a.DoubleValue(1, 0, 1))

	err := recoverError(t, func() { a.Get(2, 0, 0) })
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)
	err = recoverError(t, func() { a.Get(0, 0) })
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)
	err = recoverError(t, func() { a.CountOf(3) })
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)
}

// TestArrayAnyDSets checks slices and set operations along each dimension.
func TestArrayAnyDSets(t *testing.T) {
	for _, f := range []*array.Factory[float64]{array.Primitive, segmented} {
		a := cube(t, f)
		require.Equal(t, []float64{14, 15}, a.Slice(0, 0, 1, 2).ToRawCopy())
		require.Equal(t, []float64{19, 21, 23}, a.Slice(1, 1, 0, 3).ToRawCopy())
		require.Equal(t, []float64{10, 16, 22}, a.Slice(2, 0, 2, 1).ToRawCopy())

		a.FillSet(2, -1, 1, 1, 0)
		require.Equal(t, -1.0, a.Get(1, 1, 0))
		require.Equal(t, -1.0, a.Get(1, 1, 3))
		require.Equal(t, 1.0, a.Get(1, 0, 0))

		a.ModifySet(1, neg, 0, 0, 0)
		require.Equal(t, []float64{0, -2, -4}, a.Slice(1, 0, 0, 0).ToRawCopy())

		var seen []float64
		a.VisitSet(0, func(v float64) { seen = append(seen, v) }, 0, 2, 3)
		require.Equal(t, []float64{22, 23}, seen)

		require.Equal(t, []int{1, 2, 3}, a.IndexOfLargest())
	}
}

// TestArrayAnyDReshape shares the store under a new structure.
func TestArrayAnyDReshape(t *testing.T) {
	a := cube(t, array.Primitive)
	m, err := a.Reshape(4, 6)
	require.NoError(t, err)
	require.Equal(t, 23.0, m.Get(3, 5))
	m.Set(100, 0, 0)
	require.Equal(t, 100.0, a.Get(0, 0, 0))

	_, err = a.Reshape(5, 5)
	require.ErrorIs(t, err, array.ErrShapeMismatch)
	_, err = a.Reshape()
	require.ErrorIs(t, err, array.ErrInvalidDimensions)

	require.Equal(t, 24, a.Flatten().Count())
}

// TestArrayAnyDEquals compares structure and content, not identity.
func TestArrayAnyDEquals(t *testing.T) {
	a := cube(t, array.Primitive)
	b := cube(t, segmented)
	require.True(t, a.Equals(b))
	require.Equal(t, a.Hash(), b.Hash())

	flat, err := a.Reshape(24)
	require.NoError(t, err)
	require.False(t, a.Equals(flat))
	require.NotEqual(t, a.Hash(), flat.Hash())

	c := a.Copy()
	require.True(t, a.Equals(c))
	c.Set(1, 0, 0, 0)
	require.False(t, a.Equals(c))
	require.Equal(t, 0.0, a.Get(0, 0, 0))

	r, err := array.Rational.MakeAnyD(1, 2)
	require.NoError(t, err)
	r.Set(scalar.NewRational(2, 4), 0, 1)
	w, err := array.Rational.WrapAnyD([]scalar.Rational{{}, scalar.NewRational(1, 2)}, 1, 2)
	require.NoError(t, err)
	require.True(t, r.Equals(w))

	require.Equal(t, "[1 2] [0, 1/2]", w.String())
}
