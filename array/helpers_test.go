package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/array"
)

// segmented forces segmented stores with tiny segments for small arrays.
var segmented = array.Primitive.With(array.WithSegmentSize(3), array.WithSegmentationThreshold(1))

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value must be an error")
	}()
	fn()

	return nil
}

// seq returns a contiguous 1-D array holding 0..n-1.
func seq(f *array.Factory[float64], n int) *array.Array1D[float64] {
	a, err := f.Make1D(n)
	if err != nil {
		panic(err)
	}
	k := 0.0
	a.FillAllFunc(func() float64 { v := k; k++; return v })

	return a
}

func sub(a, b float64) float64 { return a - b }
func add(a, b float64) float64 { return a + b }
func neg(v float64) float64    { return -v }
