package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/store"
)

// sliceSource feeds zip operations from a plain slice.
type sliceSource []float64

func (s sliceSource) Count() int        { return len(s) }
func (s sliceSource) Get(k int) float64 { return s[k] }

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

// sequence builds a store of length n holding 0..n-1.
func sequence(s store.Store[float64]) store.Store[float64] {
	for i := 0; i < s.Len(); i++ {
		s.Set(i, float64(i))
	}

	return s
}

// contents snapshots any float64 store.
func contents(s store.Store[float64]) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.Get(i)
	}

	return out
}
