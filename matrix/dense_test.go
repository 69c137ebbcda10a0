// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestFromRows_Validation(t *testing.T) {
	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestDense_AtSet(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rows, cols := m.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	require.NoError(t, m.Set(1, 2, 60))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 60.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	// column-major backing store
	require.Equal(t, []float64{1, 4, 2, 5, 3, 60}, m.Array().Flatten().ToRawCopy())
}

func TestDense_RowColDiagAreViews(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row.ToRawCopy())

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6, 9}, col.ToRawCopy())

	require.Equal(t, []float64{1, 5, 9}, m.Diag().ToRawCopy())

	// writes through a slice land in the matrix
	row.SortDescending()
	require.Equal(t, [][]float64{{1, 2, 3}, {6, 5, 4}, {7, 8, 9}}, toRows(t, m))

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.True(t, m.Array().Equals(mustRows(t, [][]float64{{1, 2}, {3, 4}}).Array()))
}

func TestDense_String(t *testing.T) {
	m := mustRows(t, [][]float64{{0, 1}, {10, 11}})
	require.Equal(t, "[0, 1]\n[10, 11]\n", m.String())
}

func TestDense_DoAndApply(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen) // row-major, early stop

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(10*i+j) }))
	require.Equal(t, [][]float64{{1, 3}, {13, 15}}, toRows(t, m))

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return math.Inf(-1)
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_View(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	w, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, w.Rows())
	require.Equal(t, 2, w.Cols())

	v, err := w.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 8.0, v)

	require.NoError(t, w.Set(0, 1, 60))
	got, _ := m.At(1, 2)
	require.Equal(t, 60.0, got)

	col, err := w.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 8}, col.ToRawCopy())
	row, err := w.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 9}, row.ToRawCopy())

	_, err = w.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, w.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	_, err = m.View(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := m.View(3, 3, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

func TestDense_Induced(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	if diff := cmp.Diff([][]float64{{8}, {2}}, toRows(t, sub)); diff != "" {
		t.Fatalf("Induced mismatch (-want +got):\n%s", diff)
	}

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SegmentedStorage(t *testing.T) {
	small := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	split := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.WithSegmentSize(2))

	require.True(t, small.Array().Equals(split.Array()))
	sum, err := matrix.Add(split, small)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, toRows(t, sum))
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithSegmentSize(0) })
}
