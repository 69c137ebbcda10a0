// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the kernel tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the At/Set
// fallback paths in code under test.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from row-major data or fails the test.
func mustRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// toRows reads m back as row-major data.
func toRows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}
