// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for capacity and iterator tests.
//   • Check the centering law in one place after every mutation.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// seq returns 1..n as ints.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// mustFromSlice ALLOCATES an r×c matrix from row-major data or fails the test.
func mustFromSlice(t testing.TB, r, c int, data []int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.NewFromSlice(r, c, data)
	require.NoError(t, err)

	return m
}

// mustFilled ALLOCATES an r×c matrix filled with v or fails the test.
func mustFilled(t testing.TB, r, c, v int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.NewFilled(r, c, v)
	require.NoError(t, err)

	return m
}

// requireCentered asserts the capacity invariants:
//   - offset == (capacity-size)/2 in both dimensions;
//   - offsets absent exactly when capacity is 0;
//   - capacities within the instance ceiling and >= size.
func requireCentered[T any](t testing.TB, m *matrix.Matrix[T]) {
	t.Helper()
	ro, rok := m.RowCapacityOffset()
	co, cok := m.ColCapacityOffset()
	require.Equal(t, m.RowCapacity() > 0, rok, "row offset presence")
	require.Equal(t, m.ColCapacity() > 0, cok, "column offset presence")
	require.GreaterOrEqual(t, m.RowCapacity(), m.Rows())
	require.GreaterOrEqual(t, m.ColCapacity(), m.Cols())
	require.LessOrEqual(t, m.RowCapacity(), m.MaxDimension())
	require.LessOrEqual(t, m.ColCapacity(), m.MaxDimension())
	require.Equal(t, m.Rows() == 0, m.Cols() == 0, "rows==0 <=> cols==0")
	if rok {
		require.Equal(t, (m.RowCapacity()-m.Rows())/2, ro, "row offset centered")
	}
	if cok {
		require.Equal(t, (m.ColCapacity()-m.Cols())/2, co, "column offset centered")
	}
}

// requireContent asserts shape and row-major values.
func requireContent(t testing.TB, m *matrix.Matrix[int], r, c int, want []int) {
	t.Helper()
	require.Equal(t, r, m.Rows())
	require.Equal(t, c, m.Cols())
	require.Equal(t, want, m.Values())
	requireCentered(t, m)
}

// requireCapacity asserts capacities and offsets in one call.
func requireCapacity[T any](t testing.TB, m *matrix.Matrix[T], rowCap, colCap, rowOff, colOff int) {
	t.Helper()
	require.Equal(t, rowCap, m.RowCapacity(), "row capacity")
	require.Equal(t, colCap, m.ColCapacity(), "column capacity")
	ro, _ := m.RowCapacityOffset()
	co, _ := m.ColCapacityOffset()
	require.Equal(t, rowOff, ro, "row offset")
	require.Equal(t, colOff, co, "column offset")
}
