// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for construction, element access
// and ownership transfer of Matrix.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewEmpty verifies the empty state: no size, no capacity, no offsets.
func TestNewEmpty(t *testing.T) {
	m := matrix.New[int]()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, 0, m.RowCapacity())
	require.Equal(t, 0, m.ColCapacity())
	_, ok := m.RowCapacityOffset()
	require.False(t, ok)
	_, ok = m.ColCapacityOffset()
	require.False(t, ok)

	var zero matrix.Matrix[string] // zero value is usable
	require.True(t, zero.IsEmpty())
	require.Equal(t, matrix.MaxAllowedDimension, zero.MaxDimension())
}

// TestNewFilledExactCapacity checks construction allocates without slack.
func TestNewFilledExactCapacity(t *testing.T) {
	m := mustFilled(t, 10, 8, -2)
	requireCapacity(t, m, 10, 8, 0, 0)
	requireCentered(t, m)
	for _, v := range m.Values() {
		require.Equal(t, -2, v)
	}
}

// TestConstructorsRejectBadShapes covers dimension errors.
func TestConstructorsRejectBadShapes(t *testing.T) {
	_, err := matrix.NewFilled(0, 5, 1)
	require.ErrorIs(t, err, matrix.ErrNullOrNegDimension)
	_, err = matrix.NewFilled(5, -1, 1)
	require.ErrorIs(t, err, matrix.ErrNullOrNegDimension)
	_, err = matrix.NewFilled(3, 3, 1, matrix.WithMaxDimension(2))
	require.ErrorIs(t, err, matrix.ErrDimensionTooLarge)
	_, err = matrix.NewFromSlice(2, 2, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDataSizeMismatch)
	_, err = matrix.NewFromSliceMove(2, 2, []int{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, matrix.ErrDataSizeMismatch)
	_, err = matrix.NewDiagonal(0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNullOrNegDimension)
}

// TestNewFromSliceCopiesAndMoveAdopts distinguishes copy from adoption.
func TestNewFromSliceCopiesAndMoveAdopts(t *testing.T) {
	data := seq(6)
	m := mustFromSlice(t, 2, 3, data)
	data[0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v) // copied

	moved := seq(6)
	mm, err := matrix.NewFromSliceMove(2, 3, moved)
	require.NoError(t, err)
	require.NoError(t, mm.Set(1, 2, 60))
	require.Equal(t, 60, moved[5]) // adopted storage
	requireCapacity(t, mm, 2, 3, 0, 0)
}

// TestNewDiagonal checks diagonal construction.
func TestNewDiagonal(t *testing.T) {
	m, err := matrix.NewDiagonal(3, 0, 7)
	require.NoError(t, err)
	require.Equal(t, []int{7, 0, 0, 0, 7, 0, 0, 0, 7}, m.Values())
}

// TestAtSetBounds ensures the accessor checks the live region, not the capacity.
func TestAtSetBounds(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))
	require.NoError(t, m.InsertRow(1)) // now 4×4 inside a 6×5 arena

	_, err := m.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)
	_, err = m.At(0, 4) // inside column capacity, outside the live region
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrInvalidElementIndex)

	require.NoError(t, m.Set(3, 3, 99))
	v, err := m.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, 99, v)
	*m.Ref(2, 0) = -5
	v, _ = m.At(2, 0)
	require.Equal(t, -5, v)
}

// TestRowColumnCopies checks row/column extraction.
func TestRowColumnCopies(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 7, 8}, row)
	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 7, 11}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrInvalidRowIndex)
	_, err = m.Column(4)
	require.ErrorIs(t, err, matrix.ErrInvalidColumnIndex)
}

// TestEqual compares size and values but not capacity.
func TestEqual(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	require.NoError(t, b.Reserve(10, 10))
	require.True(t, matrix.Equal(a, b))

	require.NoError(t, b.Set(1, 1, 5))
	require.False(t, matrix.Equal(a, b))

	c := mustFromSlice(t, 1, 4, []int{1, 2, 3, 4})
	require.False(t, matrix.Equal(a, c))
	require.True(t, matrix.Equal(matrix.New[int](), matrix.New[int]()))
	require.False(t, matrix.Equal(a, nil))

	near := matrix.EqualFunc(a, b, func(x, y int) bool { return x-y <= 1 && y-x <= 1 })
	require.True(t, near)
}

// TestCloneDropsSlack checks copy semantics.
func TestCloneDropsSlack(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))
	require.NoError(t, m.Reserve(9, 9))

	cp := m.Clone()
	require.True(t, matrix.Equal(m, cp))
	requireCapacity(t, cp, 3, 4, 0, 0)

	require.NoError(t, cp.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v) // independent
}

// TestMoveAndSwap checks ownership transfer.
func TestMoveAndSwap(t *testing.T) {
	m := mustFromSlice(t, 2, 3, seq(6))
	require.NoError(t, m.Reserve(4, 5))

	moved := m.Move()
	requireContent(t, moved, 2, 3, seq(6))
	requireCapacity(t, moved, 4, 5, 1, 1)
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.RowCapacity())
	_, ok := m.RowCapacityOffset()
	require.False(t, ok)

	other := mustFilled(t, 1, 1, 9)
	moved.Swap(other)
	requireContent(t, moved, 1, 1, []int{9})
	requireContent(t, other, 2, 3, seq(6))
}

// TestDoApply verifies visitors run row-major over the live region only.
func TestDoApply(t *testing.T) {
	m := mustFromSlice(t, 2, 3, seq(6))
	require.NoError(t, m.InsertColumnFill(0, 0))

	var visited []int
	m.Do(func(i, j, v int) bool {
		visited = append(visited, v)
		return len(visited) < 5
	})
	require.Equal(t, []int{0, 1, 2, 3, 0}, visited)

	m.Apply(func(i, j, v int) int { return v * 10 })
	require.Equal(t, []int{0, 10, 20, 30, 0, 40, 50, 60}, m.Values())

	n := 0
	for pos, v := range m.All() {
		require.Equal(t, *m.Ref(pos[0], pos[1]), v)
		n++
	}
	require.Equal(t, 8, n)
}

// TestString renders rows.
func TestString(t *testing.T) {
	m := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.True(t, strings.HasPrefix(m.String(), "[1"))
	require.Equal(t, "", matrix.New[int]().String())
}

// TestOptionsPanics checks option validation.
func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxDimension(0) })
	require.Panics(t, func() { matrix.WithMaxDimension(matrix.MaxAllowedDimension + 1) })
	require.Panics(t, func() { matrix.WithGrowth(nil) })
	require.NotPanics(t, func() { matrix.WithMaxDimension(matrix.MaxAllowedDimension) })
}

// TestDefaultGrowth checks the default margin policy.
func TestDefaultGrowth(t *testing.T) {
	require.Equal(t, 0, matrix.DefaultGrowth(0))
	require.Equal(t, 1, matrix.DefaultGrowth(1))
	require.Equal(t, 1, matrix.DefaultGrowth(4))
	require.Equal(t, 2, matrix.DefaultGrowth(5))
	require.Equal(t, 25, matrix.DefaultGrowth(100))
}
