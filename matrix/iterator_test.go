// SPDX-License-Identifier: MIT
// Package matrix_test verifies iterator traversal orders, random-access
// arithmetic, sentinel clamping and the read-only variants.
package matrix_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

var alternating = []int{1, -2, 3, -4, 5, -6, 7, -8, 9, -10, 11, -12}

// TestReverseBeginDereference: reverse begin addresses the last cell.
func TestReverseBeginDereference(t *testing.T) {
	m := mustFromSlice(t, 3, 4, alternating)
	require.Equal(t, -12, m.ReverseZBegin().Value())

	it, err := m.ZIteratorAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, it.Value())
	require.Equal(t, 11, m.ReverseNBegin().Add(3).Value()) // column-major: -12, -8, -4, 11
}

// TestReverseNegativeIndexWrites: negative offsets from a reverse iterator
// at (0,0) walk forward in row-major order.
func TestReverseNegativeIndexWrites(t *testing.T) {
	m := mustFilled(t, 3, 4, -20)
	it, err := m.ReverseZIteratorAt(0, 0)
	require.NoError(t, err)

	for k, v := range alternating {
		it.SetIndex(-k, v)
	}
	require.True(t, matrix.Equal(mustFromSlice(t, 3, 4, alternating), m))
}

// TestTraversalOrders collects each full range.
func TestTraversalOrders(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))
	require.NoError(t, m.InsertRowFill(3, 0)) // slack must not leak into traversal
	require.NoError(t, m.EraseRow(3))

	z := matrix.Collect(m.ZBegin(), m.ZEnd())
	require.Equal(t, seq(12), z)

	n := matrix.Collect(m.NBegin(), m.NEnd())
	require.Equal(t, []int{1, 5, 9, 2, 6, 10, 3, 7, 11, 4, 8, 12}, n)

	rz := matrix.Collect(m.ReverseZBegin(), m.ReverseZEnd())
	want := seq(12)
	slices.Reverse(want)
	require.Equal(t, want, rz)

	rn := matrix.Collect(m.ReverseNBegin(), m.ReverseNEnd())
	slices.Reverse(n)
	require.Equal(t, n, rn)
}

// TestScopedRanges covers row- and column-scoped begin/end pairs.
func TestScopedRanges(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))

	zb, err := m.ZRowBegin(1)
	require.NoError(t, err)
	ze, err := m.ZRowEnd(1)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 7, 8}, matrix.Collect(zb, ze))

	nb, err := m.NColumnBegin(2)
	require.NoError(t, err)
	ne, err := m.NColumnEnd(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 7, 11}, matrix.Collect(nb, ne))

	rzb, err := m.ReverseZRowBegin(1)
	require.NoError(t, err)
	rze, err := m.ReverseZRowEnd(1)
	require.NoError(t, err)
	require.Equal(t, []int{8, 7, 6, 5}, matrix.Collect(rzb, rze))

	rnb, err := m.ReverseNColumnBegin(0)
	require.NoError(t, err)
	rne, err := m.ReverseNColumnEnd(0)
	require.NoError(t, err)
	require.Equal(t, []int{9, 5, 1}, matrix.Collect(rnb, rne))

	_, err = m.ZRowBegin(3)
	require.ErrorIs(t, err, matrix.ErrInvalidRowIndex)
	_, err = m.ReverseZRowEnd(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidRowIndex)
	_, err = m.NColumnEnd(4)
	require.ErrorIs(t, err, matrix.ErrInvalidColumnIndex)
	_, err = m.ReverseNColumnBegin(4)
	require.ErrorIs(t, err, matrix.ErrInvalidColumnIndex)
	_, err = m.NIteratorAt(3, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidElementIndex)
}

// TestIteratorArithmetic crosses row and column boundaries.
func TestIteratorArithmetic(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))

	z := m.ZBegin().Add(5)
	r, c, ok := z.Position()
	require.True(t, ok)
	require.Equal(t, [2]int{1, 1}, [2]int{r, c})
	require.Equal(t, 6, z.Value())
	require.Equal(t, 12, m.ZEnd().Diff(m.ZBegin()))
	require.Equal(t, -5, m.ZBegin().Diff(z))

	endRow0, err := m.ZIteratorAt(0, 3)
	require.NoError(t, err)
	require.Equal(t, 1, endRow0.Next().Row()) // wraps to (1, 0)
	require.Equal(t, 0, endRow0.Next().Col())

	nit, err := m.NIteratorAt(2, 0)
	require.NoError(t, err)
	nit.Inc()
	require.Equal(t, 0, nit.Row()) // wraps to (0, 1)
	require.Equal(t, 1, nit.Col())
	require.Equal(t, 2, nit.Value())
	nit.Dec()
	require.Equal(t, 9, nit.Value())
	nit.Advance(4)
	require.Equal(t, 3, nit.Value()) // (0, 2)
	require.Equal(t, 3, m.NBegin().Index(6))
	require.Equal(t, 8, m.NEnd().Index(-2))

	require.Equal(t, 4, m.ZBegin().Add(7).Sub(4).Value())
	require.Equal(t, 11, m.ZEnd().Prev().Prev().Value())
}

// TestIteratorClamping: arithmetic saturates at the sentinels.
func TestIteratorClamping(t *testing.T) {
	m := mustFromSlice(t, 2, 2, seq(4))

	require.True(t, m.ZBegin().Add(100).Equal(m.ZEnd()))
	require.True(t, m.ZEnd().Add(1).Equal(m.ZEnd()))

	before := m.ZBegin().Sub(5)
	require.False(t, before.Dereferenceable())
	require.Equal(t, -1, before.Row())
	require.Equal(t, 1, m.ZBegin().Diff(before))
	require.True(t, before.Next().Equal(m.ZBegin()))
	require.Panics(t, func() { before.Value() })
	require.Panics(t, func() { m.ZEnd().Set(1) })

	var it matrix.ZIterator[int] = m.ZEnd()
	it.Advance(-10)
	it.Inc()
	require.True(t, it.Equal(m.ZBegin()))

	// Offsets near the int limits still saturate on the correct side.
	require.True(t, m.ZBegin().Add(1).Add(math.MaxInt).Equal(m.ZEnd()))
	require.True(t, m.ZBegin().Add(1).Add(math.MinInt).Equal(m.ZBegin().Prev()))
	require.True(t, m.ZEnd().Sub(math.MinInt).Equal(m.ZEnd()))
	require.True(t, m.ZEnd().Sub(math.MaxInt).Equal(m.ZBegin().Prev()))
	far := m.NBegin().Add(2)
	far.Advance(math.MaxInt)
	require.True(t, far.Equal(m.NEnd()))
	far.Advance(math.MinInt)
	require.Equal(t, -1, far.Diff(m.NBegin()))
	require.Equal(t, 4, m.ConstZBegin().Add(math.MaxInt).Diff(m.ConstZBegin()))
}

// TestEmptyIterators: all iterators of empty matrices compare equal.
func TestEmptyIterators(t *testing.T) {
	a, b := matrix.New[int](), matrix.New[int]()
	require.True(t, a.ZBegin().Equal(a.ZEnd()))
	require.True(t, a.ZBegin().Equal(b.ZEnd()))
	require.True(t, a.ReverseNBegin().Equal(a.ReverseNEnd()))
	require.True(t, a.ZBegin().Add(3).Equal(a.ZBegin().Sub(3)))
	require.False(t, a.ZBegin().Dereferenceable())
	require.Empty(t, matrix.Collect(a.NBegin(), a.NEnd()))

	var zero matrix.NIterator[int]
	require.True(t, zero.Equal(a.NBegin()))
	require.True(t, zero.ValidWith(b))
	require.True(t, zero.ValidWith(nil))
}

// TestIteratorComparisons checks ordering along each order.
func TestIteratorComparisons(t *testing.T) {
	m := mustFromSlice(t, 3, 4, seq(12))
	lo, hi := m.NBegin().Add(2), m.NBegin().Add(5)
	require.True(t, lo.Less(hi))
	require.True(t, lo.LessEqual(hi))
	require.True(t, hi.Greater(lo))
	require.True(t, hi.GreaterEqual(hi))
	require.Equal(t, -1, lo.Compare(hi))
	require.Equal(t, 0, hi.Compare(hi))
	require.Equal(t, 1, hi.Compare(lo))
	require.False(t, lo.Equal(hi))

	other := mustFromSlice(t, 3, 4, seq(12))
	require.False(t, m.ZBegin().Equal(other.ZBegin()))
	require.True(t, m.ZBegin().ValidWith(m))
	require.False(t, m.ZBegin().ValidWith(other))
}

// TestIteratorWritesThroughRef modifies elements in place.
func TestIteratorWritesThroughRef(t *testing.T) {
	m := mustFromSlice(t, 2, 3, seq(6))
	for it := m.NBegin(); it.Less(m.NEnd()); it.Inc() {
		*it.Ref() *= 10
	}
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, m.Values())

	it := m.ReverseZBegin()
	it.Set(-1)
	it.SetIndex(1, -2)
	require.Equal(t, []int{10, 20, 30, 40, -2, -1}, m.Values())
}

// TestConstIterators mirror the mutable algebra.
func TestConstIterators(t *testing.T) {
	m := mustFromSlice(t, 2, 3, seq(6))

	var got []int
	for it := m.ConstZBegin(); it.Less(m.ConstZEnd()); it.Inc() {
		got = append(got, it.Value())
	}
	require.Equal(t, seq(6), got)

	n := m.ConstNBegin()
	require.Equal(t, 6, m.ConstNEnd().Diff(n))
	require.Equal(t, 5, n.Index(3))
	require.Equal(t, 6, m.ConstReverseZBegin().Value())
	require.Equal(t, 6, m.ConstReverseNBegin().Value())
	require.Equal(t, 1, m.ConstReverseZEnd().Prev().Value())
	require.True(t, m.ConstReverseNEnd().Sub(6).Equal(m.ConstReverseNBegin()))

	row, col, ok := n.Add(1).Position()
	require.True(t, ok)
	require.Equal(t, [2]int{1, 0}, [2]int{row, col})
}
