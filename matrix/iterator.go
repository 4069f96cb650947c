// SPDX-License-Identifier: MIT

// Package matrix - random-access iterators over a Matrix.
//
// Purpose:
//   - One implementation (Iterator[T, O]) for every traversal; the public
//     variants ZIterator, NIterator, ReverseZIterator and ReverseNIterator are
//     aliases over the strategy types in traversal.go.
//   - ConstIterator[T, O] exposes the same algebra without write access.
//
// State machine:
//   - An iterator is a non-owning *Matrix plus a linear position in its order.
//   - Positions are clamped to [-1, Len()]: -1 is "one before the first",
//     Len() is "one past the last" (end). Arithmetic saturates at the sentinels.
//   - On an empty matrix (and for the zero value) the only position is 0; all
//     such iterators compare equal, even across distinct empty matrices.
//
// Validity:
//   - Iterators stay valid across writes that do not resize the matrix; any
//     structural mutator invalidates them. Mixing iterators of unrelated
//     non-empty matrices is undefined.

package matrix

import (
	"cmp"
	"fmt"
)

// Iterator is a random-access position over a matrix in traversal order O.
// The zero value behaves as an iterator of an always-empty matrix.
type Iterator[T any, O Traversal] struct {
	m   *Matrix[T] // non-owning; nil for the zero value
	pos int        // linear position in order O, within [-1, size]
}

// Public variants.
type (
	// ZIterator walks row-major.
	ZIterator[T any] = Iterator[T, ZOrder]
	// NIterator walks column-major.
	NIterator[T any] = Iterator[T, NOrder]
	// ReverseZIterator walks row-major from the last cell.
	ReverseZIterator[T any] = Iterator[T, ReverseZOrder]
	// ReverseNIterator walks column-major from the last cell.
	ReverseNIterator[T any] = Iterator[T, ReverseNOrder]
)

// newIterator builds an iterator at pos, clamped to the sentinels.
func newIterator[T any, O Traversal](m *Matrix[T], pos int) Iterator[T, O] {
	it := Iterator[T, O]{m: m}
	it.pos = it.clamp(pos)

	return it
}

// size returns the number of dereferenceable positions.
func (it Iterator[T, O]) size() int {
	if it.m == nil {
		return 0
	}

	return it.m.Len()
}

// clamp saturates pos at the sentinels; an empty range has the single position 0.
func (it Iterator[T, O]) clamp(pos int) int {
	n := it.size()
	switch {
	case n == 0:
		return 0
	case pos < -1:
		return -1
	case pos > n:
		return n
	default:
		return pos
	}
}

// step returns the position n cells away. n is bounded first so that
// pos+n cannot overflow; any |n| above size+1 lands on a sentinel anyway.
func (it Iterator[T, O]) step(n int) int {
	return it.clamp(it.pos + it.bound(n))
}

// bound limits n to [-size-1, size+1].
func (it Iterator[T, O]) bound(n int) int {
	return max(-it.size()-1, min(n, it.size()+1))
}

// Dereferenceable reports whether the iterator addresses a live cell.
func (it Iterator[T, O]) Dereferenceable() bool {
	return it.pos >= 0 && it.pos < it.size()
}

// Position returns the logical (row, col) addressed by the iterator; ok is
// false on a sentinel.
func (it Iterator[T, O]) Position() (row, col int, ok bool) {
	if !it.Dereferenceable() {
		return -1, -1, false
	}
	var o O
	row, col = o.coords(it.pos, it.m.row.size, it.m.col.size)

	return row, col, true
}

// Row returns the addressed row, or -1 on a sentinel.
func (it Iterator[T, O]) Row() int {
	r, _, _ := it.Position()

	return r
}

// Col returns the addressed column, or -1 on a sentinel.
func (it Iterator[T, O]) Col() int {
	_, c, _ := it.Position()

	return c
}

// Ref returns a pointer to the addressed cell (arrow access).
// Panics on a sentinel, like indexing a slice out of range.
func (it Iterator[T, O]) Ref() *T {
	row, col, ok := it.Position()
	if !ok {
		panic(fmt.Sprintf("matrix: %s: dereference at sentinel position %d of %d", ctxIterator, it.pos, it.size()))
	}

	return it.m.cell(row, col)
}

// Value returns the addressed element. Panics on a sentinel.
func (it Iterator[T, O]) Value() T { return *it.Ref() }

// Set writes v through the element accessor. Panics on a sentinel.
func (it Iterator[T, O]) Set(v T) { *it.Ref() = v }

// Index returns the element n positions away, as *(it + n).
func (it Iterator[T, O]) Index(n int) T { return it.Add(n).Value() }

// SetIndex writes v n positions away, as (it + n) = v.
func (it Iterator[T, O]) SetIndex(n int, v T) { it.Add(n).Set(v) }

// Add returns it + n (saturating at the sentinels).
func (it Iterator[T, O]) Add(n int) Iterator[T, O] {
	it.pos = it.step(n)

	return it
}

// Sub returns it - n (saturating at the sentinels).
func (it Iterator[T, O]) Sub(n int) Iterator[T, O] { return it.Add(-it.bound(n)) }

// Next returns it + 1.
func (it Iterator[T, O]) Next() Iterator[T, O] { return it.Add(1) }

// Prev returns it - 1.
func (it Iterator[T, O]) Prev() Iterator[T, O] { return it.Add(-1) }

// Advance moves the iterator by n in place (it += n).
func (it *Iterator[T, O]) Advance(n int) { it.pos = it.step(n) }

// Inc moves the iterator one step forward in place (++it).
func (it *Iterator[T, O]) Inc() { it.Advance(1) }

// Dec moves the iterator one step backward in place (--it).
func (it *Iterator[T, O]) Dec() { it.Advance(-1) }

// Diff returns it - other: the signed number of steps from other to it.
func (it Iterator[T, O]) Diff(other Iterator[T, O]) int { return it.pos - other.pos }

// emptyRange reports whether the iterator belongs to an empty (or no) matrix.
func (it Iterator[T, O]) emptyRange() bool { return it.size() == 0 }

// Equal reports whether both iterators address the same position of the same
// matrix. Iterators of empty matrices are all equal.
func (it Iterator[T, O]) Equal(other Iterator[T, O]) bool {
	if it.emptyRange() && other.emptyRange() {
		return true
	}

	return it.m == other.m && it.pos == other.pos
}

// Compare orders iterators by position along O: -1, 0 or +1.
func (it Iterator[T, O]) Compare(other Iterator[T, O]) int { return cmp.Compare(it.pos, other.pos) }

// Less reports it < other.
func (it Iterator[T, O]) Less(other Iterator[T, O]) bool { return it.pos < other.pos }

// LessEqual reports it <= other.
func (it Iterator[T, O]) LessEqual(other Iterator[T, O]) bool { return it.pos <= other.pos }

// Greater reports it > other.
func (it Iterator[T, O]) Greater(other Iterator[T, O]) bool { return it.pos > other.pos }

// GreaterEqual reports it >= other.
func (it Iterator[T, O]) GreaterEqual(other Iterator[T, O]) bool { return it.pos >= other.pos }

// ValidWith reports whether the iterator was obtained from m, or both are empty.
func (it Iterator[T, O]) ValidWith(m *Matrix[T]) bool {
	if it.emptyRange() {
		return m == nil || m.IsEmpty()
	}

	return it.m == m
}

// Const returns a read-only view of the iterator.
func (it Iterator[T, O]) Const() ConstIterator[T, O] { return ConstIterator[T, O]{it: it} }

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any, O Traversal] struct {
	it Iterator[T, O]
}

// Read-only public variants.
type (
	// ConstZIterator walks row-major without write access.
	ConstZIterator[T any] = ConstIterator[T, ZOrder]
	// ConstNIterator walks column-major without write access.
	ConstNIterator[T any] = ConstIterator[T, NOrder]
	// ConstReverseZIterator walks row-major from the last cell without write access.
	ConstReverseZIterator[T any] = ConstIterator[T, ReverseZOrder]
	// ConstReverseNIterator walks column-major from the last cell without write access.
	ConstReverseNIterator[T any] = ConstIterator[T, ReverseNOrder]
)

func (c ConstIterator[T, O]) Dereferenceable() bool { return c.it.Dereferenceable() }

func (c ConstIterator[T, O]) Position() (row, col int, ok bool) { return c.it.Position() }

func (c ConstIterator[T, O]) Row() int { return c.it.Row() }

func (c ConstIterator[T, O]) Col() int { return c.it.Col() }

// Value returns the addressed element. Panics on a sentinel.
func (c ConstIterator[T, O]) Value() T { return c.it.Value() }

func (c ConstIterator[T, O]) Index(n int) T { return c.it.Index(n) }

func (c ConstIterator[T, O]) Add(n int) ConstIterator[T, O] { return c.it.Add(n).Const() }

func (c ConstIterator[T, O]) Sub(n int) ConstIterator[T, O] { return c.it.Sub(n).Const() }

func (c ConstIterator[T, O]) Next() ConstIterator[T, O] { return c.it.Next().Const() }

func (c ConstIterator[T, O]) Prev() ConstIterator[T, O] { return c.it.Prev().Const() }

func (c *ConstIterator[T, O]) Advance(n int) { c.it.Advance(n) }

func (c *ConstIterator[T, O]) Inc() { c.it.Inc() }

func (c *ConstIterator[T, O]) Dec() { c.it.Dec() }

func (c ConstIterator[T, O]) Diff(other ConstIterator[T, O]) int { return c.it.Diff(other.it) }

func (c ConstIterator[T, O]) Equal(other ConstIterator[T, O]) bool { return c.it.Equal(other.it) }

func (c ConstIterator[T, O]) Compare(other ConstIterator[T, O]) int { return c.it.Compare(other.it) }

func (c ConstIterator[T, O]) Less(other ConstIterator[T, O]) bool { return c.it.Less(other.it) }

func (c ConstIterator[T, O]) LessEqual(other ConstIterator[T, O]) bool {
	return c.it.LessEqual(other.it)
}

func (c ConstIterator[T, O]) Greater(other ConstIterator[T, O]) bool { return c.it.Greater(other.it) }

func (c ConstIterator[T, O]) GreaterEqual(other ConstIterator[T, O]) bool {
	return c.it.GreaterEqual(other.it)
}

func (c ConstIterator[T, O]) ValidWith(m *Matrix[T]) bool { return c.it.ValidWith(m) }
