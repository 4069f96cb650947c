// SPDX-License-Identifier: MIT

// Package matrix - element accessor & safe visitors.
//
// Purpose:
//   - Translate logical (row, col) to the physical arena cell:
//     physicalRow = rowOffset + row, physicalCol = colOffset + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Be the single seam used by direct indexing AND iterator dereference, so
//     capacity/offset changes never leak into call sites.
//
// Complexity quicksheet:
//   - At/Set/Ref: O(1); Do/Apply/String/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cell returns a pointer to logical (row, col). No bounds check.
func (m *Matrix[T]) cell(row, col int) *T {
	return m.buf.at(m.row.offset+row, m.col.offset+col)
}

// cellAxis addresses a cell by (major, minor) along ax: for rowAxis the
// major index is the row, for colAxis it is the column.
func (m *Matrix[T]) cellAxis(ax axis, major, minor int) *T {
	if ax == rowAxis {
		return m.cell(major, minor)
	}

	return m.cell(minor, major)
}

// inBounds reports whether (row, col) is inside the live region.
func (m *Matrix[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.row.size && col >= 0 && col < m.col.size
}

// At returns the value at (row, col) or ErrInvalidElementIndex.
// MAIN DESCRIPTION:
//   - Safe element read at logical coordinates.
//
// Implementation:
//   - Stage 1: bounds check against the live size (not the capacity).
//   - Stage 2: load through the offset translation.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if !m.inBounds(row, col) {
		var zero T

		return zero, matrixCellErrorf(ctxAt, row, col, ErrInvalidElementIndex)
	}

	return *m.cell(row, col), nil
}

// Set stores v at (row, col) or returns ErrInvalidElementIndex.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return matrixCellErrorf(ctxSet, row, col, ErrInvalidElementIndex)
	}
	*m.cell(row, col) = v

	return nil
}

// Ref returns a pointer to (row, col) without a bounds check against the live
// region. Out-of-range coordinates either address slack or panic; the pointer
// is invalidated by any structural mutator.
func (m *Matrix[T]) Ref(row, col int) *T { return m.cell(row, col) }

// Row returns a copy of logical row r.
func (m *Matrix[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.row.size {
		return nil, matrixIndexErrorf(ctxAt, r, ErrInvalidRowIndex)
	}
	out := make([]T, m.col.size)
	copy(out, m.liveRow(r))

	return out, nil
}

// Column returns a copy of logical column c.
func (m *Matrix[T]) Column(c int) ([]T, error) {
	if c < 0 || c >= m.col.size {
		return nil, matrixIndexErrorf(ctxAt, c, ErrInvalidColumnIndex)
	}
	out := make([]T, m.row.size)
	for r := range out {
		out[r] = *m.cell(r, c)
	}

	return out, nil
}

// Values returns the elements in row-major order as a fresh slice.
func (m *Matrix[T]) Values() []T {
	out := make([]T, 0, m.Len())
	for r := 0; r < m.row.size; r++ {
		out = append(out, m.liveRow(r)...)
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Complexity: O(r*c).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	for i := 0; i < m.row.size; i++ {
		for j, v := range m.liveRow(i) {
			if !f(i, j, v) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Complexity: O(r*c).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	var row []T
	for i := 0; i < m.row.size; i++ {
		row = m.liveRow(i)
		for j := range row {
			row[j] = f(i, j, row[j])
		}
	}
}

// Equal reports whether a and b have the same size and element values.
// Capacities and offsets are not compared. Nil is equal only to nil.
func Equal[T comparable](a, b *Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Matrix[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.row.size != b.row.size || a.col.size != b.col.size {
		return false
	}
	var ra, rb []T
	for r := 0; r < a.row.size; r++ {
		ra, rb = a.liveRow(r), b.liveRow(r)
		for j := range ra {
			if !eq(ra[j], rb[j]) {
				return false
			}
		}
	}

	return true
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.row.size; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.liveRow(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
