// SPDX-License-Identifier: MIT

// Package matrix - arena storage (row-major, over-allocated).
//
// Purpose:
//   - Own the single contiguous allocation of rowCap*colCap elements.
//   - Provide the ONLY cross-cell movement primitives (shiftRows / shiftCols);
//     every structural mutator moves elements through them.
//
// Complexity quicksheet:
//   - newArena: O(rowCap*colCap); at: O(1); shiftRows: O(rows*colCap); shiftCols: O(rows*cols).

package matrix

// arena is a flat row-major buffer with stride colCap.
// Physical cell (pr, pc) lives at data[pr*colCap + pc].
type arena[T any] struct {
	data   []T // len == rowCap*colCap
	rowCap int // physical rows
	colCap int // physical columns (stride)
}

// newArena allocates a zero-filled arena; zero capacities yield an empty arena.
func newArena[T any](rowCap, colCap int) arena[T] {
	if rowCap <= 0 || colCap <= 0 {
		return arena[T]{}
	}

	return arena[T]{
		data:   make([]T, rowCap*colCap),
		rowCap: rowCap,
		colCap: colCap,
	}
}

// at returns a pointer to physical cell (pr, pc). No bounds check beyond the slice's own.
func (a *arena[T]) at(pr, pc int) *T {
	return &a.data[pr*a.colCap+pc]
}

// shiftRows moves the physical rows [first, last) by delta rows.
// Whole physical rows are moved, slack columns included; copy has memmove
// semantics, so overlapping source and destination are safe.
func (a *arena[T]) shiftRows(first, last, delta int) {
	if delta == 0 || first >= last {
		return
	}
	stride := a.colCap
	copy(a.data[(first+delta)*stride:(last+delta)*stride], a.data[first*stride:last*stride])
}

// shiftCols moves the physical columns [first, last) by delta inside every
// physical row of [rowFirst, rowLast).
func (a *arena[T]) shiftCols(rowFirst, rowLast, first, last, delta int) {
	if delta == 0 || first >= last {
		return
	}
	var base int
	for pr := rowFirst; pr < rowLast; pr++ {
		base = pr * a.colCap
		copy(a.data[base+first+delta:base+last+delta], a.data[base+first:base+last])
	}
}

// fillRect writes v into the physical rectangle [r0,r1)×[c0,c1).
func (a *arena[T]) fillRect(r0, r1, c0, c1 int, v T) {
	var base int
	for pr := r0; pr < r1; pr++ {
		base = pr * a.colCap
		for pc := c0; pc < c1; pc++ {
			a.data[base+pc] = v
		}
	}
}
