// SPDX-License-Identifier: MIT

// Package matrix - capacity model.
//
// Purpose:
//   - Decide target capacity and offset for every size-changing operation.
//   - Never let a capacity exceed the instance ceiling (MaxAllowedDimension by default).
//   - Keep the centering law: offset == (capacity-size)/2 in every dimension.
//
// Policy (see GrowthPolicy):
//   - A dimension whose new size exceeds its capacity grows to size + 2*margin(size).
//   - When the arena is reallocated, a dimension with no slack gets size + margin(size).
//   - A dimension that already has slack keeps its capacity.
//   - Capacity is never freed on shrink, except when the matrix becomes empty.
//
// AI-Hints:
//   - All element movement inside the arena goes through shiftAxis/shiftAround.
//   - relocate is the only path that allocates a new arena for a populated matrix.

package matrix

// implicitCapacity returns the capacity a dimension gets when the arena is
// reallocated for newSize elements along it.
func (m *Matrix[T]) implicitCapacity(e extent, newSize int) int {
	o := m.options()
	switch {
	case newSize > e.capacity:
		return o.clampCapacity(newSize + 2*o.margin(newSize))
	case newSize == e.capacity:
		return o.clampCapacity(newSize + o.margin(newSize))
	default:
		return e.capacity
	}
}

// needsGrowth reports whether the target shape overflows the current arena.
func (m *Matrix[T]) needsGrowth(rows, cols int) bool {
	return rows > m.row.capacity || cols > m.col.capacity
}

// relocate moves the live content into a fresh arena.
// MAIN DESCRIPTION:
//   - Allocate rowCap×colCap, center both offsets for newRows×newCols and copy
//     old cells according to the srcRow/srcCol maps.
//
// Implementation:
//   - Stage 1: allocate the arena; centered offsets for the new sizes.
//   - Stage 2: for each new logical (i, j): srcRow(i) / srcCol(j) give the old
//     logical coordinates, or -1 for "new cell" which receives fill.
//   - Stage 3: install the new arena and extents.
//
// Complexity:
//   - Time O(rowCap*colCap) (allocation) + O(newRows*newCols).
func (m *Matrix[T]) relocate(rowCap, colCap, newRows, newCols int, srcRow, srcCol func(int) int, fill T) {
	next := newArena[T](rowCap, colCap)
	rowOff := center(rowCap, newRows)
	colOff := center(colCap, newCols)

	var si, sj int
	for i := 0; i < newRows; i++ {
		si = srcRow(i)
		for j := 0; j < newCols; j++ {
			sj = srcCol(j)
			if si < 0 || sj < 0 {
				*next.at(rowOff+i, colOff+j) = fill
				continue
			}
			*next.at(rowOff+i, colOff+j) = *m.cell(si, sj)
		}
	}

	m.buf = next
	m.row = extent{size: newRows, capacity: rowCap, offset: rowOff}
	m.col = extent{size: newCols, capacity: colCap, offset: colOff}
}

// identity is the srcRow/srcCol map for cells that keep their coordinates.
func identity(limit int) func(int) int {
	return func(i int) int {
		if i < limit {
			return i
		}

		return -1
	}
}

// shiftAxis moves the live units [first, last) of ax by delta physical units.
// Column moves touch only the live physical rows.
func (m *Matrix[T]) shiftAxis(ax axis, first, last, delta int) {
	if ax == rowAxis {
		off := m.row.offset
		m.buf.shiftRows(off+first, off+last, delta)

		return
	}
	off := m.col.offset
	m.buf.shiftCols(m.row.offset, m.row.offset+m.row.size, off+first, off+last, delta)
}

// shiftAround re-lays one dimension around a single inserted (gap=+1) or
// erased (gap=-1) unit at pos, moving to newOff.
// MAIN DESCRIPTION:
//   - Block A = [0,pos) moves by dA = newOff-oldOff.
//   - Block B = the units after pos moves by dA+gap.
//   - With a centered offset at most one of the two blocks moves.
//
// Implementation:
//   - When dA > 0 block A moves toward B, so B is moved first; otherwise A first.
//   - The caller updates the extent (size, offset) afterwards.
func (m *Matrix[T]) shiftAround(ax axis, newOff, pos, gap int) {
	e := m.ext(ax)
	dA := newOff - e.offset
	dB := dA + gap
	bFirst, bLast := pos, e.size // insertion: B starts at pos
	if gap < 0 {
		bFirst = pos + 1 // erasure: the unit at pos is dropped
	}

	if dA > 0 {
		m.shiftAxis(ax, bFirst, bLast, dB)
		m.shiftAxis(ax, 0, pos, dA)

		return
	}
	m.shiftAxis(ax, 0, pos, dA)
	m.shiftAxis(ax, bFirst, bLast, dB)
}

// recenter moves the first keep units of ax so that the dimension is centered
// for newSize, then records the new size and offset. Requires newSize <= capacity
// and keep <= min(size, newSize).
func (m *Matrix[T]) recenter(ax axis, keep, newSize int) {
	e := m.ext(ax)
	newOff := center(e.capacity, newSize)
	m.shiftAxis(ax, 0, keep, newOff-e.offset)
	e.size, e.offset = newSize, newOff
}

// Reserve grows capacity to at least (rowCap, colCap), per dimension.
// MAIN DESCRIPTION:
//   - For each dimension independently: a request above the current capacity
//     grows it to min(request, ceiling) and re-centers the offset against the
//     CURRENT size; a request at or below the capacity leaves that dimension untouched.
//
// Behavior highlights:
//   - Never shrinks capacity, never changes size or element values.
//   - On an empty matrix the call is a no-op (offsets stay absent).
//   - Requests above the ceiling are clamped silently.
//
// Errors:
//   - ErrNegativeArg when either request is negative.
//
// Complexity:
//   - O(1) when nothing grows; O(newRowCap*newColCap) otherwise.
func (m *Matrix[T]) Reserve(rowCap, colCap int) error {
	if rowCap < 0 || colCap < 0 {
		return matrixErrorf(ctxReserve, ErrNegativeArg)
	}
	if m.IsEmpty() {
		return nil
	}
	o := m.options()
	newRowCap, newColCap := m.row.capacity, m.col.capacity
	if rowCap > newRowCap {
		newRowCap = max(o.clampCapacity(rowCap), newRowCap)
	}
	if colCap > newColCap {
		newColCap = max(o.clampCapacity(colCap), newColCap)
	}
	if newRowCap == m.row.capacity && newColCap == m.col.capacity {
		return nil
	}
	m.relocate(newRowCap, newColCap, m.row.size, m.col.size,
		identity(m.row.size), identity(m.col.size), *new(T))

	return nil
}

// ShrinkToFit releases all slack: capacity := size, offsets 0.
// Complexity: O(r*c) when there is slack, O(1) otherwise.
func (m *Matrix[T]) ShrinkToFit() {
	if m.row.capacity == m.row.size && m.col.capacity == m.col.size {
		return
	}
	m.relocate(m.row.size, m.col.size, m.row.size, m.col.size,
		identity(m.row.size), identity(m.col.size), *new(T))
}
