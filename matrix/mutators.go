// SPDX-License-Identifier: MIT

// Package matrix - structural mutators: Resize, Insert*, Erase*.
//
// Purpose:
//   - Change sizes while applying the capacity model (see capacity.go).
//   - Validate every precondition BEFORE touching state: a failed call leaves
//     sizes, capacities, offsets and values exactly as they were.
//
// Determinism & Performance:
//   - Within capacity, insert/erase re-center the offset and move only the
//     block on one side of the position (amortized O(1) at either edge).
//   - Beyond capacity, the arena is reallocated once via relocate.

package matrix

// Resize changes the size to rows×cols; new cells get the zero value of T.
// See ResizeFill.
func (m *Matrix[T]) Resize(rows, cols int) error {
	var zero T

	return m.ResizeFill(rows, cols, zero)
}

// ResizeFill changes the size to rows×cols; new cells get fill.
// MAIN DESCRIPTION:
//   - Growing beyond capacity reallocates with amortized slack.
//   - Growing or shrinking within capacity keeps the capacity and re-centers offsets.
//   - Resize(0, 0) empties the matrix and clears capacity and offsets.
//
// Implementation:
//   - Stage 1: validate the target shape.
//   - Stage 2: empty source -> exact allocation (construction rule).
//   - Stage 3: overflow -> relocate; else recenter rows, then columns.
//   - Stage 4: fill the newly exposed cells.
//
// Errors:
//   - ErrNullOrNegDimension (negative, or exactly one zero extent), ErrDimensionTooLarge.
//
// Complexity:
//   - Time O(rowCap*colCap) on reallocation, O(r*c) otherwise.
func (m *Matrix[T]) ResizeFill(rows, cols int, fill T) error {
	if rows == 0 && cols == 0 {
		m.release()

		return nil
	}
	if err := m.validateShape(rows, cols); err != nil {
		return matrixCellErrorf(ctxResize, rows, cols, err)
	}
	if m.IsEmpty() {
		m.allocExact(rows, cols)
		m.buf.fillRect(0, rows, 0, cols, fill)

		return nil
	}

	keepR, keepC := min(rows, m.row.size), min(cols, m.col.size)
	if m.needsGrowth(rows, cols) {
		m.relocate(m.implicitCapacity(m.row, rows), m.implicitCapacity(m.col, cols),
			rows, cols, identity(keepR), identity(keepC), fill)

		return nil
	}

	m.recenter(rowAxis, keepR, rows)
	m.recenter(colAxis, keepC, cols)
	// Fill the exposed L-shaped region: columns past keepC on kept rows, then new rows.
	m.buf.fillRect(m.row.offset, m.row.offset+keepR, m.col.offset+keepC, m.col.offset+cols, fill)
	m.buf.fillRect(m.row.offset+keepR, m.row.offset+rows, m.col.offset, m.col.offset+cols, fill)

	return nil
}

// InsertRow inserts a zero-valued row before position pos (pos == Rows() appends).
func (m *Matrix[T]) InsertRow(pos int) error {
	var zero T

	return m.InsertRowFill(pos, zero)
}

// InsertRowFill inserts a row filled with v before position pos.
// Errors: ErrNullOrNegDimension on an empty matrix, ErrNonContiguousInsert
// when pos is outside [0, Rows()], ErrDimensionTooLarge at the ceiling.
func (m *Matrix[T]) InsertRowFill(pos int, v T) error {
	if err := m.insertAt(rowAxis, pos, v); err != nil {
		return matrixIndexErrorf(ctxInsertRow, pos, err)
	}

	return nil
}

// InsertColumn inserts a zero-valued column before position pos (pos == Cols() appends).
func (m *Matrix[T]) InsertColumn(pos int) error {
	var zero T

	return m.InsertColumnFill(pos, zero)
}

// InsertColumnFill inserts a column filled with v before position pos.
// Errors as InsertRowFill, for columns.
func (m *Matrix[T]) InsertColumnFill(pos int, v T) error {
	if err := m.insertAt(colAxis, pos, v); err != nil {
		return matrixIndexErrorf(ctxInsertColumn, pos, err)
	}

	return nil
}

// insertAt is the axis-generic insertion.
// MAIN DESCRIPTION:
//   - Within capacity: newOff = center(cap, size+1) is either the old offset
//     (units at/after pos move one unit forward) or one less (units before pos
//     move one unit back into the leading slack).
//   - Beyond capacity: relocate with the growing dimension getting two margins.
//
// Complexity:
//   - O(moved block) within capacity; O(rowCap*colCap) on growth.
func (m *Matrix[T]) insertAt(ax axis, pos int, v T) error {
	if m.IsEmpty() {
		return ErrNullOrNegDimension
	}
	e := m.ext(ax)
	if pos < 0 || pos > e.size {
		return ErrNonContiguousInsert
	}
	if e.size+1 > m.options().maxDim {
		return ErrDimensionTooLarge
	}

	if e.size+1 > e.capacity {
		shifted := func(i int) int {
			switch {
			case i < pos:
				return i
			case i == pos:
				return -1
			default:
				return i - 1
			}
		}
		rows, cols := m.row.size, m.col.size
		srcRow, srcCol := identity(rows), identity(cols)
		if ax == rowAxis {
			rows++
			srcRow = shifted
		} else {
			cols++
			srcCol = shifted
		}
		m.relocate(m.implicitCapacity(m.row, rows), m.implicitCapacity(m.col, cols),
			rows, cols, srcRow, srcCol, v)

		return nil
	}

	newOff := center(e.capacity, e.size+1)
	m.shiftAround(ax, newOff, pos, +1)
	e.size++
	e.offset = newOff
	minor := m.ext(ax.other()).size
	for k := 0; k < minor; k++ {
		*m.cellAxis(ax, pos, k) = v
	}

	return nil
}

// EraseRow removes the row at pos. The freed row becomes slack and the row
// offset is re-centered.
// Errors: ErrInvalidRowIndex, ErrEraseOnlyRow.
func (m *Matrix[T]) EraseRow(pos int) error {
	if pos < 0 || pos >= m.row.size {
		return matrixIndexErrorf(ctxEraseRow, pos, ErrInvalidRowIndex)
	}
	if m.row.size == 1 {
		return matrixIndexErrorf(ctxEraseRow, pos, ErrEraseOnlyRow)
	}
	m.eraseAt(rowAxis, pos)

	return nil
}

// EraseColumn removes the column at pos.
// Errors: ErrInvalidColumnIndex, ErrEraseOnlyColumn.
func (m *Matrix[T]) EraseColumn(pos int) error {
	if pos < 0 || pos >= m.col.size {
		return matrixIndexErrorf(ctxEraseColumn, pos, ErrInvalidColumnIndex)
	}
	if m.col.size == 1 {
		return matrixIndexErrorf(ctxEraseColumn, pos, ErrEraseOnlyColumn)
	}
	m.eraseAt(colAxis, pos)

	return nil
}

// eraseAt closes the gap at pos; newOff = center(cap, size-1) is either the
// old offset (units after pos move back) or one more (units before pos move forward).
func (m *Matrix[T]) eraseAt(ax axis, pos int) {
	e := m.ext(ax)
	newOff := center(e.capacity, e.size-1)
	m.shiftAround(ax, newOff, pos, -1)
	e.size--
	e.offset = newOff
}
