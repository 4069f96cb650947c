// SPDX-License-Identifier: MIT

// Package matrix - concatenation and split.
//
// Purpose:
//   - CatByRow / CatByColumn append another matrix's rows / columns.
//   - SplitByRow / SplitByColumn are the structural inverse.
//   - Capacity moves between matrices by ownership transfer, never by sharing:
//     after ConcatMove the source is left empty (capacity 0, offsets absent).
//
// AI-Hints:
//   - Use ConcatMove with a temporary source to let the destination adopt its
//     arena when the source has room for the result and the destination does not.
//   - SplitByRow(dst, Rows(a)) after CatByRow(b) reproduces a and b.

package matrix

// ConcatMode selects what happens to the source of a concatenation.
type ConcatMode uint8

const (
	// ConcatCopy copies the source's elements; the source is left unchanged.
	// Passing the receiver as source duplicates its own rows/columns after itself.
	ConcatCopy ConcatMode = iota

	// ConcatMove consumes the source: its arena may be adopted wholesale and it
	// is left empty afterwards. Passing the receiver as source is an error.
	ConcatMove
)

// CatByRow appends src's rows after the receiver's rows.
// MAIN DESCRIPTION:
//   - Requires equal column counts (an empty operand is always compatible).
//   - Existing row capacity is used when it fits the result (re-centered).
//   - With ConcatMove, src's arena is adopted when the receiver is empty or when
//     only src has the row capacity for the result.
//   - Otherwise the receiver regrows under the implicit growth policy.
//
// Errors:
//   - ErrNilMatrix, ErrCurrentMatrixAsArg (ConcatMove on itself),
//     ErrUnequalColumnCount, ErrDimensionTooLarge.
//
// Complexity:
//   - O(k*c) for k appended rows within capacity; O(rowCap*colCap) on regrowth.
func (m *Matrix[T]) CatByRow(src *Matrix[T], mode ConcatMode) error {
	if err := m.catAlong(rowAxis, src, mode); err != nil {
		return matrixErrorf(ctxCatByRow, err)
	}

	return nil
}

// CatByColumn appends src's columns after the receiver's columns.
// Errors as CatByRow, with ErrUnequalRowCount for the shape check.
func (m *Matrix[T]) CatByColumn(src *Matrix[T], mode ConcatMode) error {
	if err := m.catAlong(colAxis, src, mode); err != nil {
		return matrixErrorf(ctxCatByColumn, err)
	}

	return nil
}

// catAlong is the axis-generic concatenation.
func (m *Matrix[T]) catAlong(ax axis, src *Matrix[T], mode ConcatMode) error {
	if src == nil {
		return ErrNilMatrix
	}
	if src == m {
		if mode == ConcatMove {
			return ErrCurrentMatrixAsArg
		}
		src = m.Clone() // self-duplication reads from a snapshot
	}
	if src.IsEmpty() {
		return nil
	}
	if m.IsEmpty() {
		if err := m.validateShape(src.row.size, src.col.size); err != nil {
			return err
		}
		if mode == ConcatMove && m.withinCeiling(src) {
			m.adopt(src)
		} else {
			m.copyBlock(src, ax, 0, src.ext(ax).size)
			if mode == ConcatMove {
				src.release()
			}
		}

		return nil
	}

	minor := ax.other()
	if m.ext(minor).size != src.ext(minor).size {
		if ax == rowAxis {
			return ErrUnequalColumnCount
		}

		return ErrUnequalRowCount
	}
	n, k := m.ext(ax).size, src.ext(ax).size
	total := n + k
	if total > m.options().maxDim {
		return ErrDimensionTooLarge
	}

	switch e, se := m.ext(ax), src.ext(ax); {
	case total <= e.capacity:
		m.recenter(ax, n, total)
		m.copyUnits(src, ax, 0, n, k)
	case mode == ConcatMove && total <= se.capacity && m.withinCeiling(src):
		// Move the source's units to the tail of the centered result inside
		// its own arena, then prepend the receiver's units and adopt.
		newOff := center(se.capacity, total)
		src.shiftAxis(ax, 0, k, newOff+n-se.offset)
		se.size, se.offset = total, newOff
		src.copyUnits(m, ax, 0, 0, n)
		m.adopt(src)
	default:
		rows, cols := m.row.size, m.col.size
		if ax == rowAxis {
			rows = total
		} else {
			cols = total
		}
		m.relocate(m.implicitCapacity(m.row, rows), m.implicitCapacity(m.col, cols),
			rows, cols, identity(m.row.size), identity(m.col.size), *new(T))
		m.copyUnits(src, ax, 0, n, k)
	}
	if mode == ConcatMove {
		src.release()
	}

	return nil
}

// withinCeiling reports whether src's arena respects m's capacity ceiling,
// which is required before m may adopt it.
func (m *Matrix[T]) withinCeiling(src *Matrix[T]) bool {
	max := m.options().maxDim

	return src.row.capacity <= max && src.col.capacity <= max
}

// copyUnits copies count units of from (starting at fromPos along ax) into m
// starting at toPos. Minor sizes must match.
func (m *Matrix[T]) copyUnits(from *Matrix[T], ax axis, fromPos, toPos, count int) {
	minor := m.ext(ax.other()).size
	for i := 0; i < count; i++ {
		for j := 0; j < minor; j++ {
			*m.cellAxis(ax, toPos+i, j) = *from.cellAxis(ax, fromPos+i, j)
		}
	}
}

// copyBlock replaces m's storage with an exact copy of from's units [first, last) along ax.
func (m *Matrix[T]) copyBlock(from *Matrix[T], ax axis, first, last int) {
	rows, cols := from.row.size, from.col.size
	if ax == rowAxis {
		rows = last - first
	} else {
		cols = last - first
	}
	m.allocExact(rows, cols)
	m.copyUnits(from, ax, first, 0, last-first)
}

// blockShape returns the shape of units [first, last) of m along ax.
func (m *Matrix[T]) blockShape(ax axis, first, last int) (rows, cols int) {
	if ax == rowAxis {
		return last - first, m.col.size
	}

	return m.row.size, last - first
}

// SplitByRow moves rows [pos, Rows()) into dst; the receiver keeps [0, pos).
// MAIN DESCRIPTION:
//   - The receiver is truncated in place: capacity kept, offset re-centered.
//   - dst's previous content is replaced by an exact-capacity copy of the tail.
//
// Errors:
//   - ErrNilMatrix, ErrCurrentMatrixAsArg (dst == receiver),
//     ErrInvalidRowIndex unless 1 <= pos < Rows(), ErrDimensionTooLarge.
//
// Complexity:
//   - O((rows-pos)*cols) + O(pos*colCap) for the re-centering move.
func (m *Matrix[T]) SplitByRow(dst *Matrix[T], pos int) error {
	if err := m.splitAlong(rowAxis, dst, pos); err != nil {
		return matrixIndexErrorf(ctxSplitByRow, pos, err)
	}

	return nil
}

// SplitByColumn moves columns [pos, Cols()) into dst; the receiver keeps [0, pos).
// Errors as SplitByRow, with ErrInvalidColumnIndex.
func (m *Matrix[T]) SplitByColumn(dst *Matrix[T], pos int) error {
	if err := m.splitAlong(colAxis, dst, pos); err != nil {
		return matrixIndexErrorf(ctxSplitByCol, pos, err)
	}

	return nil
}

// splitPosition validates 1 <= pos < size along ax.
func (m *Matrix[T]) splitPosition(ax axis, pos int) error {
	if pos < 1 || pos >= m.ext(ax).size {
		if ax == rowAxis {
			return ErrInvalidRowIndex
		}

		return ErrInvalidColumnIndex
	}

	return nil
}

// splitAlong is the axis-generic in-place split.
func (m *Matrix[T]) splitAlong(ax axis, dst *Matrix[T], pos int) error {
	if dst == nil {
		return ErrNilMatrix
	}
	if dst == m {
		return ErrCurrentMatrixAsArg
	}
	if err := m.splitPosition(ax, pos); err != nil {
		return err
	}
	size := m.ext(ax).size
	if err := dst.validateShape(m.blockShape(ax, pos, size)); err != nil {
		return err
	}

	dst.copyBlock(m, ax, pos, size)
	m.recenter(ax, pos, pos)

	return nil
}

// SplitByRowInto writes rows [0, pos) into first and [pos, Rows()) into second.
// Either destination may be the receiver, in which case it is truncated in
// place; otherwise the receiver is left unchanged.
//
// Errors: ErrNilMatrix, ErrSameMatrixMultipleArgs (first == second),
// ErrInvalidRowIndex, ErrDimensionTooLarge.
func (m *Matrix[T]) SplitByRowInto(first, second *Matrix[T], pos int) error {
	if err := m.splitInto(rowAxis, first, second, pos); err != nil {
		return matrixIndexErrorf(ctxSplitByRow, pos, err)
	}

	return nil
}

// SplitByColumnInto is SplitByRowInto for columns.
func (m *Matrix[T]) SplitByColumnInto(first, second *Matrix[T], pos int) error {
	if err := m.splitInto(colAxis, first, second, pos); err != nil {
		return matrixIndexErrorf(ctxSplitByCol, pos, err)
	}

	return nil
}

// splitInto is the axis-generic two-destination split.
func (m *Matrix[T]) splitInto(ax axis, first, second *Matrix[T], pos int) error {
	if first == nil || second == nil {
		return ErrNilMatrix
	}
	if first == second {
		return ErrSameMatrixMultipleArgs
	}
	if first == m {
		return m.splitAlong(ax, second, pos)
	}
	if err := m.splitPosition(ax, pos); err != nil {
		return err
	}
	size := m.ext(ax).size
	if err := first.validateShape(m.blockShape(ax, 0, pos)); err != nil {
		return err
	}
	if second != m {
		if err := second.validateShape(m.blockShape(ax, pos, size)); err != nil {
			return err
		}
	}

	first.copyBlock(m, ax, 0, pos)
	if second != m {
		second.copyBlock(m, ax, pos, size)

		return nil
	}
	// The receiver keeps the tail: move it to the centered position.
	e := m.ext(ax)
	newOff := center(e.capacity, size-pos)
	m.shiftAxis(ax, pos, size, newOff-e.offset-pos)
	e.size, e.offset = size-pos, newOff

	return nil
}
