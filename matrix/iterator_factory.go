// SPDX-License-Identifier: MIT

// Package matrix - iterator factories.
//
// Begin/End pairs delimit half-open ranges [begin, end) in the iterator's own
// order. Row-scoped (Z) and column-scoped (N) variants delimit one row or
// column. *At factories position an iterator at arbitrary coordinates.

package matrix

// ---------- Z (row-major) ----------

// ZBegin returns a Z iterator at (0, 0).
func (m *Matrix[T]) ZBegin() ZIterator[T] { return newIterator[T, ZOrder](m, 0) }

// ZEnd returns the Z end sentinel.
func (m *Matrix[T]) ZEnd() ZIterator[T] { return newIterator[T, ZOrder](m, m.Len()) }

// ZRowBegin returns a Z iterator at the first cell of row.
func (m *Matrix[T]) ZRowBegin(row int) (ZIterator[T], error) {
	if row < 0 || row >= m.row.size {
		return ZIterator[T]{}, matrixIndexErrorf(ctxIterator, row, ErrInvalidRowIndex)
	}

	return newIterator[T, ZOrder](m, row*m.col.size), nil
}

// ZRowEnd returns a Z iterator one past the last cell of row.
func (m *Matrix[T]) ZRowEnd(row int) (ZIterator[T], error) {
	if row < 0 || row >= m.row.size {
		return ZIterator[T]{}, matrixIndexErrorf(ctxIterator, row, ErrInvalidRowIndex)
	}

	return newIterator[T, ZOrder](m, (row+1)*m.col.size), nil
}

// ZIteratorAt returns a Z iterator at (row, col).
func (m *Matrix[T]) ZIteratorAt(row, col int) (ZIterator[T], error) {
	return iteratorAt[T, ZOrder](m, row, col)
}

// ReverseZBegin returns a reverse Z iterator at the last cell.
func (m *Matrix[T]) ReverseZBegin() ReverseZIterator[T] {
	return newIterator[T, ReverseZOrder](m, 0)
}

// ReverseZEnd returns the reverse Z sentinel (one before the first cell).
func (m *Matrix[T]) ReverseZEnd() ReverseZIterator[T] {
	return newIterator[T, ReverseZOrder](m, m.Len())
}

// ReverseZRowBegin returns a reverse Z iterator at the last cell of row.
func (m *Matrix[T]) ReverseZRowBegin(row int) (ReverseZIterator[T], error) {
	if row < 0 || row >= m.row.size {
		return ReverseZIterator[T]{}, matrixIndexErrorf(ctxIterator, row, ErrInvalidRowIndex)
	}

	return newIterator[T, ReverseZOrder](m, (m.row.size-1-row)*m.col.size), nil
}

// ReverseZRowEnd returns a reverse Z iterator one past the first cell of row.
func (m *Matrix[T]) ReverseZRowEnd(row int) (ReverseZIterator[T], error) {
	if row < 0 || row >= m.row.size {
		return ReverseZIterator[T]{}, matrixIndexErrorf(ctxIterator, row, ErrInvalidRowIndex)
	}

	return newIterator[T, ReverseZOrder](m, (m.row.size-row)*m.col.size), nil
}

// ReverseZIteratorAt returns a reverse Z iterator at (row, col).
func (m *Matrix[T]) ReverseZIteratorAt(row, col int) (ReverseZIterator[T], error) {
	return iteratorAt[T, ReverseZOrder](m, row, col)
}

// ---------- N (column-major) ----------

// NBegin returns an N iterator at (0, 0).
func (m *Matrix[T]) NBegin() NIterator[T] { return newIterator[T, NOrder](m, 0) }

// NEnd returns the N end sentinel.
func (m *Matrix[T]) NEnd() NIterator[T] { return newIterator[T, NOrder](m, m.Len()) }

// NColumnBegin returns an N iterator at the first cell of col.
func (m *Matrix[T]) NColumnBegin(col int) (NIterator[T], error) {
	if col < 0 || col >= m.col.size {
		return NIterator[T]{}, matrixIndexErrorf(ctxIterator, col, ErrInvalidColumnIndex)
	}

	return newIterator[T, NOrder](m, col*m.row.size), nil
}

// NColumnEnd returns an N iterator one past the last cell of col.
func (m *Matrix[T]) NColumnEnd(col int) (NIterator[T], error) {
	if col < 0 || col >= m.col.size {
		return NIterator[T]{}, matrixIndexErrorf(ctxIterator, col, ErrInvalidColumnIndex)
	}

	return newIterator[T, NOrder](m, (col+1)*m.row.size), nil
}

// NIteratorAt returns an N iterator at (row, col).
func (m *Matrix[T]) NIteratorAt(row, col int) (NIterator[T], error) {
	return iteratorAt[T, NOrder](m, row, col)
}

// ReverseNBegin returns a reverse N iterator at the last cell.
func (m *Matrix[T]) ReverseNBegin() ReverseNIterator[T] {
	return newIterator[T, ReverseNOrder](m, 0)
}

// ReverseNEnd returns the reverse N sentinel (one before the first cell).
func (m *Matrix[T]) ReverseNEnd() ReverseNIterator[T] {
	return newIterator[T, ReverseNOrder](m, m.Len())
}

// ReverseNColumnBegin returns a reverse N iterator at the last cell of col.
func (m *Matrix[T]) ReverseNColumnBegin(col int) (ReverseNIterator[T], error) {
	if col < 0 || col >= m.col.size {
		return ReverseNIterator[T]{}, matrixIndexErrorf(ctxIterator, col, ErrInvalidColumnIndex)
	}

	return newIterator[T, ReverseNOrder](m, (m.col.size-1-col)*m.row.size), nil
}

// ReverseNColumnEnd returns a reverse N iterator one past the first cell of col.
func (m *Matrix[T]) ReverseNColumnEnd(col int) (ReverseNIterator[T], error) {
	if col < 0 || col >= m.col.size {
		return ReverseNIterator[T]{}, matrixIndexErrorf(ctxIterator, col, ErrInvalidColumnIndex)
	}

	return newIterator[T, ReverseNOrder](m, (m.col.size-col)*m.row.size), nil
}

// ReverseNIteratorAt returns a reverse N iterator at (row, col).
func (m *Matrix[T]) ReverseNIteratorAt(row, col int) (ReverseNIterator[T], error) {
	return iteratorAt[T, ReverseNOrder](m, row, col)
}

// ---------- Const ranges ----------

// ConstZBegin returns a read-only Z iterator at (0, 0).
func (m *Matrix[T]) ConstZBegin() ConstZIterator[T] { return m.ZBegin().Const() }

// ConstZEnd returns the read-only Z end sentinel.
func (m *Matrix[T]) ConstZEnd() ConstZIterator[T] { return m.ZEnd().Const() }

// ConstNBegin returns a read-only N iterator at (0, 0).
func (m *Matrix[T]) ConstNBegin() ConstNIterator[T] { return m.NBegin().Const() }

// ConstNEnd returns the read-only N end sentinel.
func (m *Matrix[T]) ConstNEnd() ConstNIterator[T] { return m.NEnd().Const() }

// ConstReverseZBegin returns a read-only reverse Z iterator at the last cell.
func (m *Matrix[T]) ConstReverseZBegin() ConstReverseZIterator[T] {
	return m.ReverseZBegin().Const()
}

// ConstReverseZEnd returns the read-only reverse Z sentinel.
func (m *Matrix[T]) ConstReverseZEnd() ConstReverseZIterator[T] { return m.ReverseZEnd().Const() }

// ConstReverseNBegin returns a read-only reverse N iterator at the last cell.
func (m *Matrix[T]) ConstReverseNBegin() ConstReverseNIterator[T] {
	return m.ReverseNBegin().Const()
}

// ConstReverseNEnd returns the read-only reverse N sentinel.
func (m *Matrix[T]) ConstReverseNEnd() ConstReverseNIterator[T] { return m.ReverseNEnd().Const() }

// iteratorAt positions an iterator of order O at (row, col).
func iteratorAt[T any, O Traversal](m *Matrix[T], row, col int) (Iterator[T, O], error) {
	if !m.inBounds(row, col) {
		return Iterator[T, O]{}, matrixCellErrorf(ctxIterator, row, col, ErrInvalidElementIndex)
	}
	var o O

	return newIterator[T, O](m, o.position(row, col, m.row.size, m.col.size)), nil
}
