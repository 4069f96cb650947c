// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] aggregate, constructors and size/capacity introspection.
//
// Purpose:
//   - Own one arena per matrix (single owner; copy = new exact buffer, move = transfer).
//   - Keep rows==0 <=> cols==0: a matrix is either fully empty or fully populated.
//   - Keep every offset centered: offset == (capacity-size)/2 in both dimensions.
//
// Complexity quicksheet:
//   - NewFilled/NewFromSlice/NewDiagonal/Clone: O(r*c); Move/Swap: O(1); introspection: O(1).

package matrix

import "fmt"

// axis selects a dimension for the axis-generic helpers.
type axis uint8

const (
	rowAxis axis = iota // rows: major index is the row
	colAxis             // columns: major index is the column
)

// other returns the orthogonal axis.
func (a axis) other() axis { return 1 - a }

// extent is the capacity-model state of one dimension.
//   - size: live rows/columns.
//   - capacity: physical rows/columns in the arena (>= size).
//   - offset: unused physical units before the first live one; meaningful iff capacity > 0.
type extent struct {
	size     int
	capacity int
	offset   int
}

// center applies the centering law.
func center(capacity, size int) int { return (capacity - size) / 2 }

// Matrix is a resizable two-dimensional container of T.
// The live region floats inside an over-allocated arena; the slack in each
// dimension is split around the live region by the centering law so that
// insertion and erasure near either edge move only one side of the data.
//
// A Matrix is single-owner and not safe for concurrent mutation.
// The zero value is an empty matrix with default options.
type Matrix[T any] struct {
	row  extent   // row dimension state
	col  extent   // column dimension state
	buf  arena[T] // owned storage
	opts Options  // capacity policy
	init bool     // opts resolved (zero value lazily gets defaults)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New returns an empty matrix (size 0, capacity 0, offsets absent).
// Complexity: O(1).
func New[T any](optFns ...Option) *Matrix[T] {
	return &Matrix[T]{opts: gatherOptions(optFns...), init: true}
}

// NewFilled creates a rows×cols matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and exact capacity.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and the instance ceiling.
//   - Stage 2: allocate rows×cols arena (no slack, offsets 0).
//   - Stage 3: fill.
//
// Errors:
//   - ErrNullOrNegDimension, ErrDimensionTooLarge.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T any](rows, cols int, fill T, optFns ...Option) (*Matrix[T], error) {
	m := New[T](optFns...)
	if err := m.validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	m.allocExact(rows, cols)
	m.buf.fillRect(0, rows, 0, cols, fill)

	return m, nil
}

// NewFromSlice creates a rows×cols matrix from data laid out row-major.
// data is copied; len(data) must equal rows*cols.
// Complexity: O(r*c).
func NewFromSlice[T any](rows, cols int, data []T, optFns ...Option) (*Matrix[T], error) {
	m := New[T](optFns...)
	if err := m.validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxNew, ErrDataSizeMismatch)
	}
	m.allocExact(rows, cols)
	copy(m.buf.data, data) // exact capacity: physical layout == logical layout

	return m, nil
}

// NewFromSliceMove is NewFromSlice without the copy: the matrix adopts data
// as its arena. The caller must not use data afterwards.
// Complexity: O(1).
func NewFromSliceMove[T any](rows, cols int, data []T, optFns ...Option) (*Matrix[T], error) {
	m := New[T](optFns...)
	if err := m.validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxNew, ErrDataSizeMismatch)
	}
	m.buf = arena[T]{data: data, rowCap: rows, colCap: cols}
	m.row = extent{size: rows, capacity: rows}
	m.col = extent{size: cols, capacity: cols}

	return m, nil
}

// NewDiagonal creates a size×size matrix holding diagonal on the main
// diagonal and nonDiagonal everywhere else.
// Complexity: O(n^2).
func NewDiagonal[T any](size int, nonDiagonal, diagonal T, optFns ...Option) (*Matrix[T], error) {
	m, err := NewFilled(size, size, nonDiagonal, optFns...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		*m.buf.at(i, i) = diagonal
	}

	return m, nil
}

// options returns the resolved policy, defaulting a zero-value Matrix.
func (m *Matrix[T]) options() Options {
	if !m.init {
		m.opts = defaultOptions()
		m.init = true
	}

	return m.opts
}

// validateShape checks a populated target shape against the instance ceiling.
func (m *Matrix[T]) validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrNullOrNegDimension
	}
	if max := m.options().maxDim; rows > max || cols > max {
		return ErrDimensionTooLarge
	}

	return nil
}

// allocExact replaces the storage with an exact rows×cols arena.
func (m *Matrix[T]) allocExact(rows, cols int) {
	m.buf = newArena[T](rows, cols)
	m.row = extent{size: rows, capacity: rows}
	m.col = extent{size: cols, capacity: cols}
}

// ext returns the state of one dimension.
func (m *Matrix[T]) ext(ax axis) *extent {
	if ax == rowAxis {
		return &m.row
	}

	return &m.col
}

// ---------- Introspection ----------

// Rows returns the number of live rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.row.size }

// Cols returns the number of live columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.col.size }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.row.size, m.col.size }

// Len returns rows*cols.
func (m *Matrix[T]) Len() int { return m.row.size * m.col.size }

// IsEmpty reports whether the matrix holds no elements.
func (m *Matrix[T]) IsEmpty() bool { return m.row.size == 0 }

// RowCapacity returns the number of physical rows in the arena.
func (m *Matrix[T]) RowCapacity() int { return m.row.capacity }

// ColCapacity returns the number of physical columns in the arena.
func (m *Matrix[T]) ColCapacity() int { return m.col.capacity }

// RowCapacityOffset returns the number of unused physical rows before the
// first live row. ok is false exactly when the row capacity is zero.
func (m *Matrix[T]) RowCapacityOffset() (offset int, ok bool) {
	if m.row.capacity == 0 {
		return 0, false
	}

	return m.row.offset, true
}

// ColCapacityOffset returns the number of unused physical columns before the
// first live column. ok is false exactly when the column capacity is zero.
func (m *Matrix[T]) ColCapacityOffset() (offset int, ok bool) {
	if m.col.capacity == 0 {
		return 0, false
	}

	return m.col.offset, true
}

// MaxDimension returns the capacity ceiling of this instance.
func (m *Matrix[T]) MaxDimension() int { return m.options().maxDim }

// ---------- Ownership ----------

// Clone returns a deep copy sized to the live region (no preserved slack).
// Options are carried over. Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := &Matrix[T]{opts: m.options(), init: true}
	if m.IsEmpty() {
		return cp
	}
	cp.allocExact(m.row.size, m.col.size)
	for r := 0; r < m.row.size; r++ {
		copy(cp.buf.data[r*m.col.size:(r+1)*m.col.size], m.liveRow(r))
	}

	return cp
}

// Move transfers the arena to a new Matrix and resets m to empty.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{row: m.row, col: m.col, buf: m.buf, opts: m.options(), init: true}
	m.release()

	return out
}

// Swap exchanges the full state (storage, sizes, capacities, options) of m and other.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	if other == nil || other == m {
		return
	}
	m.options()
	other.options()
	*m, *other = *other, *m
}

// Clear empties the matrix: sizes, capacities and offsets are cleared.
func (m *Matrix[T]) Clear() { m.release() }

// release drops the storage and all capacity state.
func (m *Matrix[T]) release() {
	m.buf = arena[T]{}
	m.row = extent{}
	m.col = extent{}
}

// adopt takes over src's storage and capacity state, leaving src empty.
func (m *Matrix[T]) adopt(src *Matrix[T]) {
	m.buf, m.row, m.col = src.buf, src.row, src.col
	src.release()
}

// liveRow returns the live cells of logical row r as a slice into the arena.
func (m *Matrix[T]) liveRow(r int) []T {
	base := (m.row.offset+r)*m.buf.colCap + m.col.offset

	return m.buf.data[base : base+m.col.size]
}
