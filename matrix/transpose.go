// SPDX-License-Identifier: MIT

package matrix

// Transpose writes the transpose of the receiver into dst.
//
// When dst is the receiver, the transpose happens in place: row and column
// capacities and offsets are swapped and the arena storage is reused (both
// extents always fit, since the capacities are swapped with them). Otherwise
// dst's previous content is replaced by an exact-capacity copy, as on
// construction.
//
// Errors: ErrNilMatrix, ErrDimensionTooLarge (dst ceiling below the result).
// Complexity: O(r*c) time; O(r*c) scratch for the in-place case.
func (m *Matrix[T]) Transpose(dst *Matrix[T]) error {
	if dst == nil {
		return matrixErrorf(ctxTranspose, ErrNilMatrix)
	}
	if dst == m {
		m.transposeInPlace()

		return nil
	}
	if m.IsEmpty() {
		dst.release()

		return nil
	}
	if err := dst.validateShape(m.col.size, m.row.size); err != nil {
		return matrixErrorf(ctxTranspose, err)
	}

	dst.allocExact(m.col.size, m.row.size)
	for r := 0; r < m.row.size; r++ {
		for c, v := range m.liveRow(r) {
			*dst.buf.at(c, r) = v
		}
	}

	return nil
}

// transposeInPlace re-lays the arena with swapped strides.
func (m *Matrix[T]) transposeInPlace() {
	if m.IsEmpty() {
		return
	}
	snapshot := m.Values() // row-major live region
	rows, cols := m.row.size, m.col.size

	m.buf.rowCap, m.buf.colCap = m.buf.colCap, m.buf.rowCap
	m.row, m.col = m.col, m.row
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			*m.cell(c, r) = snapshot[r*cols+c]
		}
	}
}
