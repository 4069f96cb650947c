// SPDX-License-Identifier: MIT

// Package matrix - traversal strategies (linear order -> logical cell).
//
// Purpose:
//   - Collapse the address translation of all iterator variants into four tiny
//     strategy types; Iterator[T, O] is generic over the strategy.
//   - Z order: row-major (i = row*cols + col). N order: column-major (j = col*rows + row).
//   - Reverse orders walk the same cells with decreasing index.
//
// Complexity:
//   - coords/position: O(1), no allocation.

package matrix

// Traversal is the linear-order strategy of an iterator. It is implemented only
// by ZOrder, NOrder, ReverseZOrder and ReverseNOrder.
type Traversal interface {
	// coords maps a dereferenceable position to the logical (row, col).
	coords(pos, rows, cols int) (row, col int)
	// position is the inverse of coords.
	position(row, col, rows, cols int) int
}

// ZOrder is row-major traversal.
type ZOrder struct{}

// NOrder is column-major traversal.
type NOrder struct{}

// ReverseZOrder is row-major traversal from the last cell to the first.
type ReverseZOrder struct{}

// ReverseNOrder is column-major traversal from the last cell to the first.
type ReverseNOrder struct{}

func (ZOrder) coords(pos, _, cols int) (int, int) { return pos / cols, pos % cols }

func (ZOrder) position(row, col, _, cols int) int { return row*cols + col }

func (NOrder) coords(pos, rows, _ int) (int, int) { return pos % rows, pos / rows }

func (NOrder) position(row, col, rows, _ int) int { return col*rows + row }

func (ReverseZOrder) coords(pos, rows, cols int) (int, int) {
	return ZOrder{}.coords(rows*cols-1-pos, rows, cols)
}

func (ReverseZOrder) position(row, col, rows, cols int) int {
	return rows*cols - 1 - ZOrder{}.position(row, col, rows, cols)
}

func (ReverseNOrder) coords(pos, rows, cols int) (int, int) {
	return NOrder{}.coords(rows*cols-1-pos, rows, cols)
}

func (ReverseNOrder) position(row, col, rows, cols int) int {
	return rows*cols - 1 - NOrder{}.position(row, col, rows, cols)
}
