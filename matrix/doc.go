// Package matrix provides Matrix[T], a generic resizable two-dimensional
// container, and random-access iterators over it.
//
// The matrix package provides:
//
//   - One contiguous arena per matrix, over-allocated independently in each
//     dimension. The live region floats inside it with the slack centered:
//     offset == (capacity-size)/2 in both dimensions.
//   - Structural mutators (Reserve, Resize, InsertRow/Column, EraseRow/Column,
//     Transpose, CatByRow/Column, SplitByRow/Column) that consume slack on the
//     appropriate side instead of shifting every element, and grow
//     geometrically (capped at MaxAllowedDimension) when slack runs out.
//   - Iterators in row-major (Z) and column-major (N) order, forward or
//     reverse, with full random-access arithmetic across row/column boundaries.
//
// A Matrix is single-owner and not safe for concurrent mutation. Iterators do
// not own the matrix and are invalidated by any structural mutator.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
//
// Quick example:
//
//	m, _ := matrix.NewFromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
//	_ = m.InsertRowFill(1, 0)            // 3×3, capacity grows with slack
//	for it := m.NBegin(); it.Less(m.NEnd()); it.Inc() {
//		fmt.Print(it.Value(), " ")      // 1 0 4 2 0 5 3 0 6
//	}
package matrix
