// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleMatrix_InsertRowFill shows that capacity grows with slack and that
// the offsets stay centered.
func ExampleMatrix_InsertRowFill() {
	m, _ := matrix.NewFromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
	_ = m.InsertRowFill(1, 0)

	ro, _ := m.RowCapacityOffset()
	co, _ := m.ColCapacityOffset()
	fmt.Printf("size %dx%d capacity %dx%d offset (%d,%d)\n",
		m.Rows(), m.Cols(), m.RowCapacity(), m.ColCapacity(), ro, co)
	fmt.Print(m)
	// Output:
	// size 3x3 capacity 5x4 offset (1,0)
	// [1, 2, 3]
	// [0, 0, 0]
	// [4, 5, 6]
}

// ExampleMatrix_NBegin walks column-major across column boundaries.
func ExampleMatrix_NBegin() {
	m, _ := matrix.NewFromSlice(3, 3, []int{1, 2, 3, 0, 0, 0, 4, 5, 6})
	for it := m.NBegin(); it.Less(m.NEnd()); it.Inc() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println()
	// Output:
	// 1 0 4 2 0 5 3 0 6
}

// ExampleMatrix_CatByRow concatenates and splits back.
func ExampleMatrix_CatByRow() {
	a, _ := matrix.NewFromSlice(1, 2, []string{"a", "b"})
	b, _ := matrix.NewFromSlice(1, 2, []string{"c", "d"})
	_ = a.CatByRow(b, matrix.ConcatMove)
	fmt.Println(a.Values(), b.IsEmpty())

	tail := matrix.New[string]()
	_ = a.SplitByRow(tail, 1)
	fmt.Println(a.Values(), tail.Values())
	// Output:
	// [a b c d] true
	// [a b] [c d]
}

// ExampleSortRange sorts a matrix in column-major order.
func ExampleSortRange() {
	m, _ := matrix.NewFromSlice(2, 3, []int{6, 4, 2, 5, 3, 1})
	matrix.SortRange(m.NBegin(), m.NEnd())
	fmt.Print(m)
	// Output:
	// [1, 3, 5]
	// [2, 4, 6]
}
