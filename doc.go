// Package lvmatrix is a generic, resizable two-dimensional container for Go
// with amortized row/column insertion at either edge and random-access
// iterators in row-major and column-major order.
//
// What is inside?
//
//	matrix/        : Matrix[T]: centered-slack capacity model, structural
//	                 mutators (Insert/Erase/Resize/Cat/Split/Transpose) and
//	                 Z/N iterators with full random-access arithmetic
//	matrix/linalg  : float64 kernels: Add, Sub, Scale, Mul, MatVec, LU,
//	                 Determinant, Inverse, Solve, and gonum interop
//	matrix/codec   : deterministic CBOR and YAML documents of a matrix
//	cmd/matrixtool : inspect and reshape matrix documents from the shell
//
// Quick start:
//
//	m, _ := matrix.NewFilled(3, 4, -2)
//	_ = m.InsertRow(1)              // 4×4, capacity 6×5, offsets (1,0)
//	it := m.ReverseZBegin()         // last cell
//	fmt.Println(it.Value())         // -2
//
// The root package contains no code; import the subpackages directly.
package lvmatrix
