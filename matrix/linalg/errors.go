// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned by kernels that require rows == cols.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrNullDeterminant is returned when a matrix is singular (no inverse, no unique solution).
	ErrNullDeterminant = errors.New("linalg: null determinant")

	// ErrDivisionByZero is returned when a factorization without pivoting meets a zero pivot.
	ErrDivisionByZero = errors.New("linalg: division by zero pivot")

	// ErrVectorLength is returned when a vector length does not match the matrix.
	ErrVectorLength = errors.New("linalg: vector length mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opLU          = "LU"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opFromGonum   = "FromGonum"
	opSolveGonum  = "SolveGonum"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("linalg.%s: %w", tag, err)
}
