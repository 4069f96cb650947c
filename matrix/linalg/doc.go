// SPDX-License-Identifier: MIT
// Package linalg provides numeric kernels over *matrix.Matrix[float64]:
// element-wise Add/Sub/Scale, Mul, MatVec, Transpose, Doolittle LU,
// Determinant, Inverse and Solve, plus gonum interop (AsGonum, FromGonum,
// SolveGonum).
//
// Purpose:
//   - Keep the container package free of numeric concerns; kernels read the
//     live region through the public accessors and never depend on capacity.
//   - Every kernel allocates a fresh exact-capacity result; operands are never mutated.
//
// Errors:
//   - Shape and argument errors reuse the matrix sentinels (ErrNilMatrix,
//     ErrUnequalDimensions, ErrNullOrNegDimension).
//   - Numeric failures use ErrNotSquare, ErrNullDeterminant and ErrDivisionByZero.
//
// Determinism:
//   - Fixed loop orders (i→k→j for Mul, row-major elsewhere); no goroutines.
package linalg
