// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// LU performs Doolittle LU decomposition A = L·U without pivoting.
// L is unit lower triangular, U is upper triangular.
//
// Implementation:
//   - Stage 1: validate a non-empty square input.
//   - Stage 2: for each pivot row i compute U[i][j≥i], then L[j>i][i].
//   - Stage 3: fail on a zero pivot instead of producing Inf/NaN.
//
// Errors: ErrNilMatrix, ErrNullOrNegDimension, ErrNotSquare, ErrDivisionByZero.
// Complexity: Time O(n³), Space O(n²) for L and U.
func LU(m *matrix.Matrix[float64]) (*matrix.Matrix[float64], *matrix.Matrix[float64], error) {
	if err := validateSquare(m); err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}
	a := snapshot(m)
	n := a.r
	L, U := newDense(n, n), newDense(n, n)
	for i := 0; i < n; i++ {
		L.set(i, i, 1)
	}

	var (
		i, j, k int
		sum     float64
		uDiag   float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.at(i, k) * U.at(k, j)
			}
			U.set(i, j, a.at(i, j)-sum)
		}
		uDiag = U.at(i, i)
		if uDiag == ZeroPivot && i < n-1 {
			return nil, nil, linalgErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrDivisionByZero))
		}
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.at(j, k) * U.at(k, i)
			}
			L.set(j, i, (a.at(j, i)-sum)/uDiag)
		}
	}

	lm, err := L.toMatrix()
	if err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}
	um, err := U.toMatrix()
	if err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}

	return lm, um, nil
}

// lup factors a in place as P·A = L·U with partial pivoting (L below the
// diagonal, U on and above). perm[i] is the source row of row i; sign is the
// permutation parity. singular reports a zero pivot column.
func lup(a dense) (perm []int, sign float64, singular bool) {
	n := a.r
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a.at(k, k))
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.at(i, k)); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return perm, sign, true
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			f = a.at(i, k) / a.at(k, k)
			a.set(i, k, f)
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.at(k, j)
			}
		}
	}

	return perm, sign, false
}

// Determinant returns det(m) via partial-pivoting elimination.
// A singular matrix yields 0 and no error.
// Errors: ErrNilMatrix, ErrNullOrNegDimension, ErrNotSquare.
func Determinant(m *matrix.Matrix[float64]) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, linalgErrorf(opDeterminant, err)
	}
	a := snapshot(m)
	_, det, singular := lup(a)
	if singular {
		return 0, nil
	}
	for i := 0; i < a.r; i++ {
		det *= a.at(i, i)
	}

	return det, nil
}

// luSolve solves (P·A) x = P·b for one right-hand side in place of x.
func luSolve(a dense, perm []int, b, x []float64) {
	n := a.r
	var sum float64
	for i := 0; i < n; i++ { // forward: L·y = P·b
		sum = ZeroSum
		for k := 0; k < i; k++ {
			sum += a.at(i, k) * x[k]
		}
		x[i] = b[perm[i]] - sum
	}
	for i := n - 1; i >= 0; i-- { // backward: U·x = y
		sum = ZeroSum
		for k := i + 1; k < n; k++ {
			sum += a.at(i, k) * x[k]
		}
		x[i] = (x[i] - sum) / a.at(i, i)
	}
}

// Inverse returns m⁻¹, solving one column of the identity at a time.
// Errors: ErrNilMatrix, ErrNullOrNegDimension, ErrNotSquare, ErrNullDeterminant.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := validateSquare(m); err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	a := snapshot(m)
	perm, _, singular := lup(a)
	if singular {
		return nil, linalgErrorf(opInverse, ErrNullDeterminant)
	}

	n := a.r
	inv := newDense(n, n)
	e := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		clear(e)
		e[col] = 1
		luSolve(a, perm, e, x)
		for i := 0; i < n; i++ {
			inv.set(i, col, x[i])
		}
	}
	out, err := inv.toMatrix()
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}

	return out, nil
}

// Solve returns X such that A·X = B.
// Errors: ErrNilMatrix, ErrNullOrNegDimension, ErrNotSquare,
// ErrUnequalDimensions (B.Rows != A.Rows), ErrNullDeterminant.
func Solve(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := validateSquare(a); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	if b.Rows() != a.Rows() {
		return nil, linalgErrorf(opSolve, fmt.Errorf("rhs rows %d vs %d: %w", b.Rows(), a.Rows(), matrix.ErrUnequalDimensions))
	}
	lu := snapshot(a)
	perm, _, singular := lup(lu)
	if singular {
		return nil, linalgErrorf(opSolve, ErrNullDeterminant)
	}

	n, k := a.Rows(), b.Cols()
	out := newDense(n, k)
	rhs := make([]float64, n)
	x := make([]float64, n)
	for c := 0; c < k; c++ {
		col, err := b.Column(c)
		if err != nil {
			return nil, linalgErrorf(opSolve, err)
		}
		copy(rhs, col)
		luSolve(lu, perm, rhs, x)
		for i := 0; i < n; i++ {
			out.set(i, c, x[i])
		}
	}
	res, err := out.toMatrix()
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	return res, nil
}
