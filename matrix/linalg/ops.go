// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// addSub is the shared kernel of Add and Sub.
// Inputs must be non-nil and have identical shapes; sign is +1 or -1.
//
// Complexity: Time O(r*c), Space O(r*c) for the result.
func addSub(a, b *matrix.Matrix[float64], sign float64, opTag string) (*matrix.Matrix[float64], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, linalgErrorf(opTag, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, linalgErrorf(opTag, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrUnequalDimensions))
	}

	da, db := snapshot(a), snapshot(b)
	for idx := range da.data { // deterministic 0..n-1
		da.data[idx] += sign * db.data[idx]
	}
	res, err := da.toMatrix()
	if err != nil {
		return nil, linalgErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrUnequalDimensions.
func Add(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	return addSub(a, b, +1, opAdd)
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrUnequalDimensions.
func Sub(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	return addSub(a, b, -1, opSub)
}

// Scale returns alpha * m as a new matrix.
func Scale(m *matrix.Matrix[float64], alpha float64) (*matrix.Matrix[float64], error) {
	if err := validateNotNil(m); err != nil {
		return nil, linalgErrorf(opScale, err)
	}
	d := snapshot(m)
	for idx := range d.data {
		d.data[idx] *= alpha
	}
	res, err := d.toMatrix()
	if err != nil {
		return nil, linalgErrorf(opScale, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major snapshots, skipping zero A[i,k].
//
// Errors: ErrNilMatrix, ErrUnequalDimensions.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, linalgErrorf(opMul, fmt.Errorf("inner %d vs %d: %w",
			a.Cols(), b.Rows(), matrix.ErrUnequalDimensions))
	}
	if a.IsEmpty() || b.IsEmpty() {
		return matrix.New[float64](), nil
	}

	da, db := snapshot(a), snapshot(b)
	res := newDense(da.r, db.c)
	var (
		i, j, k int
		av      float64
	)
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			av = da.at(i, k)
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < db.c; j++ {
				res.data[i*res.c+j] += av * db.at(k, j)
			}
		}
	}
	out, err := res.toMatrix()
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}

	return out, nil
}

// Transpose returns mᵀ as a new exact-capacity matrix; m is not mutated.
func Transpose(m *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := validateNotNil(m); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}
	out := matrix.New[float64]()
	if err := m.Transpose(out); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x with len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *matrix.Matrix[float64], x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, linalgErrorf(opMatVec, fmt.Errorf("len %d vs cols %d: %w", len(x), m.Cols(), ErrVectorLength))
	}

	y := make([]float64, m.Rows())
	m.Do(func(i, j int, v float64) bool {
		if x[j] != 0 {
			y[i] += v * x[j]
		}

		return true
	})

	return y, nil
}
