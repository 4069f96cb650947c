// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// Gonum adapts a *matrix.Matrix[float64] to gonum's mat.Matrix without
// copying. The view reads through the live region, so it must not outlive
// the next structural mutation of the wrapped matrix.
type Gonum struct {
	m *matrix.Matrix[float64]
}

// Compile-time assertion for mat.Matrix conformance.
var _ mat.Matrix = Gonum{}

// AsGonum returns a read-only gonum view of m.
func AsGonum(m *matrix.Matrix[float64]) Gonum { return Gonum{m: m} }

// Dims returns the live size.
func (g Gonum) Dims() (r, c int) { return g.m.Rows(), g.m.Cols() }

// At returns element (i, j). It panics with mat.ErrRowAccess or
// mat.ErrColAccess out of range, as gonum's own types do.
func (g Gonum) At(i, j int) float64 {
	if i < 0 || i >= g.m.Rows() {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= g.m.Cols() {
		panic(mat.ErrColAccess)
	}

	return *g.m.Ref(i, j)
}

// T returns the implicit transpose.
func (g Gonum) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies any gonum matrix into a new exact-capacity Matrix.
// A 0×0 source yields an empty matrix.
func FromGonum(a mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[float64], error) {
	if a == nil {
		return nil, linalgErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	if r == 0 && c == 0 {
		return matrix.New[float64](opts...), nil
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, a.At(i, j))
		}
	}
	m, err := matrix.NewFromSliceMove(r, c, data, opts...)
	if err != nil {
		return nil, linalgErrorf(opFromGonum, err)
	}

	return m, nil
}

// SolveGonum solves A·X = B with gonum's LAPACK-backed solver.
// A may be rectangular (least squares, as mat.Dense.Solve).
// Errors: ErrNilMatrix, ErrUnequalDimensions, ErrNullDeterminant when gonum
// reports the system as singular or ill-conditioned.
func SolveGonum(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, linalgErrorf(opSolveGonum, err)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return nil, linalgErrorf(opSolveGonum, matrix.ErrNullOrNegDimension)
	}
	if a.Rows() != b.Rows() {
		return nil, linalgErrorf(opSolveGonum, fmt.Errorf("rhs rows %d vs %d: %w", b.Rows(), a.Rows(), matrix.ErrUnequalDimensions))
	}

	var x mat.Dense
	if err := x.Solve(AsGonum(a), AsGonum(b)); err != nil {
		if errors.Is(err, mat.ErrSingular) {
			return nil, linalgErrorf(opSolveGonum, ErrNullDeterminant)
		}
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, linalgErrorf(opSolveGonum, fmt.Errorf("condition %g: %w", float64(cond), ErrNullDeterminant))
		}

		return nil, linalgErrorf(opSolveGonum, err)
	}

	return FromGonum(&x)
}
