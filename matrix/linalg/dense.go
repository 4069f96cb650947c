// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/lvmatrix/matrix"

// ZeroSum is the initial accumulator for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot.
const ZeroPivot = 0.0

// dense is a flat row-major snapshot of a matrix's live region.
type dense struct {
	r, c int
	data []float64
}

// snapshot copies the live region of m. m must be non-nil.
func snapshot(m *matrix.Matrix[float64]) dense {
	return dense{r: m.Rows(), c: m.Cols(), data: m.Values()}
}

func (d dense) at(i, j int) float64 { return d.data[i*d.c+j] }

func (d dense) set(i, j int, v float64) { d.data[i*d.c+j] = v }

// newDense allocates a zeroed r×c scratch.
func newDense(r, c int) dense {
	return dense{r: r, c: c, data: make([]float64, r*c)}
}

// toMatrix hands the scratch over to a new exact-capacity Matrix.
// A 0×0 scratch yields an empty matrix.
func (d dense) toMatrix() (*matrix.Matrix[float64], error) {
	if d.r == 0 && d.c == 0 {
		return matrix.New[float64](), nil
	}

	return matrix.NewFromSliceMove(d.r, d.c, d.data)
}

// validateNotNil reports ErrNilMatrix for any nil operand.
func validateNotNil(ms ...*matrix.Matrix[float64]) error {
	for _, m := range ms {
		if m == nil {
			return matrix.ErrNilMatrix
		}
	}

	return nil
}

// validateSquare requires a non-nil, non-empty square matrix.
func validateSquare(m *matrix.Matrix[float64]) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if m.IsEmpty() {
		return matrix.ErrNullOrNegDimension
	}
	if m.Rows() != m.Cols() {
		return ErrNotSquare
	}

	return nil
}
