// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrix/linalg"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAsGonumReadsLiveRegion(t *testing.T) {
	m := mustF(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, m.InsertColumnFill(0, 0)) // offsets must not leak into the view

	g := linalg.AsGonum(m)
	r, c := g.Dims()
	require.Equal(t, [2]int{2, 4}, [2]int{r, c})
	require.Equal(t, 6.0, g.At(1, 3))
	require.Equal(t, 6.0, g.T().At(3, 1))
	require.Panics(t, func() { g.At(2, 0) })

	want := mat.NewDense(2, 4, []float64{0, 1, 2, 3, 0, 4, 5, 6})
	require.True(t, mat.Equal(want, g))
}

func TestFromGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	m, err := linalg.FromGonum(src, matrix.WithMaxDimension(8))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, m.Values())
	require.Equal(t, 8, m.MaxDimension())

	tr, err := linalg.FromGonum(src.T())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 4}, tr.Values())

	_, err = linalg.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolveGonumMatchesNative(t *testing.T) {
	a := mustF(t, 3, 3, 2, 1, -1, -3, -1, 2, -2, 1, 2)
	b := mustF(t, 3, 1, 8, -11, -3)

	got, err := linalg.SolveGonum(a, b)
	require.NoError(t, err)
	requireNear(t, mustF(t, 3, 1, 2, 3, -1), got)

	native, err := linalg.Solve(a, b)
	require.NoError(t, err)
	requireNear(t, native, got)

	_, err = linalg.SolveGonum(mustF(t, 2, 2, 1, 2, 2, 4), mustF(t, 2, 1, 1, 1))
	require.ErrorIs(t, err, linalg.ErrNullDeterminant)
	_, err = linalg.SolveGonum(a, mustF(t, 2, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrUnequalDimensions)
}
