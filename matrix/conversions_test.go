// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/orthospace/matrix"
)

func TestFromRows_Validation(t *testing.T) {
	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 1), 1))
	// policy sticks to the matrix
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

func TestToRows_Copies(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustRows(t, src)
	src[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	rows, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)
}

func TestGonumRoundTrip(t *testing.T) {
	a := RandFilledDense(t, 4, 3, 77)
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 3, c)

	// independent buffers
	g.Set(0, 0, 42)
	require.NotEqual(t, 42.0, MustAt(t, a, 0, 0))

	back, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	require.Equal(t, 3, back.Rows())
	require.Equal(t, 42.0, MustAt(t, back, 0, 0))
	require.Equal(t, MustAt(t, a, 2, 1), MustAt(t, back, 1, 2))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(mat.NewDense(1, 1, []float64{math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
