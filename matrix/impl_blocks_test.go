// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthospace/matrix"
)

func TestBlock(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b, err := matrix.Block(a, 0, 1, 2, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}, {5, 6}}, b)

	empty, err := matrix.Block(a, 0, 3, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.Block(a, 2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestStacking(t *testing.T) {
	top := MustRows(t, [][]float64{{1, 2}})
	bottom := MustRows(t, [][]float64{{3, 4}, {5, 6}})
	v, err := matrix.VStack(top, bottom)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, v)

	left := MustRows(t, [][]float64{{1}, {2}})
	h, err := matrix.HStack(left, MustRows(t, [][]float64{{3, 4}, {5, 6}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3, 4}, {2, 5, 6}}, h)

	_, err = matrix.VStack(top, left)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.HStack(top, left)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestUpperTriangular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {1, 1, 1}})
	u, err := matrix.UpperTriangular(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {0, 5, 6}, {0, 0, 9}, {0, 0, 0}}, u)

	ok, err := matrix.IsUpperTriangular(u)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.IsUpperTriangular(a)
	require.NoError(t, err)
	require.False(t, ok)

	MustSet(t, u, 1, 0, 1e-12)
	ok, err = matrix.IsUpperTriangular(u)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.IsUpperTriangular(u, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsOrthonormalColumns(t *testing.T) {
	q := MustRows(t, [][]float64{{1, 0}, {0, 1}, {0, 0}})
	ok, err := matrix.IsOrthonormalColumns(q)
	require.NoError(t, err)
	require.True(t, ok)

	z := MustRows(t, [][]float64{{1, 0}, {0, 0}, {0, 0}})
	dev, err := matrix.OrthonormalityDeviation(z)
	require.NoError(t, err)
	require.Equal(t, 1.0, dev)
	ok, err = matrix.IsOrthonormalColumns(z)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMaxAbsDiagonal(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 100, 0}, {0, -7, 0}})
	d, err := matrix.MaxAbsDiagonal(a)
	require.NoError(t, err)
	require.Equal(t, 7.0, d)

	d, err = matrix.MaxAbsDiagonal(hide{a})
	require.NoError(t, err)
	require.Equal(t, 7.0, d)

	_, err = matrix.MaxAbsDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
