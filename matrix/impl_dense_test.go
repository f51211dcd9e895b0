// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthospace/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 4},
		{2, 7},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDense_Set_RejectsNaNInf(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 99.0, MustAt(t, c, 0, 0))
}

func TestDense_ColSetCol(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, col)

	col[0] = 42 // copy, not alias
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	require.NoError(t, m.SetCol(2, []float64{7, 8}))
	CompareExact(t, [][]float64{{1, 2, 7}, {4, 5, 8}}, m)

	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetCol(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(0, []float64{1, math.NaN()}), matrix.ErrNaNInf)
	// rejected write leaves the column untouched
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDense_ViewSharesStorage(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())
	x, err := v.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, x)

	require.NoError(t, v.Set(0, 0, -5))
	require.Equal(t, -5.0, MustAt(t, m, 1, 1))

	mat, err := v.Materialize()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-5, 6}, {8, 9}}, mat)

	_, err = m.View(2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_Induced(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	sub, err := m.Induced([]int{1, 0}, []int{2, 0})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 4}, {3, 1}}, sub)

	empty, err := m.Induced([]int{0, 1}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = m.Induced([]int{2}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_DoApply(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	var sum float64
	m.Do(func(_, _ int, v float64) bool {
		sum += v
		return true
	})
	require.Equal(t, 10.0, sum)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 2 }))
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, m)

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_String(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
