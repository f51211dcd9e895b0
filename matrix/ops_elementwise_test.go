// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthospace/matrix"
)

func TestAllClose_BasicTruthTable(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2 + 1e-9}, {3, 4}})

	cases := []struct {
		name       string
		rtol, atol float64
		want       bool
	}{
		{"exact tolerance rejects", 0, 0, false},
		{"atol covers", 0, 1e-8, true},
		{"rtol covers", 1e-9, 0, true},
		{"both too small", 1e-12, 1e-12, false},
		{"negative tolerances normalized", -1e-9, -1e-9, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.AllClose(a, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAllClose_FallbackMatchesFast(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 5, 4, 7)
	b := RandFilledDense(t, 5, 4, 7)
	MustSet(t, b, 4, 3, MustAt(t, b, 4, 3)+1e-6)

	for _, atol := range []float64{1e-7, 1e-5} {
		fast, err := matrix.AllClose(a, b, 0, atol)
		require.NoError(t, err)
		slow, err := matrix.AllClose(hide{a}, hide{b}, 0, atol)
		require.NoError(t, err)
		require.Equal(t, fast, slow, "atol=%g", atol)
	}
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2)
	_, err := matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, -2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4.5}})

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 4.0, d)

	d, err = matrix.MaxAbsDiff(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, 4.0, d)

	_, err = matrix.MaxAbsDiff(a, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResidual_WorstEntry(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}})
	x := MustRows(t, [][]float64{{-2}, {1}, {0}})

	r, err := matrix.Residual(a, x)
	require.NoError(t, err)
	require.Equal(t, 0.0, r)

	y := MustRows(t, [][]float64{{1}, {0}, {0}})
	r, err = matrix.Residual(a, y)
	require.NoError(t, err)
	require.Equal(t, 2.0, r)
}
