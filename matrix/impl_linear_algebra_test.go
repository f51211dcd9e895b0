// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthospace/matrix"
)

// TestHelpers_InterfaceHiding_Fallback ensures that using a wrapper which
// hides the concrete type forces the interface fallback path and produces
// the same results as the bare Dense.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 3, 7)
	b := RandFilledDense(t, 3, 5, 8)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 1e-15)

	s1, err := matrix.Add(a, a)
	require.NoError(t, err)
	s2, err := matrix.Add(hide{a}, a)
	require.NoError(t, err)
	CompareExact(t, mustRowsOf(t, s1), s2)

	t1, err := matrix.Transpose(a)
	require.NoError(t, err)
	t2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, mustRowsOf(t, t1), t2)
}

func mustRowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Rectangular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, c)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScale(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	big := MustRows(t, [][]float64{{math.MaxFloat64}})
	_, err = matrix.Scale(big, 2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMatVecMatTVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	yt, err := matrix.MatTVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, yt)

	yh, err := matrix.MatTVec(hide{a}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, yt, yh)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatTVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve_PartialPivoting(t *testing.T) {
	// a zero leading entry forces a row swap before elimination
	a := MustRows(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}})
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	x, err := matrix.Solve(a, id, 0)
	require.NoError(t, err)
	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	CompareClose(t, ax, id, 0, 1e-12)

	// the permutation helpers undo a row shuffle of the system
	perm := []int{2, 0, 1}
	pa, err := matrix.PermuteRows(a, perm)
	require.NoError(t, err)
	inv, err := matrix.InversePermutation(perm)
	require.NoError(t, err)
	back, err := matrix.PermuteRows(pa, inv)
	require.NoError(t, err)
	CompareExact(t, mustRowsOf(t, a), back)
}

func TestSolve_Singular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {2, 4}})
	rhs := MustRows(t, [][]float64{{1}, {1}})
	_, err := matrix.Solve(a, rhs, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(a, rhs, -1)
	require.ErrorIs(t, err, matrix.ErrBadTolerance)
}

func TestSolve(t *testing.T) {
	a := MustRows(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}})
	xWant := MustRows(t, [][]float64{{1, -1}, {2, 0}, {3, 4}})
	b, err := matrix.Mul(a, xWant)
	require.NoError(t, err)

	x, err := matrix.Solve(a, b, 1e-12)
	require.NoError(t, err)
	CompareClose(t, x, xWant, 0, 1e-12)

	_, err = matrix.Solve(a, MustDense(t, 2, 1), 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveUpper(t *testing.T) {
	u := MustRows(t, [][]float64{{2, 1, -1}, {0, 3, 2}, {0, 0, 4}})
	xWant := MustRows(t, [][]float64{{1}, {-2}, {0.5}})
	b, err := matrix.Mul(u, xWant)
	require.NoError(t, err)

	x, err := matrix.SolveUpper(u, b, 1e-12)
	require.NoError(t, err)
	CompareClose(t, x, xWant, 0, 1e-14)

	// entries below the diagonal are ignored
	MustSet(t, u, 2, 0, 1e6)
	x2, err := matrix.SolveUpper(u, b, 1e-12)
	require.NoError(t, err)
	CompareClose(t, x2, xWant, 0, 1e-14)

	// the pivot scale is the diagonal, a large off-diagonal entry does not raise it
	skew := MustRows(t, [][]float64{{1, 1e6}, {0, 1e-5}})
	_, err = matrix.SolveUpper(skew, MustRows(t, [][]float64{{1}, {1}}), 1e-10)
	require.NoError(t, err)

	sing := MustRows(t, [][]float64{{1, 1}, {0, 1e-20}})
	_, err = matrix.SolveUpper(sing, MustRows(t, [][]float64{{1}, {1}}), 1e-12)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	id, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	CompareClose(t, id, I, 0, 1e-12)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNorms(t *testing.T) {
	a := MustRows(t, [][]float64{{3, 0}, {0, -4}})
	f, err := matrix.FrobeniusNorm(a)
	require.NoError(t, err)
	require.InDelta(t, 5.0, f, 1e-15)

	mx, err := matrix.MaxAbs(a)
	require.NoError(t, err)
	require.Equal(t, 4.0, mx)

	// scaled accumulation survives entries whose squares overflow
	big := MustRows(t, [][]float64{{1e200, 1e200}})
	f, err = matrix.FrobeniusNorm(big)
	require.NoError(t, err)
	require.InEpsilon(t, math.Sqrt2*1e200, f, 1e-12)
}

func TestResidual(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 1}, {2, 2}})
	x := MustRows(t, [][]float64{{1}, {-1}})
	r, err := matrix.Residual(a, x)
	require.NoError(t, err)
	require.Equal(t, 0.0, r)
}
