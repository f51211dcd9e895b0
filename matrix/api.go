// SPDX-License-Identifier: MIT
// Package matrix: constructors and comparison helpers used by the
// factorization packages and their tests.
//
// NewIdentity builds the lower block of a null-space basis; AllClose,
// MaxAbsDiff and Residual are the checks that results are measured with.

package matrix

// NewZeros returns a zero rows×cols *Dense, the starting point of permutation
// matrices. Errors: ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: the lower block of a null-space basis [X; I] is exactly this.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative rtol/atol are used by absolute value; NaN or Inf tolerances
// yield ErrNaNInf.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// MaxAbsDiff returns max |a_ij − b_ij| for matrices of identical shape.
// Time: O(r*c). Space: O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	return ewMaxAbsDiff(a, b)
}

// Residual returns max |(A·X)_ij|, the worst entry of the product.
// A null-space basis X of A makes this ≈ 0.
// Complexity: O(r*n*c).
func Residual(a, x Matrix) (float64, error) {
	ax, err := Mul(a, x)
	if err != nil {
		return 0, matrixErrorf("Residual", err)
	}

	return maxAbsData(ax.data), nil
}
