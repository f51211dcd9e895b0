// SPDX-License-Identifier: MIT
// Package matrix - Householder QR kernels (plain, column-pivoted, full-pivoted).
//
// Purpose:
//   - Factor any rectangular m×n matrix as A·P = Q·R with Q orthogonal (m×m)
//     and R upper trapezoidal (m×n).
//   - Share one reflection loop across the three pivoting policies so the
//     numerical core stays identical and only the pivot choice differs.
//
// Conventions:
//   - Permutations are []int with (A·P)[:, j] = A[:, perm[j]].
//   - Full pivoting records the row interchange of step k as rowSwaps[k] = p
//     (rows k and p were exchanged). The swaps are folded into Q, so
//     A·P = Q·R holds without a separate row permutation.
//   - Entries of R below the diagonal are written as exact zeros.

package matrix

import (
	"fmt"
	"math"
)

const (
	opHouseholderQR        = "HouseholderQR"
	opHouseholderQRColPiv  = "HouseholderQRColPiv"
	opHouseholderQRFullPiv = "HouseholderQRFullPiv"
)

// pivotPolicy selects how (and whether) a Householder step chooses its pivot.
type pivotPolicy int

const (
	pivotNone pivotPolicy = iota
	pivotColumn
	pivotFull
)

// householderOutcome bundles everything a single factorization pass produces.
type householderOutcome struct {
	q        *Dense
	r        *Dense
	perm     []int
	rowSwaps []int
}

// HouseholderQR computes A = Q·R without pivoting.
// Implementation:
//   - Stage 1: Validate A (non-nil, finite) and densify a working copy.
//   - Stage 2: For k=0..min(m−1,n)−1 build the reflector for A[k:,k], apply it
//     to the trailing block A[k:,k:] and to the accumulator Qᵀ[k:,:].
//   - Stage 3: Return Q = (Qᵀ)ᵀ and R with exact zeros below the diagonal.
//
// Behavior highlights:
//   - Works for tall, square and wide inputs.
//   - A zero column is skipped (no reflection), so rank-deficient inputs never
//     divide by zero.
//
// Inputs:
//   - a: any Matrix (m×n), m,n ≥ 1.
//
// Returns:
//   - Q (*Dense): m×m orthogonal.
//   - R (*Dense): m×n upper trapezoidal.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Determinism:
//   - Fixed loop orders, no randomness; the reflector sign follows x₀ (sign(0)=+1).
//
// Complexity:
//   - Time O(m·n·min(m,n) + m²·min(m,n)), Space O(m² + m·n).
//
// AI-Hints:
//   - Q[:, n:] (for m > n) spans the orthogonal complement of range(A).
//   - The last m−r rows of Qᵀ span the left null space when rank(A) = r.
func HouseholderQR(a Matrix) (q, r *Dense, err error) {
	out, err := householder(a, pivotNone)
	if err != nil {
		return nil, nil, matrixErrorf(opHouseholderQR, err)
	}

	return out.q, out.r, nil
}

// HouseholderQRColPiv computes A·P = Q·R choosing, at each step, the remaining
// column with the largest Euclidean norm over rows k..m−1.
// Column norms are recomputed from scratch at every step (no downdating), so
// the pivot choice is exact at the cost of O(m·n) extra work per step.
// Ties keep the lowest column index.
//
// Returns:
//   - Q (m×m), R (m×n) and perm ([]int, length n).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(m·n·min(m,n) + m²·min(m,n)), Space O(m² + m·n).
//
// AI-Hints:
//   - |R_00| ≥ |R_11| ≥ ... holds for the pivoted diagonal, which makes the
//     count of |R_kk| > tol·|R_00| a usable numerical rank.
func HouseholderQRColPiv(a Matrix) (q, r *Dense, perm []int, err error) {
	out, err := householder(a, pivotColumn)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opHouseholderQRColPiv, err)
	}

	return out.q, out.r, out.perm, nil
}

// HouseholderQRFullPiv computes A·P = Q·R choosing, at each step, the entry of
// largest magnitude in the trailing block A[k:, k:] and moving it to (k,k)
// by one row swap and one column swap.
// Row swaps are folded into Q; rowSwaps[k] = p records that rows k and p
// were exchanged at step k (p == k means no swap). Ties keep the first
// entry in row-major order.
//
// Returns:
//   - Q (m×m), R (m×n), perm ([]int, length n), rowSwaps ([]int, length min(m,n)).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(m·n·min(m,n) + m²·min(m,n)), Space O(m² + m·n).
func HouseholderQRFullPiv(a Matrix) (q, r *Dense, perm []int, rowSwaps []int, err error) {
	out, err := householder(a, pivotFull)
	if err != nil {
		return nil, nil, nil, nil, matrixErrorf(opHouseholderQRFullPiv, err)
	}

	return out.q, out.r, out.perm, out.rowSwaps, nil
}

// householder is the shared reflection loop behind the three public kernels.
func householder(a Matrix, policy pivotPolicy) (*householderOutcome, error) {
	if err := ValidateFinite(a); err != nil {
		return nil, err
	}
	w, err := toDense(a)
	if err != nil {
		return nil, err
	}
	m, n := w.r, w.c
	qt, err := NewIdentity(m)
	if err != nil {
		return nil, err
	}

	steps := m
	if n < steps {
		steps = n
	}
	out := &householderOutcome{perm: IdentityPermutation(n)}
	if policy == pivotFull {
		out.rowSwaps = make([]int, steps)
	}

	v := make([]float64, m)
	var k, p, s int
	for k = 0; k < steps; k++ {
		switch policy {
		case pivotColumn:
			s = argmaxColumnNorm(w, k)
			if s != k {
				swapCols(w, k, s)
				out.perm[k], out.perm[s] = out.perm[s], out.perm[k]
			}
		case pivotFull:
			p, s = argmaxTrailing(w, k)
			out.rowSwaps[k] = p
			if p != k {
				swapRows(w, k, p)
				swapRows(qt, k, p)
			}
			if s != k {
				swapCols(w, k, s)
				out.perm[k], out.perm[s] = out.perm[s], out.perm[k]
			}
		}
		if k < m-1 {
			reflectStep(w, qt, k, v)
		}
	}

	// exact zeros below the diagonal
	var i, j int
	for i = 1; i < m; i++ {
		for j = 0; j < i && j < n; j++ {
			w.data[i*n+j] = 0
		}
	}

	q, err := Transpose(qt)
	if err != nil {
		return nil, fmt.Errorf("transpose Qᵀ: %w", err)
	}
	out.q = q
	out.r = w

	return out, nil
}

// reflectStep builds the reflector H = I − 2·v·vᵀ/(vᵀv) that maps w[k:,k]
// onto α·e₁ and applies it to w[k:,k:] and to qt[k:,:].
// v is caller-owned scratch of length ≥ m.
func reflectStep(w, qt *Dense, k int, v []float64) {
	m, n := w.r, w.c
	var i, j int
	var norm, alpha, vtv, dot, f float64

	for i = k; i < m; i++ {
		v[i] = w.data[i*n+k]
	}
	norm = norm2(v[k:m])
	if norm == 0 {
		return
	}
	alpha = -norm
	if v[k] < 0 {
		alpha = norm
	}
	v[k] -= alpha
	vtv = 0
	for i = k; i < m; i++ {
		vtv += v[i] * v[i]
	}
	if vtv == 0 {
		return
	}

	// trailing block of w, column by column
	for j = k; j < n; j++ {
		dot = 0
		for i = k; i < m; i++ {
			dot += v[i] * w.data[i*n+j]
		}
		if dot == 0 {
			continue
		}
		f = 2 * dot / vtv
		for i = k; i < m; i++ {
			w.data[i*n+j] -= f * v[i]
		}
	}
	w.data[k*n+k] = alpha

	// accumulator rows k..m-1 of Qᵀ
	for j = 0; j < qt.c; j++ {
		dot = 0
		for i = k; i < m; i++ {
			dot += v[i] * qt.data[i*qt.c+j]
		}
		if dot == 0 {
			continue
		}
		f = 2 * dot / vtv
		for i = k; i < m; i++ {
			qt.data[i*qt.c+j] -= f * v[i]
		}
	}
}

// argmaxColumnNorm returns the column j ≥ k with the largest norm of w[k:, j].
func argmaxColumnNorm(w *Dense, k int) int {
	m, n := w.r, w.c
	col := make([]float64, m-k)
	best, bestNorm := k, -1.0
	var i, j int
	var nv float64
	for j = k; j < n; j++ {
		for i = k; i < m; i++ {
			col[i-k] = w.data[i*n+j]
		}
		if nv = norm2(col); nv > bestNorm {
			best, bestNorm = j, nv
		}
	}

	return best
}

// argmaxTrailing returns (row, col) of the largest |w[i,j]| with i,j ≥ k.
func argmaxTrailing(w *Dense, k int) (int, int) {
	m, n := w.r, w.c
	bi, bj, best := k, k, -1.0
	var i, j int
	var v float64
	for i = k; i < m; i++ {
		for j = k; j < n; j++ {
			if v = math.Abs(w.data[i*n+j]); v > best {
				bi, bj, best = i, j, v
			}
		}
	}

	return bi, bj
}
