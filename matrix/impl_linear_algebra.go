// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, matrix-vector products, LU with partial
// pivoting, triangular and general solves, and inversion. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Householder QR kernels live in impl_householder.go.
//   - All kernels use central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opMatVec     = "MatVec"
	opMatTVec    = "MatTVec"
	opSolve      = "Solve"
	opSolveUpper = "SolveUpper"
	opInverse    = "Inverse"
	opFrobenius  = "FrobeniusNorm"
	opMaxAbs     = "MaxAbs"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Residual checks like ‖A·N‖ multiply a wide matrix by a thin one; keep
//     both as *Dense to stay on the flat path.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
// Errors: ErrNilMatrix; ErrNaNInf when a product overflows and m has the
// finite-only policy.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err = res.Apply(func(_, _ int, v float64) float64 { return alpha * v }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MatTVec computes y = mᵀ * x without materializing mᵀ.
//
// Contract: m non-nil; len(x) == m.Rows().
// Determinism: row-major walk i→j, accumulating into y[j].
// Complexity: Time O(r*c), Space O(c) for y.
//
// AI-Hints:
//   - Gram-Schmidt coefficients Q_prefixᵀ·a_j are exactly this product.
func MatTVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	d, err := asDenseView(m)
	if err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	y := make([]float64, d.c)
	var i, j, base int
	var xv float64
	for i = 0; i < d.r; i++ {
		xv = x[i]
		if xv == 0 {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[j] += d.data[base+j] * xv
		}
	}

	return y, nil
}

// asDenseView returns m itself when it is *Dense (read-only use), otherwise a copy.
func asDenseView(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return toDense(m)
}

// luPacked computes P·A = L·U with partial (row) pivoting and returns L\U
// packed in one Dense (unit diagonal of L implied) plus the row order:
// row i of P·A is row perm[i] of A.
// Implementation:
//   - Stage 1: Validate m (not nil, square) and tol; densify a working copy.
//   - Stage 2: For k=0..n-1 pick p = argmax_{i≥k} |A[i,k]| (first max wins),
//     swap rows k↔p, fail with ErrSingular if |A[k,k]| ≤ tol·max|A|, then
//     eliminate below the pivot storing multipliers in place.
//
// Determinism: fixed k→i→j loop order.
// Complexity: Time O(n^3), Space O(n^2).
func luPacked(m Matrix, tol float64) (*Dense, []int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, err
	}
	if err := ValidateTolerance(tol); err != nil {
		return nil, nil, err
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, err
	}
	n := a.r
	perm := IdentityPermutation(n)
	threshold := tol * maxAbsData(a.data)

	var (
		i, j, k, p     int
		best, v, pivot float64
		factor         float64
	)
	for k = 0; k < n; k++ {
		// pivot search in column k
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 || best <= threshold {
			return nil, nil, fmt.Errorf("pivot %d: %w", k, ErrSingular)
		}
		if p != k {
			swapRows(a, k, p)
			perm[k], perm[p] = perm[p], perm[k]
		}
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / pivot
			a.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return a, perm, nil
}

// Solve returns X with A·X = B using LU with partial pivoting.
// Inputs:
//   - a: square n×n coefficient matrix.
//   - b: n×k right-hand sides (k ≥ 1, or k = 0 for an empty block).
//   - tol: relative pivot threshold forwarded to LU.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a not square or rows mismatch),
//     ErrBadTolerance, ErrSingular.
//
// Complexity:
//   - Time O(n^3 + n^2·k), Space O(n^2 + n·k).
func Solve(a, b Matrix, tol float64) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	packed, perm, err := luPacked(a, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := packed.r
	if b.Rows() != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	rhs, err := asDenseView(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	k := rhs.c
	x, _ := newDenseZeroOK(n, k)

	var i, j, col int
	var sum float64
	y := make([]float64, n)
	for col = 0; col < k; col++ {
		// forward: L·y = P·b (unit diagonal)
		for i = 0; i < n; i++ {
			sum = rhs.data[perm[i]*k+col]
			for j = 0; j < i; j++ {
				sum -= packed.data[i*n+j] * y[j]
			}
			y[i] = sum
		}
		// backward: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for j = i + 1; j < n; j++ {
				sum -= packed.data[i*n+j] * x.data[j*k+col]
			}
			x.data[i*k+col] = sum / packed.data[i*n+i]
		}
	}

	return x, nil
}

// SolveUpper returns X with U·X = B by back substitution.
// Only the upper triangle of u is read; entries below the diagonal are ignored.
//
// Implementation:
//   - Stage 1: validate shapes and reject a singular u via
//     ValidateNonsingularUpper (|U_ii| ≤ tol·max|U_kk| or exactly 0).
//   - Stage 2: bottom-up substitution per right-hand side column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadTolerance, ErrSingular.
//
// Complexity:
//   - Time O(n^2·k), Space O(n·k).
//
// AI-Hints:
//   - This is the "one triangular solve" of null-space extraction: R1·X = R2.
//     The diagonal scale matches qr.Result.Rank, so a block whose pivots all
//     count toward the rank never fails here.
func SolveUpper(u, b Matrix, tol float64) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}
	if err := ValidateNonsingularUpper(u, tol); err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}
	n := u.Rows()
	if b.Rows() != n {
		return nil, matrixErrorf(opSolveUpper, ErrDimensionMismatch)
	}
	ud, err := asDenseView(u)
	if err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}
	rhs, err := asDenseView(b)
	if err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}

	k := rhs.c
	x, _ := newDenseZeroOK(n, k)
	var i, j, col int
	var sum float64
	for col = 0; col < k; col++ {
		for i = n - 1; i >= 0; i-- {
			sum = rhs.data[i*k+col]
			for j = i + 1; j < n; j++ {
				sum -= ud.data[i*n+j] * x.data[j*k+col]
			}
			x.data[i*k+col] = sum / ud.data[i*n+i]
		}
	}

	return x, nil
}

// Inverse computes A^{-1} by solving A·X = I with pivoted LU.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (exact zero pivot).
// Complexity: Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A^{-1}·B, call Solve(A, B, tol) instead; forming the
//     inverse costs an extra O(n^3) and loses accuracy.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Solve(m, id, 0)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// FrobeniusNorm returns sqrt(Σ m_ij²), scaled to avoid overflow.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	d, err := asDenseView(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	return norm2(d.data), nil
}

// MaxAbs returns max |m_ij| (0 for an empty matrix).
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	d, err := asDenseView(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	return maxAbsData(d.data), nil
}

// maxAbsData is the flat-slice core of MaxAbs.
func maxAbsData(xs []float64) float64 {
	var best, v float64
	for _, x := range xs {
		if v = math.Abs(x); v > best {
			best = v
		}
	}

	return best
}

// norm2 computes the Euclidean norm with the scale/ssq recurrence
// (no intermediate overflow for huge entries, no underflow for tiny ones).
func norm2(xs []float64) float64 {
	scale, ssq := 0.0, 1.0
	var absx, r float64
	for _, x := range xs {
		if x == 0 {
			continue
		}
		absx = math.Abs(x)
		if scale < absx {
			r = scale / absx
			ssq = 1 + ssq*r*r
			scale = absx
		} else {
			r = absx / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0
	}

	return scale * math.Sqrt(ssq)
}

// swapRows exchanges rows a and b of d in place.
func swapRows(d *Dense, a, b int) {
	if a == b {
		return
	}
	ra := d.data[a*d.c : (a+1)*d.c]
	rb := d.data[b*d.c : (b+1)*d.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// swapCols exchanges columns a and b of d in place.
func swapCols(d *Dense, a, b int) {
	if a == b {
		return
	}
	for i := 0; i < d.r; i++ {
		d.data[i*d.c+a], d.data[i*d.c+b] = d.data[i*d.c+b], d.data[i*d.c+a]
	}
}
