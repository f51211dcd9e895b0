// SPDX-License-Identifier: MIT
// Package matrix - block extraction, stacking and structural predicates.
//
// Purpose:
//   - Slice R into [R1 R2], stack [X; I] and pull trailing columns of Q.
//   - Allow empty blocks (k×0, 0×k): partitions at the edges are legal.
//   - Check triangularity and orthonormality with the tolerance from Options.

package matrix

import (
	"fmt"
	"math"
)

const (
	opBlock          = "Block"
	opVStack         = "VStack"
	opHStack         = "HStack"
	opUpper          = "UpperTriangular"
	opIsUpper        = "IsUpperTriangular"
	opIsOrthonormal  = "IsOrthonormalColumns"
	opOrthoDeviation = "OrthonormalityDeviation"
	opMaxAbsDiag     = "MaxAbsDiagonal"
)

// Block copies the window [r0:r0+rows, c0:c0+cols) of a into a fresh Dense.
// rows or cols may be 0, yielding a legal empty block.
// Errors: ErrNilMatrix, ErrBadShape (window outside a).
// Complexity: O(rows*cols).
func Block(a Matrix, r0, c0, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > a.Rows() || c0+cols > a.Cols() {
		return nil, matrixErrorf(opBlock, fmt.Errorf("(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrBadShape))
	}
	d, err := asDenseView(a)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	v, err := d.View(r0, c0, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	res, err := v.Materialize()
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}

	return res, nil
}

// VStack returns [top; bottom]. Column counts must agree.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O((r1+r2)*c).
func VStack(top, bottom Matrix) (*Dense, error) {
	if err := ValidateNotNil(top); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err := ValidateNotNil(bottom); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if top.Cols() != bottom.Cols() {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}
	t, err := asDenseView(top)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	b, err := asDenseView(bottom)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	res, err := newDenseZeroOK(t.r+b.r, t.c)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	copy(res.data, t.data)
	copy(res.data[len(t.data):], b.data)

	return res, nil
}

// HStack returns [left right]. Row counts must agree.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*(c1+c2)).
func HStack(left, right Matrix) (*Dense, error) {
	if err := ValidateNotNil(left); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err := ValidateNotNil(right); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if left.Rows() != right.Rows() {
		return nil, matrixErrorf(opHStack, ErrDimensionMismatch)
	}
	l, err := asDenseView(left)
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	r, err := asDenseView(right)
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	cols := l.c + r.c
	res, err := newDenseZeroOK(l.r, cols)
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	for i := 0; i < l.r; i++ {
		copy(res.data[i*cols:i*cols+l.c], l.data[i*l.c:(i+1)*l.c])
		copy(res.data[i*cols+l.c:(i+1)*cols], r.data[i*r.c:(i+1)*r.c])
	}

	return res, nil
}

// UpperTriangular returns a copy of a with every entry below the diagonal set to 0.
// Works on rectangular inputs (upper trapezoidal result).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func UpperTriangular(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opUpper, err)
	}
	res, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opUpper, err)
	}
	var i, j int
	for i = 1; i < res.r; i++ {
		for j = 0; j < i && j < res.c; j++ {
			res.data[i*res.c+j] = 0
		}
	}

	return res, nil
}

// IsUpperTriangular reports whether every |a[i,j]| with i > j is ≤ eps.
// eps comes from WithEpsilon (DefaultEpsilon otherwise).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func IsUpperTriangular(a Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opIsUpper, err)
	}
	o := gatherOptions(opts...)
	d, err := asDenseView(a)
	if err != nil {
		return false, matrixErrorf(opIsUpper, err)
	}
	var i, j int
	for i = 1; i < d.r; i++ {
		for j = 0; j < i && j < d.c; j++ {
			if math.Abs(d.data[i*d.c+j]) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// OrthonormalityDeviation returns max |(QᵀQ − I)_ij| over all entries.
// Zero columns count as non-unit (their diagonal deviates by 1).
// Errors: ErrNilMatrix.
// Complexity: O(r*c^2).
func OrthonormalityDeviation(q Matrix) (float64, error) {
	if err := ValidateNotNil(q); err != nil {
		return 0, matrixErrorf(opOrthoDeviation, err)
	}
	qt, err := Transpose(q)
	if err != nil {
		return 0, matrixErrorf(opOrthoDeviation, err)
	}
	g, err := Mul(qt, q)
	if err != nil {
		return 0, matrixErrorf(opOrthoDeviation, err)
	}
	var worst, dev float64
	var i, j int
	for i = 0; i < g.r; i++ {
		for j = 0; j < g.c; j++ {
			dev = g.data[i*g.c+j]
			if i == j {
				dev -= 1.0
			}
			if dev = math.Abs(dev); dev > worst {
				worst = dev
			}
		}
	}

	return worst, nil
}

// IsOrthonormalColumns reports whether QᵀQ ≈ I within eps (WithEpsilon).
// Errors: ErrNilMatrix.
// Complexity: O(r*c^2).
func IsOrthonormalColumns(q Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	dev, err := OrthonormalityDeviation(q)
	if err != nil {
		return false, matrixErrorf(opIsOrthonormal, err)
	}

	return dev <= o.eps, nil
}

// MaxAbsDiagonal returns max |a_kk| over k < min(rows, cols), 0 when empty.
// It is the reference scale of rank counting and of the triangular
// singularity check, so both agree on which pivots are negligible.
// Errors: ErrNilMatrix.
// Complexity: O(min(r,c)).
func MaxAbsDiagonal(a Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opMaxAbsDiag, err)
	}
	k := a.Rows()
	if c := a.Cols(); c < k {
		k = c
	}
	var best, v float64
	var err error
	for i := 0; i < k; i++ {
		if v, err = a.At(i, i); err != nil {
			return 0, matrixErrorf(opMaxAbsDiag, err)
		}
		if v = math.Abs(v); v > best {
			best = v
		}
	}

	return best, nil
}
