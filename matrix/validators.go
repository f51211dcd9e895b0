// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Nil vectors are rejected with ErrNilMatrix (the "nil argument" sentinel).
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every element and fails on the first NaN or ±Inf.
// Called by the decomposition front doors before any reflection.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		var bad error
		d.Do(func(i, j int, v float64) bool {
			if isNonFinite(v) {
				bad = fmt.Errorf("ValidateFinite: (%d,%d): %w", i, j, ErrNaNInf)
				return false
			}

			return true
		})

		return bad
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return fmt.Errorf("ValidateFinite: (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidatePermutation ensures perm is a bijection of {0..n-1}.
// Complexity: O(n) time, O(n) space for the seen-set.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return validatorErrorf("ValidatePermutation", ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return validatorErrorf("ValidatePermutation", ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}

// ValidateTolerance rejects NaN/Inf and negative tolerances.
// Kernels accept tolerances as plain arguments, so this is a returned error
// rather than a panic (contrast with option constructors).
func ValidateTolerance(tol float64) error {
	if isNonFinite(tol) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrBadTolerance)
	}

	return nil
}

// ValidateNonsingularUpper fails with ErrSingular when some diagonal entry
// of the square u is 0 or |u_kk| ≤ tol·MaxAbsDiagonal(u).
// Only the diagonal is read. A 0×0 matrix passes.
// Complexity: O(n).
func ValidateNonsingularUpper(u Matrix, tol float64) error {
	if err := ValidateSquareNonNil(u); err != nil {
		return validatorErrorf("ValidateNonsingularUpper", err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return validatorErrorf("ValidateNonsingularUpper", err)
	}
	scale, err := MaxAbsDiagonal(u)
	if err != nil {
		return validatorErrorf("ValidateNonsingularUpper", err)
	}
	threshold := tol * scale
	var v float64
	for i := 0; i < u.Rows(); i++ {
		if v, err = u.At(i, i); err != nil {
			return validatorErrorf("ValidateNonsingularUpper", err)
		}
		if v = math.Abs(v); v == 0 || v <= threshold {
			return fmt.Errorf("ValidateNonsingularUpper: pivot %d: %w", i, ErrSingular)
		}
	}

	return nil
}
