// SPDX-License-Identifier: MIT
// Package matrix - column/row permutations expressed as index vectors.
//
// Convention:
//   - perm[j] = source column of column j, i.e. (A·P)[:, j] = A[:, perm[j]].
//   - The explicit matrix P has P[perm[j], j] = 1.
//   - Applying P on the left of a stacked basis N' (rows indexed in pivoted
//     coordinates) gives (P·N')[perm[j], :] = N'[j, :].

package matrix

const (
	opPermuteCols       = "PermuteCols"
	opUnpermuteCols     = "UnpermuteCols"
	opPermuteRows       = "PermuteRows"
	opPermutationMatrix = "PermutationMatrix"
	opInversePerm       = "InversePermutation"
)

// IdentityPermutation returns [0, 1, ..., n-1].
// Complexity: O(n).
func IdentityPermutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// InversePermutation returns q with q[perm[j]] = j.
// Errors: ErrBadPermutation.
// Complexity: O(n).
func InversePermutation(perm []int) ([]int, error) {
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return nil, matrixErrorf(opInversePerm, err)
	}
	inv := make([]int, len(perm))
	for j, p := range perm {
		inv[p] = j
	}

	return inv, nil
}

// PermuteCols returns A·P, the columns of a reordered so column j is a[:, perm[j]].
// Errors: ErrNilMatrix, ErrBadPermutation (len(perm) != Cols or not a bijection).
// Complexity: O(r*c).
func PermuteCols(a Matrix, perm []int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	if err := ValidatePermutation(perm, a.Cols()); err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	d, err := asDenseView(a)
	if err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}
	res, err := d.Induced(IdentityPermutation(d.r), perm)
	if err != nil {
		return nil, matrixErrorf(opPermuteCols, err)
	}

	return res, nil
}

// UnpermuteCols returns B·Pᵀ, undoing PermuteCols: column perm[j] of the
// result is column j of b.
// Errors: ErrNilMatrix, ErrBadPermutation.
// Complexity: O(r*c).
//
// AI-Hints:
//   - With R from a pivoted QR, UnpermuteCols(R, perm) is R·Pᵀ, so that
//     A = Q·(R·Pᵀ) without any explicit permutation matrix.
func UnpermuteCols(b Matrix, perm []int) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opUnpermuteCols, err)
	}
	inv, err := InversePermutation(perm)
	if err != nil {
		return nil, matrixErrorf(opUnpermuteCols, err)
	}
	if len(inv) != b.Cols() {
		return nil, matrixErrorf(opUnpermuteCols, ErrBadPermutation)
	}
	d, err := asDenseView(b)
	if err != nil {
		return nil, matrixErrorf(opUnpermuteCols, err)
	}
	res, err := d.Induced(IdentityPermutation(d.r), inv)
	if err != nil {
		return nil, matrixErrorf(opUnpermuteCols, err)
	}

	return res, nil
}

// PermuteRows returns P·B for the column permutation perm: row perm[j] of the
// result is row j of b. This maps a basis expressed in pivoted coordinates
// back to the original variable order.
// Errors: ErrNilMatrix, ErrBadPermutation (len(perm) != Rows or not a bijection).
// Complexity: O(r*c).
func PermuteRows(b Matrix, perm []int) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}
	inv, err := InversePermutation(perm)
	if err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}
	if len(inv) != b.Rows() {
		return nil, matrixErrorf(opPermuteRows, ErrBadPermutation)
	}
	d, err := asDenseView(b)
	if err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}
	res, err := d.Induced(inv, IdentityPermutation(d.c))
	if err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}

	return res, nil
}

// PermutationMatrix materializes P (n×n) with P[perm[j], j] = 1.
// Errors: ErrBadPermutation.
// Complexity: O(n^2) memory; prefer the index-vector helpers in hot paths.
func PermutationMatrix(perm []int) (*Dense, error) {
	n := len(perm)
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, matrixErrorf(opPermutationMatrix, err)
	}
	p, err := NewZeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opPermutationMatrix, err)
	}
	for j, src := range perm {
		p.data[src*n+j] = 1.0
	}

	return p, nil
}
