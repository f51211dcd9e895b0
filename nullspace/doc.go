// SPDX-License-Identifier: MIT

// Package nullspace extracts null-space and orthogonal-complement bases
// from Householder QR factorizations.
//
// NullSpace(B, mode) factors B·P = Q·R, splits the leading r rows of R into
// [R1 R2] with R1 r×r, solves R1·X = R2 and returns N = P·[−X; I], so that
// B·N ≈ 0 with n − r independent columns. r is rows(B) in the plain mode
// and the numerical rank (leading |R_kk| > tol·max|R_ii|) in the pivoted
// modes. In the plain mode a tall or square B must have a nonsingular
// leading n×n block of R, otherwise ErrRankDeficient is returned.
//
// Two strategies decide where the column permutation is applied:
//
//   - PermuteBasis (default): R1 stays upper triangular, X comes from back
//     substitution and the permutation is applied to the stacked basis.
//   - AbsorbIntoR: R is replaced by R·Pᵀ before partitioning, X comes from
//     an LU solve. Rank-deficient inputs whose leading columns are
//     dependent fail with ErrRankDeficient under this strategy.
//
// OrthogonalComplement(A) returns the trailing m − n columns of the full Q
// of a tall A; they are orthonormal and orthogonal to range(A).
//
// A zero-dimensional result is not an error: the basis is nil and Dim is 0.
package nullspace
