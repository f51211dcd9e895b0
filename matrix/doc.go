// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate for orthospace.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors, never panic), column copies (Col/SetCol), no-copy views and
//     index-based submatrix extraction.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, MatTVec, Solve
//     (LU with partial pivoting), SolveUpper, Inverse, norms.
//   - Householder QR for rectangular inputs in three pivoting policies:
//     HouseholderQR, HouseholderQRColPiv and HouseholderQRFullPiv, all with
//     the convention A·P = Q·R and a full m×m orthogonal Q.
//   - Permutations as index vectors (PermuteCols, UnpermuteCols,
//     PermuteRows, PermutationMatrix) and block helpers (Block, VStack,
//     HStack, UpperTriangular).
//   - Structural checks (IsUpperTriangular, IsOrthonormalColumns,
//     ValidateNonsingularUpper with the MaxAbsDiagonal scale) and
//     comparisons (AllClose, MaxAbsDiff, Residual).
//   - Conversions to and from nested rows and gonum's *mat.Dense.
//
// All kernels validate their inputs through the Validate* helpers and
// return package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped
// with an operation tag; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
