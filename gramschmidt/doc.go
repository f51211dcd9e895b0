// SPDX-License-Identifier: MIT

// Package gramschmidt builds orthonormal bases of a matrix column span.
//
// Two variants are provided:
//
//   - Classical (CGS): every column is projected against the finished prefix
//     of the basis in one batched step, Q_prefix·(Q_prefixᵀ·a_j).
//   - Modified (MGS): projections are removed one basis vector at a time from
//     the running residual, so each coefficient sees the updated vector.
//
// A column whose residual norm falls to tol·‖a_j‖ or below stops the
// process. The partial basis is still returned (Status Degenerate, Rank = j)
// together with an error wrapping ErrNearLinearDependence; columns j..n-1 of
// Q are left as raw copies of the input.
//
// Default tolerances follow the numerical reach of each variant:
// DefaultClassicalTolerance (1e-4) and DefaultModifiedTolerance (1e-13).
// Override with WithTolerance.
//
// Vector arithmetic runs on gonum's floats package over contiguous column
// copies taken with matrix.Dense.Col.
package gramschmidt
