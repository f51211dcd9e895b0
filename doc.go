// Package orthospace computes orthonormal bases, QR factorizations and
// null-space bases of small dense real matrices.
//
// What is inside?
//
//	A pure-Go toolkit built around Householder reflections and Gram-Schmidt:
//		• Orthonormal bases: classical and modified Gram-Schmidt with
//		  degeneracy detection and partial results
//		• QR factorization: plain, column-pivoted and full-pivoted
//		  Householder QR with A·P = Q·R
//		• Null spaces: N = P·[−R1⁻¹R2; I] from the top rows of R, with
//		  numerical rank detection in the pivoted modes
//		• Orthogonal complements: the trailing columns of the full Q
//
// Why these guarantees?
//
//   - Inputs are never mutated; every result is a fresh matrix.
//   - No randomness: identical inputs give bit-identical outputs.
//   - Failures are values: sentinel errors for errors.Is, plus a three-way
//     status (ok, degenerate, rank_deficient_error) via status.Of.
//
// Packages:
//
//	matrix/         Dense storage, arithmetic, Householder kernels, LU and triangular solves, permutations
//	status/         Status enum and the error-to-status mapping
//	gramschmidt/    Orthonormalize (Classical / Modified)
//	qr/             Factorize (Plain / ColumnPivoted / FullPivoted) and rank helpers
//	nullspace/      NullSpace, NullSpaceOfTranspose, OrthogonalComplement, Rank, Residual
//	report/         text and YAML rendering of results and their diagnostics
//	cmd/orthospace  CLI: demo, orthonormalize, factorize, nullspace, complement
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {2, 4, 6}})
//	basis, err := nullspace.NullSpace(a, qr.ColumnPivoted)
//	// basis.Dim == 2, a·basis.N ≈ 0
//
//	go get github.com/katalvlaran/orthospace
package orthospace
