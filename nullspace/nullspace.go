// SPDX-License-Identifier: MIT

package nullspace

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/qr"
	"github.com/katalvlaran/orthospace/status"
)

const (
	opNullSpace            = "NullSpace"
	opNullSpaceOfTranspose = "NullSpaceOfTranspose"
	opRank                 = "Rank"
	opResidual             = "Residual"
)

// Basis is a null-space basis of B: B·N ≈ 0, N is n×Dim with full column rank.
type Basis struct {
	N        *matrix.Dense // nil when Dim == 0
	Dim      int           // n − Rank
	Rank     int           // partition size r
	Mode     qr.Mode
	Strategy Strategy
	Status   status.Status

	// Diagnostics: the factorization and the blocks the solve used.
	// R1 and R2 are nil when Dim == 0.
	QR *qr.Result
	R1 *matrix.Dense
	R2 *matrix.Dense
}

// NullSpace computes a basis of {x : B·x = 0} from a Householder QR of b.
// Implementation:
//   - Stage 1: factor B·P = Q·R in the requested mode.
//   - Stage 2: r = rows(B) (Plain) or the numerical rank (pivoted modes);
//     r ≥ n means the null space is trivial (Dim 0, nil N, no error). In
//     Plain mode the leading n×n block of R must then pass the pivot check,
//     so a tall rank-deficient B fails instead of looking full rank.
//   - Stage 3: partition the top r rows into [R1 R2] and solve R1·X = R2,
//     by back substitution (PermuteBasis) or LU on R·Pᵀ (AbsorbIntoR).
//   - Stage 4: N = P·[−X; I] (PermuteBasis) or [−X; I] (AbsorbIntoR).
//
// Behavior highlights:
//   - Singular or near-singular R1 (|pivot| ≤ tol·max|diag R1|) is a hard failure:
//     ErrRankDeficient and no basis.
//   - The null space of Aᵀ is NullSpace(Aᵀ, ...), see NullSpaceOfTranspose.
//
// Inputs:
//   - b: m×n matrix.
//   - mode: qr.Plain, qr.ColumnPivoted or qr.FullPivoted.
//   - opts: WithTolerance, WithStrategy.
//
// Returns:
//   - *Basis with N (n×(n−r)), Dim, Rank and the factorization diagnostics.
//
// Errors:
//   - ErrRankDeficient, ErrUnknownStrategy, qr.ErrUnknownMode,
//     matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(m·n·min(m,n) + m² min(m,n) + r²·(n−r)), Space O(m² + m·n).
//
// AI-Hints:
//   - Use a pivoted mode whenever B may be rank deficient; Plain trusts
//     rows(B) as the rank.
func NullSpace(b matrix.Matrix, mode qr.Mode, opts ...Option) (*Basis, error) {
	o := gatherOptions(opts...)
	if !o.strategy.valid() {
		return nil, fmt.Errorf("%s: %w", opNullSpace, ErrUnknownStrategy)
	}
	res, err := qr.Factorize(b, mode, qr.WithRankTolerance(o.tol))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, err)
	}

	m, n := res.R.Rows(), res.R.Cols()
	r := m
	if mode.Pivoted() {
		r = res.NumericalRank()
	}
	basis := &Basis{
		Rank:     r,
		Mode:     mode,
		Strategy: o.strategy,
		Status:   status.OK,
		QR:       res,
	}
	if r >= n {
		if !mode.Pivoted() {
			if err = checkLeadingBlock(res.R, n, o.tol); err != nil {
				return nil, fmt.Errorf("%s(%s): %w", opNullSpace, mode, err)
			}
		}
		basis.Rank = n
		return basis, nil
	}
	basis.Dim = n - r

	var x *matrix.Dense
	switch o.strategy {
	case PermuteBasis:
		x, err = solvePivoted(basis, res, r, o.tol)
	case AbsorbIntoR:
		x, err = solveAbsorbed(basis, res, r, o.tol)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opNullSpace, mode, err)
	}

	n0, err := stackBasis(x, n-r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, err)
	}
	if o.strategy == PermuteBasis {
		if n0, err = matrix.PermuteRows(n0, res.Permutation()); err != nil {
			return nil, fmt.Errorf("%s: %w", opNullSpace, err)
		}
	}
	if err = matrix.ValidateFinite(n0); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNullSpace, ErrRankDeficient, err)
	}
	basis.N = n0

	return basis, nil
}

// solvePivoted partitions R in pivoted coordinates (R1 upper triangular)
// and back-substitutes R1·X = R2.
func solvePivoted(basis *Basis, res *qr.Result, r int, tol float64) (*matrix.Dense, error) {
	n := res.R.Cols()
	r1, err := matrix.Block(res.R, 0, 0, r, r)
	if err != nil {
		return nil, err
	}
	r2, err := matrix.Block(res.R, 0, r, r, n-r)
	if err != nil {
		return nil, err
	}
	basis.R1, basis.R2 = r1, r2

	x, err := matrix.SolveUpper(r1, r2, tol)
	if err != nil {
		return nil, rankDeficient(err)
	}

	return x, nil
}

// solveAbsorbed folds the permutation into R (R·Pᵀ), partitions in the
// original column order and solves with LU; R1 is no longer triangular.
func solveAbsorbed(basis *Basis, res *qr.Result, r int, tol float64) (*matrix.Dense, error) {
	rp, err := res.PermutedR()
	if err != nil {
		return nil, err
	}
	n := rp.Cols()
	r1, err := matrix.Block(rp, 0, 0, r, r)
	if err != nil {
		return nil, err
	}
	r2, err := matrix.Block(rp, 0, r, r, n-r)
	if err != nil {
		return nil, err
	}
	basis.R1, basis.R2 = r1, r2

	x, err := matrix.Solve(r1, r2, tol)
	if err != nil {
		return nil, rankDeficient(err)
	}

	return x, nil
}

// checkLeadingBlock rejects a tall or square plain factorization whose
// leading n×n block of R is singular under the SolveUpper pivot rule.
func checkLeadingBlock(r *matrix.Dense, n int, tol float64) error {
	lead, err := matrix.Block(r, 0, 0, n, n)
	if err != nil {
		return err
	}
	if err = matrix.ValidateNonsingularUpper(lead, tol); err != nil {
		return rankDeficient(err)
	}

	return nil
}

// rankDeficient maps a singular solve to ErrRankDeficient and passes other errors through.
func rankDeficient(err error) error {
	if errors.Is(err, matrix.ErrSingular) {
		return fmt.Errorf("%w: %w", ErrRankDeficient, err)
	}

	return err
}

// stackBasis returns [−X; I_k].
func stackBasis(x *matrix.Dense, k int) (*matrix.Dense, error) {
	negX, err := matrix.Scale(x, -1)
	if err != nil {
		return nil, err
	}
	id, err := matrix.NewIdentity(k)
	if err != nil {
		return nil, err
	}

	return matrix.VStack(negX, id)
}

// NullSpaceOfTranspose returns the null space of aᵀ (the left null space of a).
func NullSpaceOfTranspose(a matrix.Matrix, mode qr.Mode, opts ...Option) (*Basis, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpaceOfTranspose, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpaceOfTranspose, err)
	}

	return NullSpace(at, mode, opts...)
}

// Rank returns the numerical rank of a from a column-pivoted QR:
// the leading |R_kk| > tol·max|R_ii| (see qr.Result.Rank).
func Rank(a matrix.Matrix, tol float64) (int, error) {
	if err := matrix.ValidateTolerance(tol); err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}
	res, err := qr.Factorize(a, qr.ColumnPivoted)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}

	return res.Rank(tol), nil
}

// Residual returns ‖A·N‖_F. A nil basis has residual 0.
func Residual(a matrix.Matrix, n *matrix.Dense) (float64, error) {
	if n == nil {
		return 0, nil
	}
	an, err := matrix.Mul(a, n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	f, err := matrix.FrobeniusNorm(an)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%s: %w", opResidual, matrix.ErrNaNInf)
	}

	return f, nil
}
