// SPDX-License-Identifier: MIT

package gramschmidt

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/status"
)

const opOrthonormalize = "Orthonormalize"

// Orthonormalize computes an orthonormal basis of the column span of a.
// Implementation:
//   - Stage 1: Validate the variant, then a (non-nil, finite entries).
//   - Stage 2: Copy a into Q; column j is replaced by its normalized residual
//     once the projections onto columns 0..j-1 are removed.
//   - Stage 3: Stop at the first column whose residual norm is ≤ tol·‖a_j‖.
//
// Behavior highlights:
//   - The input is never mutated.
//   - On a degenerate column the partial basis is returned together with a
//     *DependenceError (errors.Is(err, ErrNearLinearDependence) holds).
//
// Inputs:
//   - a: m×n matrix (any shape; n > m is always degenerate at column m).
//   - v: Classical or Modified.
//   - opts: WithTolerance, WithNegatedFirstColumn.
//
// Returns:
//   - *Basis with Q (m×n), Rank, Variant and Status.
//
// Errors:
//   - ErrUnknownVariant, matrix.ErrNilMatrix, matrix.ErrNaNInf.
//   - *DependenceError wrapping ErrNearLinearDependence (with a non-nil Basis).
//
// Determinism:
//   - Fixed column order; no randomness.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
//
// AI-Hints:
//   - Prefer Modified for ill-conditioned inputs; Classical loses
//     orthogonality roughly with the square of the condition number.
func Orthonormalize(a matrix.Matrix, v Variant, opts ...Option) (*Basis, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%s: %w", opOrthonormalize, ErrUnknownVariant)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opOrthonormalize, err)
	}
	o := gatherOptions(v, opts...)

	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOrthonormalize, err)
	}
	q, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOrthonormalize, err)
	}

	basis := &Basis{Q: q, Variant: v, Status: status.OK}
	n := q.Cols()
	var (
		j        int
		aj, res  []float64
		ref, rn  float64
		residual func(q *matrix.Dense, j int, aj []float64) ([]float64, error)
	)
	if v == Classical {
		residual = classicalResidual
	} else {
		residual = modifiedResidual
	}

	for j = 0; j < n; j++ {
		if aj, err = q.Col(j); err != nil {
			return nil, fmt.Errorf("%s: %w", opOrthonormalize, err)
		}
		if res, err = residual(q, j, aj); err != nil {
			return nil, fmt.Errorf("%s: %w", opOrthonormalize, err)
		}
		ref = floats.Norm(aj, 2)
		rn = floats.Norm(res, 2)
		if rn == 0 || rn <= o.tol*ref {
			basis.Rank = j
			basis.Status = status.Degenerate

			return basis, fmt.Errorf("%s: %w", opOrthonormalize,
				&DependenceError{Column: j, Residual: rn, Threshold: o.tol * ref})
		}
		floats.Scale(1/rn, res)
		if j == 0 && o.negateFirst {
			floats.Scale(-1, res)
		}
		if err = q.SetCol(j, res); err != nil {
			return nil, fmt.Errorf("%s: %w", opOrthonormalize, err)
		}
	}
	basis.Rank = n

	return basis, nil
}

// classicalResidual returns a_j − Q_prefix·(Q_prefixᵀ·a_j) where Q_prefix
// holds the finished columns 0..j-1 of q. All coefficients are taken
// against the original a_j.
func classicalResidual(q *matrix.Dense, j int, aj []float64) ([]float64, error) {
	res := make([]float64, len(aj))
	copy(res, aj)
	if j == 0 {
		return res, nil
	}
	prefix, err := matrix.Block(q, 0, 0, q.Rows(), j)
	if err != nil {
		return nil, err
	}
	coeffs, err := matrix.MatTVec(prefix, aj)
	if err != nil {
		return nil, err
	}
	proj, err := matrix.MatVec(prefix, coeffs)
	if err != nil {
		return nil, err
	}
	floats.Sub(res, proj)

	return res, nil
}

// modifiedResidual removes the projection onto each finished column in turn,
// every coefficient computed against the already-updated residual.
func modifiedResidual(q *matrix.Dense, j int, aj []float64) ([]float64, error) {
	res := make([]float64, len(aj))
	copy(res, aj)
	var (
		i   int
		qi  []float64
		c   float64
		err error
	)
	for i = 0; i < j; i++ {
		if qi, err = q.Col(i); err != nil {
			return nil, err
		}
		c = floats.Dot(qi, res)
		floats.AddScaled(res, -c, qi)
	}

	return res, nil
}
