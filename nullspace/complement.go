// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/qr"
	"github.com/katalvlaran/orthospace/status"
)

const opComplement = "OrthogonalComplement"

// Complement is an orthonormal basis of the orthogonal complement of range(A).
type Complement struct {
	Q2     *matrix.Dense // m×(m−n), orthonormal columns; nil when Dim == 0
	Dim    int           // m − n
	Status status.Status
	QR     *qr.Result // the plain factorization Q2 was cut from
}

// OrthogonalComplement returns Q2 = Q[:, n:] from the full plain QR of a tall a.
// Implementation:
//   - Stage 1: require m ≥ n (ErrNotTall otherwise).
//   - Stage 2: plain Householder QR, A = Q·R with Q m×m.
//   - Stage 3: cut the trailing m − n columns of Q.
//
// The columns of Q2 are orthonormal and Aᵀ·Q2 ≈ 0. When A has full column
// rank they span the whole complement; for rank-deficient A they span a
// subspace of it. m == n yields Dim 0 and a nil Q2.
//
// Errors:
//   - ErrNotTall, matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(m²·n), Space O(m²).
func OrthogonalComplement(a matrix.Matrix) (*Complement, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, fmt.Errorf("%s: %dx%d: %w", opComplement, m, n, ErrNotTall)
	}
	res, err := qr.Factorize(a, qr.Plain)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}

	c := &Complement{Dim: m - n, Status: status.OK, QR: res}
	if c.Dim == 0 {
		return c, nil
	}
	if c.Q2, err = matrix.Block(res.Q, 0, n, m, m-n); err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}

	return c, nil
}
