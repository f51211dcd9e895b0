// SPDX-License-Identifier: MIT

// Package qr factors dense matrices with Householder reflections.
//
// Factorize wraps the matrix package kernels behind one Mode switch:
//
//   - Plain:         A   = Q·R
//   - ColumnPivoted: A·P = Q·R, largest remaining column norm first
//   - FullPivoted:   A·P = Q·R, largest remaining entry first; the row
//     interchanges are folded into Q and listed in Result.RowSwaps
//
// Q is m×m orthogonal and R is m×n upper triangular in every mode. Pivoted
// modes put the dominant pivots first, so Result.Rank gives a numerical
// rank; the plain mode makes no such promise.
package qr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/orthospace/matrix"
)

const opFactorize = "Factorize"

// DefaultRankTolerance is the relative diagonal threshold of NumericalRank.
const DefaultRankTolerance = 1e-10

const panicRankTolerance = "qr: WithRankTolerance: tol must be finite and non-negative"

// ErrUnknownMode is returned for a Mode outside the three defined ones.
var ErrUnknownMode = errors.New("qr: unknown mode")

// Mode selects the pivoting policy.
type Mode int

const (
	// Plain performs no pivoting.
	Plain Mode = iota
	// ColumnPivoted moves the largest remaining column to the front at each step.
	ColumnPivoted
	// FullPivoted moves the largest remaining entry to the diagonal at each step.
	FullPivoted
)

// String returns the flag spelling of m.
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case ColumnPivoted:
		return "colpiv"
	case FullPivoted:
		return "fullpiv"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Set parses s into m; it accepts the String spelling and long aliases.
func (m *Mode) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "none":
		*m = Plain
	case "colpiv", "column", "column_pivoted":
		*m = ColumnPivoted
	case "fullpiv", "full", "full_pivoted":
		*m = FullPivoted
	default:
		return fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}

	return nil
}

// Type names the flag value kind.
func (m *Mode) Type() string { return "mode" }

// Pivoted reports whether m reorders columns.
func (m Mode) Pivoted() bool { return m == ColumnPivoted || m == FullPivoted }

func (m Mode) valid() bool { return m == Plain || m.Pivoted() }

// Option mutates Options.
type Option func(*Options)

// Options holds the configuration of one Factorize call.
type Options struct {
	rankTol float64
}

// WithRankTolerance sets the threshold used by Result.NumericalRank.
// Panics on negative, NaN or infinite tol.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankTolerance)
	}

	return func(o *Options) { o.rankTol = tol }
}

// Result is an immutable QR factorization.
type Result struct {
	Mode     Mode
	Q        *matrix.Dense // m×m orthogonal
	R        *matrix.Dense // m×n upper triangular
	Perm     []int         // (A·P)[:, j] = A[:, Perm[j]]; nil for Plain
	RowSwaps []int         // FullPivoted only: rows k and RowSwaps[k] exchanged at step k
	rankTol  float64
}

// Factorize computes the Householder QR of a in the requested mode.
// Implementation:
//   - Stage 1: reject unknown modes; the kernels validate a (nil, NaN/Inf).
//   - Stage 2: dispatch to HouseholderQR / HouseholderQRColPiv / HouseholderQRFullPiv.
//
// Errors:
//   - ErrUnknownMode, matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(m·n·min(m,n) + m²·min(m,n)), Space O(m² + m·n).
func Factorize(a matrix.Matrix, mode Mode, opts ...Option) (*Result, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%s: %w", opFactorize, ErrUnknownMode)
	}
	o := Options{rankTol: DefaultRankTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	res := &Result{Mode: mode, rankTol: o.rankTol}
	var err error
	switch mode {
	case Plain:
		res.Q, res.R, err = matrix.HouseholderQR(a)
	case ColumnPivoted:
		res.Q, res.R, res.Perm, err = matrix.HouseholderQRColPiv(a)
	case FullPivoted:
		res.Q, res.R, res.Perm, res.RowSwaps, err = matrix.HouseholderQRFullPiv(a)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opFactorize, mode, err)
	}

	return res, nil
}

// Permutation returns the column order, the identity for Plain.
func (r *Result) Permutation() []int {
	if r.Perm == nil {
		return matrix.IdentityPermutation(r.R.Cols())
	}
	out := make([]int, len(r.Perm))
	copy(out, r.Perm)

	return out
}

// P materializes the n×n permutation matrix (identity for Plain).
func (r *Result) P() (*matrix.Dense, error) {
	return matrix.PermutationMatrix(r.Permutation())
}

// Rank counts the leading diagonal entries of R with |R_kk| > tol·max|R_ii|,
// stopping at the first one that fails. With column pivoting max|R_ii| is
// |R_00| and the diagonal is non-increasing, so this is a plain count.
// The scale is matrix.MaxAbsDiagonal, the one matrix.SolveUpper checks
// pivots against, so R[:r,:r] always passes that check.
// A zero diagonal yields 0.
func (r *Result) Rank(tol float64) int {
	scale, err := matrix.MaxAbsDiagonal(r.R)
	if err != nil || scale == 0 {
		return 0
	}
	k := r.R.Rows()
	if n := r.R.Cols(); n < k {
		k = n
	}
	threshold := tol * scale
	rank := 0
	var d float64
	for ; rank < k; rank++ {
		d, _ = r.R.At(rank, rank)
		if math.Abs(d) <= threshold {
			break
		}
	}

	return rank
}

// NumericalRank is Rank with the tolerance given to Factorize
// (DefaultRankTolerance unless overridden).
func (r *Result) NumericalRank() int { return r.Rank(r.rankTol) }

// Reconstruct returns Q·R·Pᵀ, which approximates the factored matrix.
func (r *Result) Reconstruct() (*matrix.Dense, error) {
	qr, err := matrix.Mul(r.Q, r.R)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}
	if r.Perm == nil {
		return qr, nil
	}

	return matrix.UnpermuteCols(qr, r.Perm)
}

// PermutedR returns R·Pᵀ, so that A = Q·(R·Pᵀ). For Plain it is a copy of R.
func (r *Result) PermutedR() (*matrix.Dense, error) {
	return matrix.UnpermuteCols(r.R, r.Permutation())
}
