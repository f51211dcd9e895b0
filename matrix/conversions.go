// SPDX-License-Identifier: MIT
// Package matrix - conversions between Dense and external representations:
// nested row slices (YAML/JSON friendly) and gonum's mat.Dense.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromRows  = "FromRows"
	opToRows    = "ToRows"
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromRows builds a Dense from row slices.
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: copy row by row; with the finite-only policy on (default),
//     the first NaN/±Inf aborts with its coordinates.
//
// Errors:
//   - ErrInvalidDimensions (no rows or an empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite entry under the finite-only policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	d.validateNaNInf = o.validateNaNInf

	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		for j, v := range row {
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromRows, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// ToRows copies m into freshly allocated row slices.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	d, err := asDenseView(m)
	if err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	out := make([][]float64, d.r)
	for i := range out {
		out[i] = make([]float64, d.c)
		copy(out[i], d.data[i*d.c:(i+1)*d.c])
	}

	return out, nil
}

// ToGonum copies m into a *mat.Dense (row-major, same layout).
// Errors: ErrNilMatrix, ErrInvalidDimensions (gonum forbids empty matrices).
// Complexity: O(r*c).
//
// AI-Hints:
//   - Use it to cross-check results against gonum's QR/SVD.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(d.r, d.c, d.data), nil
}

// FromGonum copies any gonum mat.Matrix into a fresh Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (finite-only policy).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := g.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	d.validateNaNInf = o.validateNaNInf
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}
