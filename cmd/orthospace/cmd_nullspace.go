// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/nullspace"
	"github.com/katalvlaran/orthospace/qr"
	"github.com/katalvlaran/orthospace/report"
)

const (
	kindNullSpace  = "nullspace"
	kindComplement = "complement"
)

func newNullSpaceCmd(a *app) *cobra.Command {
	var (
		file      string
		mode      = qr.Plain
		strategy  = nullspace.PermuteBasis
		transpose bool
		tol       float64
	)
	cmd := &cobra.Command{
		Use:   "nullspace",
		Short: "Null-space basis N with B·N = 0",
		Long: `Compute a null-space basis from a Householder QR of B.

With --transpose the input A is transposed first, which yields the left
null space of A. Plain mode takes rows(B) as the rank and fails on a
rank-deficient B; the pivoted modes detect the numerical rank.

Examples:
  orthospace nullspace --transpose -f a.yaml
  orthospace nullspace --mode colpiv --strategy absorb -f b.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.readMatrix(cmd, file)
			if err != nil {
				return err
			}
			opts := []nullspace.Option{nullspace.WithStrategy(strategy)}
			if cmd.Flags().Changed("tol") {
				if err = matrix.ValidateTolerance(tol); err != nil {
					return fmt.Errorf("--tol: %w", err)
				}
				opts = append(opts, nullspace.WithTolerance(tol))
			}

			return a.runNullSpace(m, transpose, mode, opts...)
		},
	}
	addFileFlag(cmd.Flags(), &file)
	cmd.Flags().Var(&mode, "mode", "Pivoting mode: plain, colpiv, fullpiv")
	cmd.Flags().Var(&strategy, "strategy", "Permutation strategy: permute, absorb")
	cmd.Flags().BoolVar(&transpose, "transpose", false, "Use the transpose of the input (left null space)")
	cmd.Flags().Float64Var(&tol, "tol", nullspace.DefaultTolerance, "Relative pivot and rank threshold")

	return cmd
}

// runNullSpace computes, logs and renders one null-space extraction.
func (a *app) runNullSpace(m *matrix.Dense, transpose bool, mode qr.Mode, opts ...nullspace.Option) error {
	b := m
	if transpose {
		var err error
		if b, err = matrix.Transpose(m); err != nil {
			return err
		}
	}
	basis, err := nullspace.NullSpace(b, mode, opts...)
	if err != nil {
		return a.fail(kindNullSpace, err)
	}
	doc, err := report.NullSpace(b, basis)
	if err != nil {
		return err
	}
	a.log.Info("null space extracted",
		zap.Stringer("mode", basis.Mode),
		zap.Stringer("strategy", basis.Strategy),
		zap.Bool("transpose", transpose),
		zap.Int("rank", basis.Rank),
		zap.Int("dim", basis.Dim),
		zap.String("residual", doc.Summary["residual"]),
	)

	return a.emit(doc)
}

func newComplementCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "complement",
		Short: "Orthonormal basis Q2 of the complement of range(A)",
		Long: `Compute Q2 = Q[:, n:] from the full plain QR of a tall m×n matrix A.
The columns of Q2 are orthonormal and Aᵀ·Q2 = 0.

Example:
  orthospace complement -f a.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.readMatrix(cmd, file)
			if err != nil {
				return err
			}

			return a.runComplement(m)
		},
	}
	addFileFlag(cmd.Flags(), &file)

	return cmd
}

// runComplement computes, logs and renders one orthogonal complement.
func (a *app) runComplement(m *matrix.Dense) error {
	c, err := nullspace.OrthogonalComplement(m)
	if err != nil {
		return a.fail(kindComplement, err)
	}
	doc, err := report.Complement(m, c)
	if err != nil {
		return err
	}
	a.log.Info("complement extracted",
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("dim", c.Dim),
		zap.String("residual", doc.Summary["residual"]),
	)

	return a.emit(doc)
}
