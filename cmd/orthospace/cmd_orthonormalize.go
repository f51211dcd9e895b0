// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orthospace/gramschmidt"
	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/report"
)

const kindOrthonormalize = "orthonormalize"

func newOrthonormalizeCmd(a *app) *cobra.Command {
	var (
		file    string
		variant = gramschmidt.Modified
		tol     float64
		negate  bool
	)
	cmd := &cobra.Command{
		Use:   "orthonormalize",
		Short: "Orthonormalize the columns of a matrix with Gram-Schmidt",
		Long: `Orthonormalize the columns of a matrix with classical or modified Gram-Schmidt.

The run stops at the first column whose residual falls to tol·‖a_j‖; the
partial basis is printed with status "degenerate" and the command exits
non-zero.

Examples:
  orthospace orthonormalize -f a.yaml
  orthospace orthonormalize --variant classical --tol 1e-6 -f a.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.readMatrix(cmd, file)
			if err != nil {
				return err
			}
			var opts []gramschmidt.Option
			if cmd.Flags().Changed("tol") {
				if math.IsNaN(tol) || tol < 0 || tol >= 1 {
					return fmt.Errorf("--tol must lie in [0, 1), got %g", tol)
				}
				opts = append(opts, gramschmidt.WithTolerance(tol))
			}
			if negate {
				opts = append(opts, gramschmidt.WithNegatedFirstColumn())
			}

			return a.runOrthonormalize(m, variant, opts...)
		},
	}
	addFileFlag(cmd.Flags(), &file)
	cmd.Flags().Var(&variant, "variant", "Gram-Schmidt variant: classical, modified")
	cmd.Flags().Float64Var(&tol, "tol", 0, "Relative degeneracy threshold (default depends on the variant)")
	cmd.Flags().BoolVar(&negate, "negate-first", false, "Flip the sign of the first basis vector")

	return cmd
}

// runOrthonormalize computes, logs and renders one Gram-Schmidt run.
// A degenerate run is rendered and its DependenceError returned.
func (a *app) runOrthonormalize(m *matrix.Dense, v gramschmidt.Variant, opts ...gramschmidt.Option) error {
	basis, runErr := gramschmidt.Orthonormalize(m, v, opts...)
	if basis == nil {
		return a.fail(kindOrthonormalize, runErr)
	}
	a.log.Info("orthonormalized",
		zap.Stringer("variant", basis.Variant),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("rank", basis.Rank),
		zap.Stringer("status", basis.Status),
	)
	doc, err := report.Basis(m, basis, runErr)
	if err != nil {
		return err
	}
	if err = a.emit(doc); err != nil {
		return err
	}

	return runErr
}
