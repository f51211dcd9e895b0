// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orthospace/gramschmidt"
	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/nullspace"
	"github.com/katalvlaran/orthospace/qr"
)

// demoRows is the 6×4 full-column-rank matrix the demo scenarios run on.
var demoRows = [][]float64{
	{1, -2, 4, -8},
	{2, -1, 1, -1},
	{3, 2, 0, 3},
	{4, 1, 1, 1},
	{7, 2, 4, 8},
	{10, -4, 9, -2},
}

func newDemoCmd(a *app) *cobra.Command {
	strategy := nullspace.AbsorbIntoR
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference scenarios on a fixed 6×4 matrix",
		Long: `Run every computation on a fixed 6×4 matrix A and print all intermediates:

  1. orthogonal complement of range(A) from a plain QR of A (Aᵀ·Q2 = 0)
  2. null space of B = Aᵀ from a plain QR (B·N = 0)
  3. null space of B from a column-pivoted QR
  4. null space of B from a full-pivoted QR
  5. classical and modified Gram-Schmidt on A

Scenarios 3 and 4 use --strategy (absorb by default: R·Pᵀ is partitioned).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.Info("demo started", zap.Stringer("strategy", strategy))

			return a.runDemo(strategy)
		},
	}
	cmd.Flags().Var(&strategy, "strategy", "Permutation strategy for the pivoted scenarios: permute, absorb")

	return cmd
}

// runDemo runs every scenario even when one fails and returns the joined errors.
func (a *app) runDemo(strategy nullspace.Strategy) error {
	m, err := matrix.FromRows(demoRows)
	if err != nil {
		return err
	}

	var errs []error
	errs = append(errs, a.runComplement(m))
	errs = append(errs, a.runNullSpace(m, true, qr.Plain))
	for _, mode := range []qr.Mode{qr.ColumnPivoted, qr.FullPivoted} {
		errs = append(errs, a.runNullSpace(m, true, mode, nullspace.WithStrategy(strategy)))
	}
	for _, v := range []gramschmidt.Variant{gramschmidt.Classical, gramschmidt.Modified} {
		errs = append(errs, a.runOrthonormalize(m, v))
	}

	return errors.Join(errs...)
}
