// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orthospace/qr"
	"github.com/katalvlaran/orthospace/report"
)

const kindFactorize = "factorize"

func newFactorizeCmd(a *app) *cobra.Command {
	var (
		file string
		mode = qr.Plain
	)
	cmd := &cobra.Command{
		Use:   "factorize",
		Short: "Householder QR factorization A·P = Q·R",
		Long: `Factor a matrix with Householder reflections.

Modes:
  plain    no pivoting, P = I
  colpiv   largest remaining column norm first
  fullpiv  largest remaining entry first; row swaps are folded into Q

Examples:
  orthospace factorize -f a.yaml
  orthospace factorize --mode fullpiv -f a.yaml -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.readMatrix(cmd, file)
			if err != nil {
				return err
			}
			res, err := qr.Factorize(m, mode)
			if err != nil {
				return a.fail(kindFactorize, err)
			}
			doc, err := report.QR(m, res)
			if err != nil {
				return err
			}
			a.log.Info("factorized",
				zap.Stringer("mode", res.Mode),
				zap.Int("rows", m.Rows()),
				zap.Int("cols", m.Cols()),
				zap.Int("numerical_rank", res.NumericalRank()),
				zap.String("reconstruction_error", doc.Summary["reconstruction_error"]),
			)

			return a.emit(doc)
		},
	}
	addFileFlag(cmd.Flags(), &file)
	cmd.Flags().Var(&mode, "mode", "Pivoting mode: plain, colpiv, fullpiv")

	return cmd
}
