// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/orthospace/gramschmidt"
	"github.com/katalvlaran/orthospace/internal/config"
	"github.com/katalvlaran/orthospace/internal/logging"
	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/nullspace"
	"github.com/katalvlaran/orthospace/qr"
	"github.com/katalvlaran/orthospace/report"
	"github.com/katalvlaran/orthospace/status"
)

// Enum flags parse through these types directly.
var (
	_ pflag.Value = (*gramschmidt.Variant)(nil)
	_ pflag.Value = (*qr.Mode)(nil)
	_ pflag.Value = (*nullspace.Strategy)(nil)
	_ pflag.Value = (*report.Format)(nil)
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfg *config.Config
	log *logging.Logger
	out io.Writer

	output    string
	precision int
	logLevel  string
	logDev    bool
	format    report.Format
}

// newRootCmd builds the command tree; out receives reports, errOut receives
// cobra's own messages. Logs always go to stderr.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.LoadOrDefault(), out: out, log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "orthospace",
		Short: "Orthonormal bases, QR factorizations and null spaces of dense matrices",
		Long: `orthospace builds orthonormal bases with classical or modified Gram-Schmidt,
computes Householder QR factorizations (plain, column-pivoted, full-pivoted)
and derives null-space bases and orthogonal complements from them.

Every command prints the intermediate matrices it used so the results can be
checked by hand: Q·R against the input, B·N and Aᵀ·Q2 against zero.

Environment:
  ORTHOSPACE_LOG_LEVEL   debug, info, warn, error (default info)
  ORTHOSPACE_LOG_DEV     console logs instead of JSON (default false)
  ORTHOSPACE_OUTPUT      auto, text, yaml (default auto)
  ORTHOSPACE_PRECISION   decimals per matrix entry (default 4)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.output, "output", "o", a.cfg.Output.Format, "Output format: auto, text, yaml")
	pf.IntVar(&a.precision, "precision", a.cfg.Output.Precision, "Decimals printed per matrix entry")
	pf.StringVar(&a.logLevel, "log-level", a.cfg.Logging.Level, "Log level: debug, info, warn, error")
	pf.BoolVar(&a.logDev, "log-dev", a.cfg.Logging.Development, "Human-readable console logs")

	root.AddCommand(
		newDemoCmd(a),
		newOrthonormalizeCmd(a),
		newFactorizeCmd(a),
		newNullSpaceCmd(a),
		newComplementCmd(a),
	)

	return root
}

// setup resolves the output format and builds the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	format, err := a.resolveFormat()
	if err != nil {
		return err
	}
	a.format = format

	cfg := logging.DefaultConfig()
	if a.logDev {
		cfg = logging.DevelopmentConfig()
	}
	cfg.Level = a.logLevel
	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
	}
	a.log = logger.ForRun(cmd.Name())

	return nil
}

// resolveFormat maps "auto" to text on a terminal and YAML when stdout is
// redirected to a file or pipe.
func (a *app) resolveFormat() (report.Format, error) {
	if !strings.EqualFold(strings.TrimSpace(a.output), "auto") {
		return report.ParseFormat(a.output)
	}
	if f, ok := a.out.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return report.YAML, nil
	}

	return report.Text, nil
}

// addFileFlag registers the -f/--file input flag.
func addFileFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVarP(path, "file", "f", "", "Matrix YAML file (- for stdin)")
}

// readMatrix loads the -f argument; "-" reads the command's stdin.
func (a *app) readMatrix(cmd *cobra.Command, path string) (*matrix.Dense, error) {
	if path == "" {
		return nil, errors.New("missing matrix file (-f)")
	}
	var (
		m   *matrix.Dense
		err error
	)
	if path == "-" {
		m, err = config.ReadMatrix(cmd.InOrStdin())
	} else {
		m, err = config.LoadMatrix(path)
	}
	if err != nil {
		return nil, err
	}
	a.log.Debug("matrix loaded", zap.String("path", path), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// emit renders doc in the resolved format.
func (a *app) emit(doc *report.Document) error {
	return report.Write(a.out, doc, a.format, a.precision)
}

// fail renders a failure document, logs it and returns err for the exit code.
func (a *app) fail(kind string, err error) error {
	fields := []zap.Field{zap.String("kind", kind), zap.Error(err)}
	if s, ok := status.Of(err); ok {
		fields = append(fields, zap.Stringer("status", s))
	}
	a.log.Error("computation failed", fields...)
	if werr := a.emit(report.Failure(kind, err)); werr != nil {
		return werr
	}

	return err
}
