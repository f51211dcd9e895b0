// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"
	"math"
	"strings"
)

// DefaultTolerance is the relative threshold for numerical rank and for
// rejecting near-zero pivots of R1.
const DefaultTolerance = 1e-10

const panicToleranceInvalid = "nullspace: WithTolerance: tol must be finite and non-negative"

// Strategy selects where the column permutation of a pivoted QR is applied.
type Strategy int

const (
	// PermuteBasis solves in pivoted coordinates and permutes the basis rows.
	PermuteBasis Strategy = iota
	// AbsorbIntoR folds the permutation into R (R·Pᵀ) before partitioning.
	AbsorbIntoR
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case PermuteBasis:
		return "permute"
	case AbsorbIntoR:
		return "absorb"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Set parses text into s.
func (s *Strategy) Set(text string) error {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "permute", "permute_basis":
		*s = PermuteBasis
	case "absorb", "absorb_into_r":
		*s = AbsorbIntoR
	default:
		return fmt.Errorf("%q: %w", text, ErrUnknownStrategy)
	}

	return nil
}

// Type names the flag value kind.
func (s *Strategy) Type() string { return "strategy" }

func (s Strategy) valid() bool { return s == PermuteBasis || s == AbsorbIntoR }

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration of one extraction.
type Options struct {
	tol      float64
	strategy Strategy
}

// WithTolerance overrides DefaultTolerance. Panics on negative, NaN or infinite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithStrategy selects the permutation strategy (PermuteBasis by default).
// Unknown values are reported by NullSpace as ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, strategy: PermuteBasis}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
