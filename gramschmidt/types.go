// SPDX-License-Identifier: MIT

package gramschmidt

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/status"
)

// Variant selects the orthogonalization scheme.
type Variant int

const (
	// Classical projects each column against the finished prefix in one batch.
	Classical Variant = iota
	// Modified removes projections one at a time from the running residual.
	Modified
)

// String returns the flag spelling of v.
func (v Variant) String() string {
	switch v {
	case Classical:
		return "classical"
	case Modified:
		return "modified"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Set parses s into v. Together with String and Type it makes *Variant
// usable as a command-line flag value.
func (v *Variant) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classical", "cgs":
		*v = Classical
	case "modified", "mgs":
		*v = Modified
	default:
		return fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}

	return nil
}

// Type names the flag value kind.
func (v *Variant) Type() string { return "variant" }

func (v Variant) valid() bool { return v == Classical || v == Modified }

func (v Variant) defaultTolerance() float64 {
	if v == Modified {
		return DefaultModifiedTolerance
	}

	return DefaultClassicalTolerance
}

// Basis is the result of Orthonormalize.
//
// Q has the shape of the input. Its leading Rank columns are orthonormal;
// when Status is Degenerate the remaining columns are untouched copies of
// the input columns.
type Basis struct {
	Q       *matrix.Dense
	Rank    int
	Variant Variant
	Status  status.Status
}

// Orthonormal returns the Rank leading columns of Q as a fresh matrix,
// or nil when Rank is 0.
func (b *Basis) Orthonormal() (*matrix.Dense, error) {
	if b.Rank == 0 {
		return nil, nil
	}

	return matrix.Block(b.Q, 0, 0, b.Q.Rows(), b.Rank)
}
