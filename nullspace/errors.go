// SPDX-License-Identifier: MIT

package nullspace

import (
	"errors"

	"github.com/katalvlaran/orthospace/status"
)

var (
	// ErrRankDeficient is returned when the R1 block is singular (or nearly
	// so) or the resulting basis is not finite. No basis is produced.
	// It maps to status.RankDeficient.
	ErrRankDeficient = status.NewError(status.RankDeficient, "nullspace: rank deficient")

	// ErrNotTall is returned by OrthogonalComplement for inputs with fewer
	// rows than columns.
	ErrNotTall = errors.New("nullspace: matrix must have at least as many rows as columns")

	// ErrUnknownStrategy is returned for a Strategy outside the defined ones.
	ErrUnknownStrategy = errors.New("nullspace: unknown strategy")
)
