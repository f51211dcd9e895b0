// SPDX-License-Identifier: MIT

package gramschmidt

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthospace/status"
)

var (
	// ErrUnknownVariant is returned for a Variant outside {Classical, Modified}.
	ErrUnknownVariant = errors.New("gramschmidt: unknown variant")

	// ErrNearLinearDependence signals a column whose residual fell to the
	// threshold. It maps to status.Degenerate.
	ErrNearLinearDependence = status.NewError(status.Degenerate, "gramschmidt: near linear dependence")
)

// DependenceError reports where and by how much orthogonalization failed.
// It unwraps to ErrNearLinearDependence.
type DependenceError struct {
	Column    int     // first column that could not be orthonormalized
	Residual  float64 // ‖residual‖ after projection
	Threshold float64 // tol·‖a_j‖ that the residual failed to exceed
}

// Error implements error.
func (e *DependenceError) Error() string {
	return fmt.Sprintf("%s: column %d residual %g <= %g",
		ErrNearLinearDependence.Error(), e.Column, e.Residual, e.Threshold)
}

// Unwrap exposes the sentinel to errors.Is / errors.As.
func (e *DependenceError) Unwrap() error { return ErrNearLinearDependence }
