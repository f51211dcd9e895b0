// SPDX-License-Identifier: MIT

// Package status reports the outcome of an orthospace computation.
//
// Every result carries one Status:
//
//   - OK: the computation finished and its invariants hold.
//   - Degenerate: Gram-Schmidt met a near-linearly-dependent column and
//     returned a partial basis.
//   - RankDeficient: null-space extraction found a singular R1 block and
//     produced no basis.
//
// Packages declare their failure sentinels with NewError so that Of can map
// any returned error back to a Status without importing those packages.
package status

import (
	"errors"
	"fmt"
)

// Status is the outcome tag of a computation.
type Status int

const (
	// OK means success.
	OK Status = iota
	// Degenerate means a partial orthonormal basis was produced.
	Degenerate
	// RankDeficient means null-space extraction failed on a singular block.
	RankDeficient
)

const (
	textOK            = "ok"
	textDegenerate    = "degenerate"
	textRankDeficient = "rank_deficient_error"
)

// ErrUnknownStatus is returned when parsing text that names no Status.
var ErrUnknownStatus = errors.New("status: unknown status")

// String returns the canonical lowercase name.
func (s Status) String() string {
	switch s {
	case OK:
		return textOK
	case Degenerate:
		return textDegenerate
	case RankDeficient:
		return textRankDeficient
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler (YAML and JSON use it).
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case OK, Degenerate, RankDeficient:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%d: %w", int(s), ErrUnknownStatus)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case textOK:
		*s = OK
	case textDegenerate:
		*s = Degenerate
	case textRankDeficient:
		*s = RankDeficient
	default:
		return fmt.Errorf("%q: %w", string(text), ErrUnknownStatus)
	}

	return nil
}

// Error is a sentinel error tagged with the Status it stands for.
// Compare with errors.Is against the package variable that holds it.
type Error struct {
	status Status
	msg    string
}

// NewError declares a status-carrying sentinel.
func NewError(s Status, msg string) *Error {
	return &Error{status: s, msg: msg}
}

// Error implements error.
func (e *Error) Error() string { return e.msg }

// Status returns the outcome the sentinel stands for.
func (e *Error) Status() Status { return e.status }

// Of maps an error returned by a computation to its Status.
// nil maps to OK. The second result is false when err carries no Status
// (bad input, shape errors), in which case the first result is meaningless.
func Of(err error) (Status, bool) {
	if err == nil {
		return OK, true
	}
	var se *Error
	if errors.As(err, &se) {
		return se.status, true
	}

	return OK, false
}
