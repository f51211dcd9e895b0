// SPDX-License-Identifier: MIT

package gramschmidt

import "math"

const (
	// DefaultClassicalTolerance is the relative residual threshold for CGS.
	DefaultClassicalTolerance = 1e-4

	// DefaultModifiedTolerance is the relative residual threshold for MGS.
	DefaultModifiedTolerance = 1e-13
)

const panicToleranceInvalid = "gramschmidt: WithTolerance: tol must be finite and in [0, 1)"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of one Orthonormalize call.
type Options struct {
	tol         float64
	negateFirst bool
}

// WithTolerance overrides the variant's default relative threshold.
// Panics unless tol lies in [0, 1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithNegatedFirstColumn flips the sign of the first basis vector.
// Some references fix the orientation of q₀ this way; orthonormality and
// span are unaffected.
func WithNegatedFirstColumn() Option {
	return func(o *Options) { o.negateFirst = true }
}

// gatherOptions applies setters over the variant defaults; nil setters are skipped.
func gatherOptions(v Variant, user ...Option) Options {
	o := Options{tol: v.defaultTolerance()}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
