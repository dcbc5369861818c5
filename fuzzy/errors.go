// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// errors.go — sentinel errors for the fuzzy package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match them with errors.Is.
//   • Call sites attach context with fuzzyErrorf(tag, ErrX) ("<tag>: <sentinel>").
//   • Degenerate arithmetic (zero-width ramps, 0/0) is NOT an error; it is
//     resolved numerically and never surfaces as NaN.
//   • An empty domain is NOT an error; it yields an empty result.

package fuzzy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is returned by constructors when shape ordering,
	// positivity or finiteness invariants are violated. No instance is built.
	ErrInvalidParameters = errors.New("fuzzy: invalid parameters")

	// ErrInvalidAlpha indicates an alpha level outside [0,1] (or NaN).
	ErrInvalidAlpha = errors.New("fuzzy: alpha must be in [0,1]")

	// ErrAlphaCutUnsupported marks shapes whose alpha-cut is not derived
	// by ramp inversion (everything except triangular and trapezoidal).
	ErrAlphaCutUnsupported = errors.New("fuzzy: alpha-cut not supported for this shape")

	// ErrEmptyNucleus indicates a shape that never reaches degree 1.
	ErrEmptyNucleus = errors.New("fuzzy: nucleus is empty")

	// ErrNoSets is returned by Union/Intersect/Merge called without sets.
	ErrNoSets = errors.New("fuzzy: at least one set is required")

	// ErrNilSet indicates a nil Set passed to an algebra operator.
	ErrNilSet = errors.New("fuzzy: set is nil")

	// ErrLengthMismatch indicates record rows of different lengths passed
	// to MergeRecords; positional merging needs equal lengths.
	ErrLengthMismatch = errors.New("fuzzy: record rows differ in length")

	// ErrNilOperator indicates an Operator without a Combine function.
	ErrNilOperator = errors.New("fuzzy: operator has no combine function")
)

// fuzzyErrorf wraps err with a method/context tag: "<tag>: <err>".
// The sentinel stays reachable through errors.Is.
func fuzzyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// paramErrorf reports a violated parameter invariant for constructor tag,
// wrapping ErrInvalidParameters.
func paramErrorf(tag, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), ErrInvalidParameters)
}
