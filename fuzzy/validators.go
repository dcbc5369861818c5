// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// validators.go — parameter checks shared by every constructor.
//
// Each validator returns nil or an error wrapping ErrInvalidParameters
// (or ErrInvalidAlpha), prefixed with the calling constructor's tag.
// Checks run in a fixed order: finiteness → positivity → ordering.

package fuzzy

import (
	"math"
)

// Constructor and method tags used as error prefixes.
const (
	methodTriangular       = "NewTriangular"
	methodTrapezoidal      = "NewTrapezoidal"
	methodGaussian         = "NewGaussian"
	methodCombinedGaussian = "NewCombinedGaussian"
	methodBell             = "NewBell"
	methodSigmoid          = "NewSigmoid"
	methodSShape           = "NewSShape"
	methodZShape           = "NewZShape"
	methodPiShape          = "NewPiShape"
	methodAlphaCut         = "AlphaCut"
	methodNucleus          = "Nucleus"
	methodMerge            = "Merge"
	methodComplement       = "Complement"
)

// validateFinite rejects NaN and ±Inf parameters.
// Complexity: O(len(params)).
func validateFinite(method string, params ...float64) error {
	for i, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return paramErrorf(method, "parameter %d must be finite, got %v", i, p)
		}
	}

	return nil
}

// validatePositive requires v > 0.
func validatePositive(method, name string, v float64) error {
	if !(v > 0) {
		return paramErrorf(method, "%s must be > 0, got %v", name, v)
	}

	return nil
}

// validateNonDecreasing requires vals[0] ≤ vals[1] ≤ ... ≤ vals[n-1].
// Complexity: O(n).
func validateNonDecreasing(method string, vals ...float64) error {
	for i := 1; i < len(vals); i++ {
		if vals[i-1] > vals[i] {
			return paramErrorf(method, "parameters must be ordered, got %v > %v at position %d", vals[i-1], vals[i], i)
		}
	}

	return nil
}

// validateLess requires lo < hi (strict).
func validateLess(method, loName, hiName string, lo, hi float64) error {
	if !(lo < hi) {
		return paramErrorf(method, "%s must be < %s, got %v and %v", loName, hiName, lo, hi)
	}

	return nil
}

// validateSpan requires hi − lo to be finite, so ramps between them can
// be evaluated without overflow.
func validateSpan(method, loName, hiName string, lo, hi float64) error {
	if math.IsInf(hi-lo, 0) {
		return paramErrorf(method, "%s − %s overflows float64, got %v and %v", hiName, loName, hi, lo)
	}

	return nil
}

// validateAlpha requires alpha ∈ [0,1].
func validateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return fuzzyErrorf(methodAlphaCut, ErrInvalidAlpha)
	}

	return nil
}

// firstErr returns the first non-nil error in order, or nil.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
