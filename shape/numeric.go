// SPDX-License-Identifier: MIT
// Package: lvfuzzy/shape
//
// numeric.go — tiny numeric primitives shared by every shape family.
//
// Contract:
//   • Exp is the single exponential primitive used by exponential shapes.
//   • Sanitize is applied to every evaluated degree (NaN → 0).
//   • rise/fall resolve zero-width ramps before any division happens.

package shape

import (
	"math"
)

// Named constants used across formulas (no magic literals).
const (
	unitZero = 0.0 // lower bound of a degree
	unitOne  = 1.0 // upper bound of a degree
	two      = 2.0 // quadratic spline factor and gaussian denominator factor
	half     = 0.5 // midpoint factor for spline ramps
)

// Exp returns e**x. It is the exponential primitive every exponential
// shape (Gaussian, CombinedGaussian, Sigmoid) is written against.
// Complexity: O(1).
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Sanitize maps NaN to 0 and returns every other value unchanged.
// It is the normalization step applied after each formula evaluation.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return unitZero
	}

	return v
}

// clampUnit sanitizes v and bounds it to [0,1].
func clampUnit(v float64) float64 {
	return math.Min(unitOne, math.Max(unitZero, Sanitize(v)))
}

// rise evaluates the rising linear ramp (x−lo)/(hi−lo).
// A zero-width ramp (lo == hi) is a closed step: 0 left of lo, 1 from lo on.
func rise(x, lo, hi float64) float64 {
	if hi == lo {
		if x < lo {
			return unitZero
		}
		return unitOne
	}

	return (x - lo) / (hi - lo)
}

// fall evaluates the falling linear ramp (hi−x)/(hi−lo).
// A zero-width ramp (lo == hi) is a closed step: 1 up to hi, 0 right of hi.
func fall(x, lo, hi float64) float64 {
	if hi == lo {
		if x > hi {
			return unitZero
		}
		return unitOne
	}

	return (hi - x) / (hi - lo)
}

// apply maps fn over xs into a freshly allocated slice of the same length.
// The output is never nil, so an empty domain yields an empty result.
func apply(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Sanitize(fn(x))
	}

	return out
}
