// SPDX-License-Identifier: MIT
// Package: lvfuzzy/shape

package shape

import (
	"math"
)

// BellAt evaluates the generalized bell 1 / (1 + |(x−c)/w|^(2s)).
// w must be strictly positive. At x == c the degree is 1 for s > 0,
// 0.5 for s == 0 and 0 for s < 0 (0^negative is +Inf).
// Complexity: O(1).
func BellAt(x, w, s, c float64) float64 {
	return Sanitize(unitOne / (unitOne + math.Pow(math.Abs((x-c)/w), two*s)))
}

// Bell evaluates BellAt over xs, preserving order.
func Bell(xs []float64, w, s, c float64) []float64 {
	return apply(xs, func(x float64) float64 { return BellAt(x, w, s, c) })
}
