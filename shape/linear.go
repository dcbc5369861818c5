// SPDX-License-Identifier: MIT
// Package: lvfuzzy/shape
//
// linear.go — piecewise-linear families (triangular, trapezoidal).

package shape

import (
	"math"
)

// TriangularAt evaluates max(min((x−a)/(b−a), (c−x)/(c−b)), 0).
// Expects a ≤ b ≤ c. Zero-width sides are vertical steps that keep the
// vertex b at degree 1.
// Complexity: O(1).
func TriangularAt(x, a, b, c float64) float64 {
	left := rise(x, a, b)
	right := fall(x, b, c)

	return Sanitize(math.Max(math.Min(left, right), unitZero))
}

// Triangular evaluates TriangularAt over xs, preserving order.
// Complexity: O(n) time, O(n) memory.
func Triangular(xs []float64, a, b, c float64) []float64 {
	return apply(xs, func(x float64) float64 { return TriangularAt(x, a, b, c) })
}

// TrapezoidalAt evaluates max(min((x−a)/(b−a), 1, (d−x)/(d−c)), 0).
// Expects a ≤ b ≤ c ≤ d; the plateau [b,c] has degree 1.
// Complexity: O(1).
func TrapezoidalAt(x, a, b, c, d float64) float64 {
	left := rise(x, a, b)
	right := fall(x, c, d)

	return Sanitize(math.Max(math.Min(math.Min(left, unitOne), right), unitZero))
}

// Trapezoidal evaluates TrapezoidalAt over xs, preserving order.
// Complexity: O(n) time, O(n) memory.
func Trapezoidal(xs []float64, a, b, c, d float64) []float64 {
	return apply(xs, func(x float64) float64 { return TrapezoidalAt(x, a, b, c, d) })
}
