// SPDX-License-Identifier: MIT
// Package: lvfuzzy/shape
//
// gaussian.go — exponential families: gaussian, combined gaussian, sigmoid.

package shape

// GaussianAt evaluates exp(−z²/2) with z = (x−mean)/sd.
// Dividing by sd before squaring keeps tiny positive sd from underflowing
// sd² to 0, so the peak at x == mean is always 1. sd == 0 produces 0/0 at
// x == mean, which Sanitize turns into 0.
// Complexity: O(1).
func GaussianAt(x, mean, sd float64) float64 {
	z := (x - mean) / sd

	return Sanitize(Exp(-z * z / two))
}

// Gaussian evaluates GaussianAt over xs, preserving order.
func Gaussian(xs []float64, mean, sd float64) []float64 {
	return apply(xs, func(x float64) float64 { return GaussianAt(x, mean, sd) })
}

// CombinedGaussianAt joins two gaussian tails with a flat top.
// Expects mean2 ≤ mean1:
//   - x < mean2          → GaussianAt(x, mean2, sd2)  (left tail)
//   - x > mean1          → GaussianAt(x, mean1, sd1)  (right tail)
//   - mean2 ≤ x ≤ mean1  → 1                          (plateau)
//
// Complexity: O(1).
func CombinedGaussianAt(x, mean1, sd1, mean2, sd2 float64) float64 {
	switch {
	case x < mean2:
		return GaussianAt(x, mean2, sd2)
	case x > mean1:
		return GaussianAt(x, mean1, sd1)
	default:
		return unitOne
	}
}

// CombinedGaussian evaluates CombinedGaussianAt over xs, preserving order.
func CombinedGaussian(xs []float64, mean1, sd1, mean2, sd2 float64) []float64 {
	return apply(xs, func(x float64) float64 { return CombinedGaussianAt(x, mean1, sd1, mean2, sd2) })
}

// SigmoidAt evaluates the standard logistic 1 / (1 + exp(−w·(x−c))).
// Positive w opens to the right, negative w to the left, w == 0 is the
// constant 0.5.
// Complexity: O(1).
func SigmoidAt(x, c, w float64) float64 {
	return Sanitize(unitOne / (unitOne + Exp(-w*(x-c))))
}

// Sigmoid evaluates SigmoidAt over xs, preserving order.
func Sigmoid(xs []float64, c, w float64) []float64 {
	return apply(xs, func(x float64) float64 { return SigmoidAt(x, c, w) })
}
