// SPDX-License-Identifier: MIT
// Package: lvfuzzy/shape
//
// spline.go — quadratic spline ramps (S, Z, Pi).
//
// The S ramp from foot to ceiling is built of two parabolas that meet at
// the midpoint m = foot + (ceiling−foot)/2 with degree 0.5:
//
//	x ≤ foot            0
//	foot < x ≤ m        2·((x−foot)/(ceiling−foot))²
//	m < x ≤ ceiling     1 − 2·((x−ceiling)/(ceiling−foot))²
//	x > ceiling         1
//
// Z is its mirror (1 − S) and Pi glues an S ramp, a plateau and a Z ramp.

package shape

// SAt evaluates the S-shaped ramp rising from 0 at foot to 1 at ceiling.
// Expects foot < ceiling; foot == ceiling degenerates into a step that is
// 0 up to foot and 1 after it.
// Complexity: O(1).
func SAt(x, foot, ceiling float64) float64 {
	if x <= foot {
		return unitZero
	}
	if x >= ceiling {
		return unitOne
	}

	// foot + span/2 stays finite where (foot+ceiling)/2 would overflow.
	span := ceiling - foot
	mid := foot + span*half
	if x <= mid {
		t := (x - foot) / span
		return clampUnit(two * t * t)
	}
	t := (x - ceiling) / span

	return clampUnit(unitOne - two*t*t)
}

// S evaluates SAt over xs, preserving order.
func S(xs []float64, foot, ceiling float64) []float64 {
	return apply(xs, func(x float64) float64 { return SAt(x, foot, ceiling) })
}

// ZAt evaluates the Z-shaped ramp: 1 up to foot, falling to 0 at ceiling.
// Expects foot < ceiling. ZAt(x) == 1 − SAt(x) for every x.
// Complexity: O(1).
func ZAt(x, foot, ceiling float64) float64 {
	return unitOne - SAt(x, foot, ceiling)
}

// Z evaluates ZAt over xs, preserving order.
func Z(xs []float64, foot, ceiling float64) []float64 {
	return apply(xs, func(x float64) float64 { return ZAt(x, foot, ceiling) })
}

// PiAt evaluates the Pi-shaped curve:
//   - S ramp from leftFoot (0) to leftCeiling (1),
//   - plateau of 1 on [leftCeiling, rightCeiling],
//   - Z ramp from rightCeiling (1) to rightFoot (0), midpoint
//     (rightCeiling+rightFoot)/2.
//
// Expects leftFoot < leftCeiling ≤ rightCeiling < rightFoot.
// Complexity: O(1).
func PiAt(x, leftFoot, leftCeiling, rightFoot, rightCeiling float64) float64 {
	switch {
	case x < leftCeiling:
		return SAt(x, leftFoot, leftCeiling)
	case x <= rightCeiling:
		return unitOne
	default:
		return ZAt(x, rightCeiling, rightFoot)
	}
}

// Pi evaluates PiAt over xs, preserving order.
func Pi(xs []float64, leftFoot, leftCeiling, rightFoot, rightCeiling float64) []float64 {
	return apply(xs, func(x float64) float64 { return PiAt(x, leftFoot, leftCeiling, rightFoot, rightCeiling) })
}
