// SPDX-License-Identifier: MIT

// Package shape is the membership-function library of lvfuzzy.
//
// 🚀 What is a membership function?
//
//	A membership function maps a domain value x to a degree μ(x) that
//	says how strongly x belongs to a fuzzy set. Degrees conventionally
//	live in [0,1]: 0 means "not a member", 1 means "fully a member".
//
// ✨ Families:
//   - Triangular, Trapezoidal — piecewise-linear ramps
//   - Gaussian, CombinedGaussian — bell curves, optionally with a plateau
//   - Bell — generalized bell 1/(1+|(x−c)/w|^(2s))
//   - Sigmoid — standard logistic 1/(1+e^(−w(x−c)))
//   - S, Z, Pi — quadratic spline ramps
//
// Every family comes in two forms:
//
//	μ := shape.TriangularAt(x, a, b, c)     // one value
//	ys := shape.Triangular(xs, a, b, c)     // 1:1 over a slice, same order
//
// Numeric policy:
//   - Shape functions never panic and never return NaN: every result
//     passes through Sanitize (NaN → 0).
//   - Zero-width linear ramps (a==b, b==c, ...) are closed vertical
//     steps instead of 0/0 divisions.
//   - Parameters are NOT validated here; package fuzzy validates on
//     construction. Calling a shape with out-of-order parameters yields
//     a well-defined but meaningless curve.
//
// Complexity: O(1) per point, O(n) per slice, one allocation per slice.
package shape
