// SPDX-License-Identifier: MIT

// Package fuzzy provides named, immutable fuzzy sets over the real line
// and the algebra to combine them.
//
// 🚀 What is here?
//
//	A Set wraps one membership function from package shape together with
//	a title, and answers four questions uniformly:
//	  • Fuzzify(domain) — degree of every domain value, tagged with the title
//	  • Support()       — where the degree can be non-zero
//	  • Nucleus()       — where the degree is exactly 1
//	  • AlphaCut(α)     — where the degree is at least α (linear shapes)
//
// ✨ Families: Triangular, Trapezoidal, Gaussian, CombinedGaussian, Bell,
// Sigmoid, SShape, ZShape, PiShape. Constructors validate ordering,
// positivity and finiteness and return ErrInvalidParameters otherwise.
//
// ⚙️ Usage:
//
//	young, _ := fuzzy.NewTrapezoidal("young", 0, 0, 10, 15)
//	youngish, _ := fuzzy.NewTrapezoidal("young+", 10, 15, 25, 30)
//
//	recs, err := fuzzy.Union([]float64{10, 20, 30}, young, youngish)
//	// recs[i].Title == "young ∪ young+", degrees [1 1 0]
//
// Algebra:
//   - Union / Intersect — positional max / min fold over the same domain
//   - Complement        — 1 − degree, title prefixed with "complement "
//   - Merge             — any Operator (algebraic, bounded t-norms/conorms)
//
// Conventions:
//   - Unbounded supports (gaussian family, bell, sigmoid) are [−Inf, +Inf].
//   - Degrees are never NaN; an empty domain yields an empty result.
//   - All values are immutable; every function is safe for concurrent use.
package fuzzy
