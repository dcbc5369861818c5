// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// types.go — Set interface, Kind tag, Membership record and Interval.

package fuzzy

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the shape family of a Set. Dispatch on Kind, not on the
// dynamic type.
type Kind int

const (
	// KindTriangular — linear ramps a→b→c.
	KindTriangular Kind = iota
	// KindTrapezoidal — linear ramps with a plateau [b,c].
	KindTrapezoidal
	// KindGaussian — exp(−(x−mean)²/(2·sd²)).
	KindGaussian
	// KindCombinedGaussian — two gaussian tails joined by a plateau.
	KindCombinedGaussian
	// KindBell — generalized bell.
	KindBell
	// KindSigmoid — standard logistic.
	KindSigmoid
	// KindSShape — quadratic S ramp.
	KindSShape
	// KindZShape — quadratic Z ramp.
	KindZShape
	// KindPiShape — S ramp, plateau, Z ramp.
	KindPiShape
)

var kindNames = [...]string{
	KindTriangular:       "triangular",
	KindTrapezoidal:      "trapezoidal",
	KindGaussian:         "gaussian",
	KindCombinedGaussian: "combined-gaussian",
	KindBell:             "bell",
	KindSigmoid:          "sigmoid",
	KindSShape:           "s-shape",
	KindZShape:           "z-shape",
	KindPiShape:          "pi-shape",
}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Kinds lists every shape family in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind resolves a canonical name (see Kind.String) back to a Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}

	return 0, false
}

// Membership is the degree of one domain value in one (possibly merged) set.
//   - Title  — set title; merged records join titles with the operator symbol.
//   - Value  — the original domain value, carried through unchanged.
//   - Degree — membership degree, conventionally in [0,1].
type Membership struct {
	Title  string
	Value  float64
	Degree float64
}

// Interval is the closed interval [Lo, Hi]. Bounds may be ±Inf for
// unbounded supports/nuclei. A point is an interval with Lo == Hi.
type Interval struct {
	Lo, Hi float64
}

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval {
	return Interval{Lo: x, Hi: x}
}

// Contains reports whether Lo ≤ x ≤ Hi.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Width returns Hi − Lo (+Inf for unbounded intervals).
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

// IsPoint reports whether the interval collapses to one value.
func (iv Interval) IsPoint() bool {
	return iv.Lo == iv.Hi
}

// IsBounded reports whether both bounds are finite.
func (iv Interval) IsBounded() bool {
	return !math.IsInf(iv.Lo, 0) && !math.IsInf(iv.Hi, 0)
}

// String renders "[lo, hi]" using the shortest float formatting.
func (iv Interval) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Lo, iv.Hi)
}

// unbounded is the support convention for shapes that never reach 0.
var unbounded = Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}

// Set is an immutable, named fuzzy set over the real line.
//
// Implementations are pure: every method is safe for concurrent use and
// never mutates its receiver or its arguments.
type Set interface {
	// Title is the human-readable name that tags fuzzified records.
	Title() string
	// Kind is the shape family tag.
	Kind() Kind
	// Params returns a copy of the shape parameters in constructor order.
	Params() []float64
	// Degree evaluates the membership of a single value.
	Degree(x float64) float64
	// Fuzzify evaluates the whole domain, one record per value, same order.
	Fuzzify(domain []float64) []Membership
	// Support is the closed interval outside which the degree is 0.
	Support() (Interval, error)
	// Nucleus is the interval (or point) where the degree is 1.
	Nucleus() (Interval, error)
	// AlphaCut is the interval of values whose degree is ≥ alpha.
	AlphaCut(alpha float64) (Interval, error)
}

// Compile-time interface checks.
var (
	_ Set = (*Triangular)(nil)
	_ Set = (*Trapezoidal)(nil)
	_ Set = (*Gaussian)(nil)
	_ Set = (*CombinedGaussian)(nil)
	_ Set = (*Bell)(nil)
	_ Set = (*Sigmoid)(nil)
	_ Set = (*SShape)(nil)
	_ Set = (*ZShape)(nil)
	_ Set = (*PiShape)(nil)
)
