// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// linear.go — Triangular and Trapezoidal sets.
//
// These are the only families with a closed-form alpha-cut. With ramp
// slopes φ1 = 1/(b−a) and φ2 = 1/(d−c) the cut at level α is
//
//	l = a                    if a == b
//	l = (φ1·b + α − 1)/φ1    otherwise          (= a + α·(b−a))
//	r = c                    if c == d
//	r = (φ2·c + 1 − α)/φ2    otherwise          (= d − α·(d−c))
//
// where the triangle uses its vertex b for both c and the trapezoid's
// b/c pair. Endpoints are then snapped by at most a few ulps so that
// they evaluate back to a degree ≥ α.

package fuzzy

import (
	"github.com/katalvlaran/lvfuzzy/shape"
)

// Triangular is the set with linear ramps a→b (rising) and b→c (falling).
type Triangular struct {
	named
	a, b, c float64
}

// NewTriangular validates a ≤ b ≤ c (all finite) and builds the set.
// Errors: ErrInvalidParameters.
func NewTriangular(title string, a, b, c float64) (*Triangular, error) {
	if err := firstErr(
		validateFinite(methodTriangular, a, b, c),
		validateNonDecreasing(methodTriangular, a, b, c),
	); err != nil {
		return nil, err
	}

	return &Triangular{named: named{title: title}, a: a, b: b, c: c}, nil
}

// Kind returns KindTriangular.
func (t *Triangular) Kind() Kind { return KindTriangular }

// Params returns (a, b, c).
func (t *Triangular) Params() []float64 { return []float64{t.a, t.b, t.c} }

// Degree evaluates the triangle at x.
func (t *Triangular) Degree(x float64) float64 {
	return shape.TriangularAt(x, t.a, t.b, t.c)
}

// Fuzzify evaluates the triangle over domain.
func (t *Triangular) Fuzzify(domain []float64) []Membership {
	return fuzzify(t.title, domain, t.Degree)
}

// Support returns [a, c].
func (t *Triangular) Support() (Interval, error) {
	return Interval{Lo: t.a, Hi: t.c}, nil
}

// Nucleus returns the vertex b as a point interval.
func (t *Triangular) Nucleus() (Interval, error) {
	return Point(t.b), nil
}

// AlphaCut returns [l, r] with degree ≥ alpha on it.
// Errors: ErrInvalidAlpha.
func (t *Triangular) AlphaCut(alpha float64) (Interval, error) {
	if err := validateAlpha(alpha); err != nil {
		return Interval{}, err
	}

	l := cutLeft(t.a, t.b, alpha)
	r := cutRight(t.b, t.c, alpha)

	return Interval{
		Lo: tighten(l, t.b, alpha, t.Degree),
		Hi: tighten(r, t.b, alpha, t.Degree),
	}, nil
}

// String implements fmt.Stringer.
func (t *Triangular) String() string {
	return describe(t.Kind(), t.title, t.Params()...)
}

// Trapezoidal is the set with ramps a→b and c→d around the plateau [b,c].
type Trapezoidal struct {
	named
	a, b, c, d float64
}

// NewTrapezoidal validates a ≤ b ≤ c ≤ d (all finite) and builds the set.
// Errors: ErrInvalidParameters.
func NewTrapezoidal(title string, a, b, c, d float64) (*Trapezoidal, error) {
	if err := firstErr(
		validateFinite(methodTrapezoidal, a, b, c, d),
		validateNonDecreasing(methodTrapezoidal, a, b, c, d),
	); err != nil {
		return nil, err
	}

	return &Trapezoidal{named: named{title: title}, a: a, b: b, c: c, d: d}, nil
}

// Kind returns KindTrapezoidal.
func (t *Trapezoidal) Kind() Kind { return KindTrapezoidal }

// Params returns (a, b, c, d).
func (t *Trapezoidal) Params() []float64 { return []float64{t.a, t.b, t.c, t.d} }

// Degree evaluates the trapezoid at x.
func (t *Trapezoidal) Degree(x float64) float64 {
	return shape.TrapezoidalAt(x, t.a, t.b, t.c, t.d)
}

// Fuzzify evaluates the trapezoid over domain.
func (t *Trapezoidal) Fuzzify(domain []float64) []Membership {
	return fuzzify(t.title, domain, t.Degree)
}

// Support returns [a, d].
func (t *Trapezoidal) Support() (Interval, error) {
	return Interval{Lo: t.a, Hi: t.d}, nil
}

// Nucleus returns the plateau [b, c].
func (t *Trapezoidal) Nucleus() (Interval, error) {
	return Interval{Lo: t.b, Hi: t.c}, nil
}

// AlphaCut returns [l, r] with degree ≥ alpha on it.
// Errors: ErrInvalidAlpha.
func (t *Trapezoidal) AlphaCut(alpha float64) (Interval, error) {
	if err := validateAlpha(alpha); err != nil {
		return Interval{}, err
	}

	l := cutLeft(t.a, t.b, alpha)
	r := cutRight(t.c, t.d, alpha)

	return Interval{
		Lo: tighten(l, t.b, alpha, t.Degree),
		Hi: tighten(r, t.c, alpha, t.Degree),
	}, nil
}

// String implements fmt.Stringer.
func (t *Trapezoidal) String() string {
	return describe(t.Kind(), t.title, t.Params()...)
}

// cutLeft inverts the rising ramp lo→hi at level alpha.
func cutLeft(lo, hi, alpha float64) float64 {
	if lo == hi {
		return lo
	}

	return lo + alpha*(hi-lo)
}

// cutRight inverts the falling ramp lo→hi at level alpha.
func cutRight(lo, hi, alpha float64) float64 {
	if lo == hi {
		return lo
	}

	return hi - alpha*(hi-lo)
}
