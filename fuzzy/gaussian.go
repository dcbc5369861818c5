// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// gaussian.go — Gaussian and CombinedGaussian sets.
//
// Gaussian tails never reach 0, so both report the unbounded support
// convention [−Inf, +Inf]. Neither has a closed-form alpha-cut here.

package fuzzy

import (
	"github.com/katalvlaran/lvfuzzy/shape"
)

// Gaussian is the set exp(−(x−mean)²/(2·sd²)).
type Gaussian struct {
	named
	mean, sd float64
}

// NewGaussian validates finite parameters and sd > 0.
// Errors: ErrInvalidParameters.
func NewGaussian(title string, mean, sd float64) (*Gaussian, error) {
	if err := firstErr(
		validateFinite(methodGaussian, mean, sd),
		validatePositive(methodGaussian, "sd", sd),
	); err != nil {
		return nil, err
	}

	return &Gaussian{named: named{title: title}, mean: mean, sd: sd}, nil
}

// Kind reports KindGaussian.
func (g *Gaussian) Kind() Kind { return KindGaussian }

// Params returns (mean, sd).
func (g *Gaussian) Params() []float64 { return []float64{g.mean, g.sd} }

// Degree evaluates the gaussian at x.
func (g *Gaussian) Degree(x float64) float64 {
	return shape.GaussianAt(x, g.mean, g.sd)
}

// Fuzzify evaluates the set over domain, preserving order.
func (g *Gaussian) Fuzzify(domain []float64) []Membership {
	return fuzzify(g.title, domain, g.Degree)
}

// Support returns the unbounded convention [−Inf, +Inf].
func (g *Gaussian) Support() (Interval, error) { return unbounded, nil }

// Nucleus returns the mean as a point interval.
func (g *Gaussian) Nucleus() (Interval, error) { return Point(g.mean), nil }

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (g *Gaussian) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (g *Gaussian) String() string { return describe(g.Kind(), g.title, g.Params()...) }

// CombinedGaussian joins a left gaussian tail (mean2, sd2) and a right
// gaussian tail (mean1, sd1) with a plateau of 1 on [mean2, mean1].
type CombinedGaussian struct {
	named
	mean1, sd1, mean2, sd2 float64
}

// NewCombinedGaussian validates finite parameters, sd1 > 0, sd2 > 0 and
// mean1 ≥ mean2.
// Errors: ErrInvalidParameters.
func NewCombinedGaussian(title string, mean1, sd1, mean2, sd2 float64) (*CombinedGaussian, error) {
	if err := firstErr(
		validateFinite(methodCombinedGaussian, mean1, sd1, mean2, sd2),
		validatePositive(methodCombinedGaussian, "sd1", sd1),
		validatePositive(methodCombinedGaussian, "sd2", sd2),
		validateNonDecreasing(methodCombinedGaussian, mean2, mean1),
	); err != nil {
		return nil, err
	}

	return &CombinedGaussian{
		named: named{title: title},
		mean1: mean1, sd1: sd1,
		mean2: mean2, sd2: sd2,
	}, nil
}

// Kind reports KindCombinedGaussian.
func (g *CombinedGaussian) Kind() Kind { return KindCombinedGaussian }

// Params returns (mean1, sd1, mean2, sd2).
func (g *CombinedGaussian) Params() []float64 {
	return []float64{g.mean1, g.sd1, g.mean2, g.sd2}
}

// Degree evaluates the combined gaussian at x.
func (g *CombinedGaussian) Degree(x float64) float64 {
	return shape.CombinedGaussianAt(x, g.mean1, g.sd1, g.mean2, g.sd2)
}

// Fuzzify evaluates the set over domain, preserving order.
func (g *CombinedGaussian) Fuzzify(domain []float64) []Membership {
	return fuzzify(g.title, domain, g.Degree)
}

// Support returns the unbounded convention [−Inf, +Inf].
func (g *CombinedGaussian) Support() (Interval, error) { return unbounded, nil }

// Nucleus returns the plateau [mean2, mean1].
func (g *CombinedGaussian) Nucleus() (Interval, error) {
	return Interval{Lo: g.mean2, Hi: g.mean1}, nil
}

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (g *CombinedGaussian) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (g *CombinedGaussian) String() string { return describe(g.Kind(), g.title, g.Params()...) }

// unsupportedCut validates alpha first so callers see ErrInvalidAlpha for
// nonsense levels on any shape, then reports ErrAlphaCutUnsupported.
func unsupportedCut(alpha float64) (Interval, error) {
	if err := validateAlpha(alpha); err != nil {
		return Interval{}, err
	}

	return Interval{}, fuzzyErrorf(methodAlphaCut, ErrAlphaCutUnsupported)
}
