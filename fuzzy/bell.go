// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy

package fuzzy

import (
	"github.com/katalvlaran/lvfuzzy/shape"
)

// Bell is the generalized bell 1 / (1 + |(x−center)/width|^(2·slope)).
type Bell struct {
	named
	width, slope, center float64
}

// NewBell validates finite parameters and width > 0.
// Errors: ErrInvalidParameters.
func NewBell(title string, width, slope, center float64) (*Bell, error) {
	if err := firstErr(
		validateFinite(methodBell, width, slope, center),
		validatePositive(methodBell, "width", width),
	); err != nil {
		return nil, err
	}

	return &Bell{named: named{title: title}, width: width, slope: slope, center: center}, nil
}

// Kind reports KindBell.
func (b *Bell) Kind() Kind { return KindBell }

// Params returns (width, slope, center).
func (b *Bell) Params() []float64 { return []float64{b.width, b.slope, b.center} }

// Degree evaluates the generalized bell at x.
func (b *Bell) Degree(x float64) float64 {
	return shape.BellAt(x, b.width, b.slope, b.center)
}

// Fuzzify evaluates the set over domain, preserving order.
func (b *Bell) Fuzzify(domain []float64) []Membership {
	return fuzzify(b.title, domain, b.Degree)
}

// Support returns the unbounded convention [−Inf, +Inf].
func (b *Bell) Support() (Interval, error) { return unbounded, nil }

// Nucleus returns the center point when slope > 0. A flat (slope == 0)
// or inverted (slope < 0) bell never reaches 1: ErrEmptyNucleus.
func (b *Bell) Nucleus() (Interval, error) {
	if b.slope <= 0 {
		return Interval{}, fuzzyErrorf(methodNucleus, ErrEmptyNucleus)
	}

	return Point(b.center), nil
}

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (b *Bell) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (b *Bell) String() string { return describe(b.Kind(), b.title, b.Params()...) }

// Sigmoid is the standard logistic 1 / (1 + e^(−width·(x−center))).
type Sigmoid struct {
	named
	center, width float64
}

// NewSigmoid validates finite parameters.
// Errors: ErrInvalidParameters.
func NewSigmoid(title string, center, width float64) (*Sigmoid, error) {
	if err := validateFinite(methodSigmoid, center, width); err != nil {
		return nil, err
	}

	return &Sigmoid{named: named{title: title}, center: center, width: width}, nil
}

// Kind reports KindSigmoid.
func (s *Sigmoid) Kind() Kind { return KindSigmoid }

// Params returns (center, width).
func (s *Sigmoid) Params() []float64 { return []float64{s.center, s.width} }

// Degree evaluates the logistic at x.
func (s *Sigmoid) Degree(x float64) float64 {
	return shape.SigmoidAt(x, s.center, s.width)
}

// Fuzzify evaluates the set over domain, preserving order.
func (s *Sigmoid) Fuzzify(domain []float64) []Membership {
	return fuzzify(s.title, domain, s.Degree)
}

// Support returns the unbounded convention [−Inf, +Inf].
func (s *Sigmoid) Support() (Interval, error) { return unbounded, nil }

// Nucleus always fails: the logistic only approaches 1 asymptotically.
func (s *Sigmoid) Nucleus() (Interval, error) {
	return Interval{}, fuzzyErrorf(methodNucleus, ErrEmptyNucleus)
}

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (s *Sigmoid) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (s *Sigmoid) String() string { return describe(s.Kind(), s.title, s.Params()...) }
