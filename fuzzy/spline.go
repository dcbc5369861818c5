// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// spline.go — S, Z and Pi sets built on quadratic spline ramps.
//
// Ordering rules (validated):
//   - S:  foot < ceiling (rises from 0 at foot to 1 at ceiling)
//   - Z:  foot < ceiling (falls from 1 at foot to 0 at ceiling)
//   - Pi: leftFoot < leftCeiling ≤ rightCeiling < rightFoot
//
// Naming: for S and both Pi ramps "foot" is the end where the degree is
// 0 and "ceiling" the end where it is 1. Z inverts this: its foot is
// where the degree is 1 and its ceiling where it is 0, with foot still
// the smaller bound. Every ramp width must also be finite.

package fuzzy

import (
	"math"

	"github.com/katalvlaran/lvfuzzy/shape"
)

// SShape rises from 0 at foot to 1 at ceiling.
type SShape struct {
	named
	foot, ceiling float64
}

// NewSShape validates finite parameters, foot < ceiling and a finite
// ceiling − foot.
// Errors: ErrInvalidParameters.
func NewSShape(title string, foot, ceiling float64) (*SShape, error) {
	if err := firstErr(
		validateFinite(methodSShape, foot, ceiling),
		validateLess(methodSShape, "foot", "ceiling", foot, ceiling),
		validateSpan(methodSShape, "foot", "ceiling", foot, ceiling),
	); err != nil {
		return nil, err
	}

	return &SShape{named: named{title: title}, foot: foot, ceiling: ceiling}, nil
}

// Kind reports KindSShape.
func (s *SShape) Kind() Kind { return KindSShape }

// Params returns (foot, ceiling).
func (s *SShape) Params() []float64 { return []float64{s.foot, s.ceiling} }

// Degree evaluates the S ramp at x.
func (s *SShape) Degree(x float64) float64 {
	return shape.SAt(x, s.foot, s.ceiling)
}

// Fuzzify evaluates the set over domain, preserving order.
func (s *SShape) Fuzzify(domain []float64) []Membership {
	return fuzzify(s.title, domain, s.Degree)
}

// Support returns [foot, +Inf].
func (s *SShape) Support() (Interval, error) {
	return Interval{Lo: s.foot, Hi: math.Inf(1)}, nil
}

// Nucleus returns [ceiling, +Inf].
func (s *SShape) Nucleus() (Interval, error) {
	return Interval{Lo: s.ceiling, Hi: math.Inf(1)}, nil
}

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (s *SShape) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (s *SShape) String() string { return describe(s.Kind(), s.title, s.Params()...) }

// ZShape falls from 1 at foot to 0 at ceiling; it is the mirror 1 − S.
// Unlike S, foot here names the end where the degree is 1.
type ZShape struct {
	named
	foot, ceiling float64
}

// NewZShape validates finite parameters, foot < ceiling and a finite
// ceiling − foot.
// Errors: ErrInvalidParameters.
func NewZShape(title string, foot, ceiling float64) (*ZShape, error) {
	if err := firstErr(
		validateFinite(methodZShape, foot, ceiling),
		validateLess(methodZShape, "foot", "ceiling", foot, ceiling),
		validateSpan(methodZShape, "foot", "ceiling", foot, ceiling),
	); err != nil {
		return nil, err
	}

	return &ZShape{named: named{title: title}, foot: foot, ceiling: ceiling}, nil
}

// Kind reports KindZShape.
func (z *ZShape) Kind() Kind { return KindZShape }

// Params returns (foot, ceiling).
func (z *ZShape) Params() []float64 { return []float64{z.foot, z.ceiling} }

// Degree evaluates the Z ramp at x.
func (z *ZShape) Degree(x float64) float64 {
	return shape.ZAt(x, z.foot, z.ceiling)
}

// Fuzzify evaluates the set over domain, preserving order.
func (z *ZShape) Fuzzify(domain []float64) []Membership {
	return fuzzify(z.title, domain, z.Degree)
}

// Support returns [−Inf, ceiling].
func (z *ZShape) Support() (Interval, error) {
	return Interval{Lo: math.Inf(-1), Hi: z.ceiling}, nil
}

// Nucleus returns [−Inf, foot].
func (z *ZShape) Nucleus() (Interval, error) {
	return Interval{Lo: math.Inf(-1), Hi: z.foot}, nil
}

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (z *ZShape) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (z *ZShape) String() string { return describe(z.Kind(), z.title, z.Params()...) }

// PiShape is an S ramp (leftFoot→leftCeiling), a plateau
// [leftCeiling, rightCeiling] and a Z ramp (rightCeiling→rightFoot).
type PiShape struct {
	named
	leftFoot, leftCeiling, rightFoot, rightCeiling float64
}

// NewPiShape validates finite parameters,
// leftFoot < leftCeiling ≤ rightCeiling < rightFoot and finite ramp widths.
// Errors: ErrInvalidParameters.
func NewPiShape(title string, leftFoot, leftCeiling, rightFoot, rightCeiling float64) (*PiShape, error) {
	if err := firstErr(
		validateFinite(methodPiShape, leftFoot, leftCeiling, rightFoot, rightCeiling),
		validateLess(methodPiShape, "leftFoot", "leftCeiling", leftFoot, leftCeiling),
		validateNonDecreasing(methodPiShape, leftCeiling, rightCeiling),
		validateLess(methodPiShape, "rightCeiling", "rightFoot", rightCeiling, rightFoot),
		validateSpan(methodPiShape, "leftFoot", "leftCeiling", leftFoot, leftCeiling),
		validateSpan(methodPiShape, "rightCeiling", "rightFoot", rightCeiling, rightFoot),
	); err != nil {
		return nil, err
	}

	return &PiShape{
		named:        named{title: title},
		leftFoot:     leftFoot,
		leftCeiling:  leftCeiling,
		rightFoot:    rightFoot,
		rightCeiling: rightCeiling,
	}, nil
}

// Kind reports KindPiShape.
func (p *PiShape) Kind() Kind { return KindPiShape }

// Params returns (leftFoot, leftCeiling, rightFoot, rightCeiling).
func (p *PiShape) Params() []float64 {
	return []float64{p.leftFoot, p.leftCeiling, p.rightFoot, p.rightCeiling}
}

// Degree evaluates the Pi curve at x.
func (p *PiShape) Degree(x float64) float64 {
	return shape.PiAt(x, p.leftFoot, p.leftCeiling, p.rightFoot, p.rightCeiling)
}

// Fuzzify evaluates the set over domain, preserving order.
func (p *PiShape) Fuzzify(domain []float64) []Membership {
	return fuzzify(p.title, domain, p.Degree)
}

// Support returns [leftFoot, rightFoot].
func (p *PiShape) Support() (Interval, error) {
	return Interval{Lo: p.leftFoot, Hi: p.rightFoot}, nil
}

// Nucleus returns the plateau [leftCeiling, rightCeiling].
func (p *PiShape) Nucleus() (Interval, error) {
	return Interval{Lo: p.leftCeiling, Hi: p.rightCeiling}, nil
}

// AlphaCut is not supported: ErrAlphaCutUnsupported.
func (p *PiShape) AlphaCut(alpha float64) (Interval, error) {
	return unsupportedCut(alpha)
}

// String describes the set as kind, title and parameters.
func (p *PiShape) String() string { return describe(p.Kind(), p.title, p.Params()...) }
