// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// fuzzify.go — pieces shared by every Set implementation.

package fuzzy

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvfuzzy/shape"
)

// maxTighten bounds the doubling steps taken when snapping an alpha-cut
// endpoint onto the side where the degree is ≥ alpha.
const maxTighten = 64

// epsilon is the float64 machine epsilon (2^-52).
const epsilon = 0x1p-52

// named carries the explicit title of a set.
type named struct {
	title string
}

// Title returns the set title.
func (n named) Title() string {
	return n.title
}

// fuzzify evaluates degree over domain and tags each record with title.
// NaN degrees are normalised to 0. Output order equals domain order and
// an empty domain yields an empty, non-nil slice.
// Complexity: O(n) time, O(n) memory.
func fuzzify(title string, domain []float64, degree func(float64) float64) []Membership {
	out := make([]Membership, len(domain))
	for i, x := range domain {
		out[i] = Membership{
			Title:  title,
			Value:  x,
			Degree: shape.Sanitize(degree(x)),
		}
	}

	return out
}

// tighten moves x toward target until degree(x) ≥ alpha. It absorbs the
// rounding of inverted ramp equations so that cut endpoints evaluate back
// to at least alpha. The step starts at machine-epsilon scale of the gap
// and doubles, so the shift is at most twice the one needed; target
// itself (a nucleus bound, degree 1) is the fallback.
func tighten(x, target, alpha float64, degree func(float64) float64) float64 {
	if degree(x) >= alpha || x == target {
		return x
	}

	gap := target - x
	step := gap * epsilon
	for i := 0; i < maxTighten; i++ {
		next := x + step
		if math.Abs(step) >= math.Abs(gap) {
			return target
		}
		if degree(next) >= alpha {
			return next
		}
		step *= 2
	}

	return target
}

// describe renders `kind "title" (p1, p2, ...)`.
func describe(k Kind, title string, params ...float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%v", p)
	}

	return fmt.Sprintf("%s %q (%s)", k, title, strings.Join(parts, ", "))
}

// Degrees extracts the Degree column of records, preserving order.
func Degrees(records []Membership) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Degree
	}

	return out
}

// Describe renders a one-line description of s: kind, title, parameters.
func Describe(s Set) string {
	if s == nil {
		return "<nil>"
	}

	return describe(s.Kind(), s.Title(), s.Params()...)
}
