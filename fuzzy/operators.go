// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// operators.go — binary combiners for the set algebra.
//
// An Operator is a t-norm (intersection-like) or t-conorm (union-like)
// applied pairwise as a left fold. The standard pair is max/min; the
// algebraic and bounded (Łukasiewicz) pairs are provided alongside.
//
//	t-conorm S(a,0) = a        t-norm T(a,1) = a
//	MaxUnion          max(a,b)       MinIntersection    min(a,b)
//	AlgebraicSum      a+b−a·b        AlgebraicProduct   a·b
//	BoundedSum        min(1,a+b)     BoundedDifference  max(0,a+b−1)

package fuzzy

import (
	"math"
)

// Operator combines two membership degrees into one.
//   - Name    — human-readable identifier ("max", "min", ...).
//   - Symbol  — joins titles of merged records ("a ∪ b").
//   - Combine — the binary function; must be non-nil.
type Operator struct {
	Name    string
	Symbol  string
	Combine func(a, b float64) float64
}

var (
	// MaxUnion is the standard fuzzy union: max(a, b).
	MaxUnion = Operator{Name: "max", Symbol: "∪", Combine: math.Max}

	// MinIntersection is the standard fuzzy intersection: min(a, b).
	// Merged titles of the standard pair both join with "∪".
	MinIntersection = Operator{Name: "min", Symbol: "∪", Combine: math.Min}

	// AlgebraicSum is the probabilistic t-conorm: a + b − a·b.
	AlgebraicSum = Operator{Name: "algebraic-sum", Symbol: "∔", Combine: func(a, b float64) float64 {
		return a + b - a*b
	}}

	// AlgebraicProduct is the product t-norm: a·b.
	AlgebraicProduct = Operator{Name: "algebraic-product", Symbol: "·", Combine: func(a, b float64) float64 {
		return a * b
	}}

	// BoundedSum is the Łukasiewicz t-conorm: min(1, a + b).
	BoundedSum = Operator{Name: "bounded-sum", Symbol: "⊕", Combine: func(a, b float64) float64 {
		return math.Min(1, a+b)
	}}

	// BoundedDifference is the Łukasiewicz t-norm: max(0, a + b − 1).
	BoundedDifference = Operator{Name: "bounded-difference", Symbol: "⊙", Combine: func(a, b float64) float64 {
		return math.Max(0, a+b-1)
	}}
)

// Operators lists the predefined operators, unions first.
func Operators() []Operator {
	return []Operator{MaxUnion, AlgebraicSum, BoundedSum, MinIntersection, AlgebraicProduct, BoundedDifference}
}

// LookupOperator finds a predefined operator by Name.
func LookupOperator(name string) (Operator, bool) {
	for _, op := range Operators() {
		if op.Name == name {
			return op, true
		}
	}

	return Operator{}, false
}
