// SPDX-License-Identifier: MIT
// Package: lvfuzzy/domain
//
// options.go — functional options for the domain builders.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Later options override earlier ones.

package domain

import "fmt"

// Option customizes a builder call by mutating a config before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithEndpoint controls whether Linspace includes stop as its last point.
// Arange ignores it: the range is always half-open.
func WithEndpoint(include bool) Option {
	return func(c *config) {
		c.endpoint = include
	}
}

// WithPrecision rounds every generated point to digits decimal places.
// Panics if digits is outside [0, MaxPrecision].
func WithPrecision(digits int) Option {
	if digits < 0 || digits > MaxPrecision {
		panic(fmt.Sprintf("domain: WithPrecision(%d) outside [0,%d]", digits, MaxPrecision))
	}
	return func(c *config) {
		c.precision = digits
	}
}

// WithMaxPoints caps the number of points a builder may allocate.
// Panics if n < 1.
func WithMaxPoints(n int) Option {
	if n < 1 {
		panic("domain: WithMaxPoints(n<1)")
	}
	return func(c *config) {
		c.maxPoints = n
	}
}
