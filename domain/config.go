// SPDX-License-Identifier: MIT
// Package: lvfuzzy/domain
//
// config.go — resolved builder configuration and its defaults.
//
// Deterministic defaults:
//   • endpoint  = true          (Linspace includes stop)
//   • precision = noPrecision   (points are not rounded)
//   • maxPoints = DefaultMaxPoints

package domain

import "math"

const (
	// DefaultMaxPoints bounds a single generated domain (16M points).
	DefaultMaxPoints = 1 << 24

	// MaxPrecision is the largest digit count WithPrecision accepts; float64
	// carries about 15 significant decimal digits.
	MaxPrecision = 15

	noPrecision = -1
)

// config aggregates all knobs used by the builders. Passed by value.
type config struct {
	endpoint  bool
	precision int
	maxPoints int
}

// newConfig starts from the defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		endpoint:  true,
		precision: noPrecision,
		maxPoints: DefaultMaxPoints,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// round applies the configured precision to v.
func (c config) round(v float64) float64 {
	if c.precision == noPrecision {
		return v
	}
	scale := math.Pow(10, float64(c.precision))

	return math.Round(v*scale) / scale
}
