// SPDX-License-Identifier: MIT
// Package: lvfuzzy/domain
//
// sequences.go — Linspace, Arange and Points.
//
// Contract:
//   • Points are computed as start + i·step (no accumulated error), so
//     every point is independent of its predecessors.
//   • Linspace with the endpoint pins the last point to stop exactly.
//   • O(n) time and memory.

package domain

import (
	"math"
)

// Linspace returns n evenly spaced points from start to stop.
// With WithEndpoint(false) the grid has step (stop−start)/n and omits stop.
// n == 1 yields [start].
// Errors: ErrNonFinite, ErrBadSize.
func Linspace(start, stop float64, n int, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts...)
	if err := checkBounds(methodLinspace, start, stop); err != nil {
		return nil, err
	}
	if n < 1 || n > cfg.maxPoints {
		return nil, domainErrorf(methodLinspace, ErrBadSize, "n=%d outside [1,%d]", n, cfg.maxPoints)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = cfg.round(start)

		return out, nil
	}

	div := float64(n)
	if cfg.endpoint {
		div = float64(n - 1)
	}
	step := (stop - start) / div
	for i := range out {
		out[i] = cfg.round(start + float64(i)*step)
	}
	if cfg.endpoint {
		out[n-1] = cfg.round(stop)
	}

	return out, nil
}

// Arange returns start, start+step, ... up to but excluding stop.
// step must be non-zero, finite and point from start toward stop;
// start == stop yields an empty, non-nil slice.
// Errors: ErrNonFinite, ErrBadStep, ErrBadSize.
func Arange(start, stop, step float64, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts...)
	if err := checkBounds(methodArange, start, stop); err != nil {
		return nil, err
	}
	if math.IsNaN(step) || math.IsInf(step, 0) || step == 0 {
		return nil, domainErrorf(methodArange, ErrBadStep, "step=%v", step)
	}
	span := stop - start
	if span == 0 {
		return []float64{}, nil
	}
	if (span > 0) != (step > 0) {
		return nil, domainErrorf(methodArange, ErrBadStep, "step=%v does not move from %v toward %v", step, start, stop)
	}

	count := math.Ceil(span / step)
	if count > float64(cfg.maxPoints) {
		return nil, domainErrorf(methodArange, ErrBadSize, "%v points exceed %d", count, cfg.maxPoints)
	}

	n := int(count)
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x := start + float64(i)*step
		// Guard the last point against rounding past stop.
		if (step > 0 && x >= stop) || (step < 0 && x <= stop) {
			break
		}
		out = append(out, cfg.round(x))
	}

	return out, nil
}

// Points returns a copy of values, so later changes by the caller do not
// leak into evaluated domains. Never nil.
func Points(values ...float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	return out
}

// checkBounds rejects NaN and ±Inf bounds.
func checkBounds(method string, start, stop float64) error {
	for _, v := range [...]float64{start, stop} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domainErrorf(method, ErrNonFinite, "bound %v", v)
		}
	}

	return nil
}
