// Package domain builds the numeric domains that fuzzy sets are evaluated
// over: evenly spaced grids (Linspace), stepped ranges (Arange) and
// explicit point lists (Points).
//
// The package offers the following key components:
//
//   - Builders:
//     – Linspace(start, stop, n, opts...):  n evenly spaced points.
//     – Arange(start, stop, step, opts...): half-open stepping toward stop.
//     – Points(values...):                  a defensive copy.
//   - Configuration primitives:
//     – Option:          a function that mutates config before use.
//     – WithEndpoint:    include (default) or exclude stop in Linspace.
//     – WithPrecision:   round every generated point to N decimals.
//     – WithMaxPoints:   cap the length of a generated domain.
//
// Guarantees:
//
//   - Determinism: the same arguments always give the same slice.
//   - Length-exact: Linspace returns exactly n points; Arange returns
//     ⌈(stop−start)/step⌉ points.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; builders themselves only return errors.
//   - Structured errors (ErrBadSize, ErrBadStep, ErrNonFinite) with a
//     "<Builder>: " context prefix.
package domain
