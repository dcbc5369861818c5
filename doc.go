// Package lvfuzzy is a small toolkit for fuzzy sets over numeric domains:
// membership functions, set queries and set algebra, plus the plumbing to
// declare sets in YAML and inspect them from the command line.
//
// What is inside?
//
//	A pure-Go, dependency-light library that brings together:
//		• Membership shapes: triangular, trapezoidal, gaussian,
//		  combined gaussian, generalized bell, sigmoid, S, Z and Pi
//		• Set queries: fuzzification, support, nucleus and alpha-cuts
//		• Set algebra: union (max), intersection (min), complement (1−μ)
//		  and the algebraic / bounded t-norms and t-conorms
//		• Domain builders: Linspace, Arange, Points
//
// Everything is organized under these packages:
//
//	shape/       — raw membership formulas, pure functions over []float64
//	fuzzy/       — the Set interface, one constructor per shape, algebra
//	domain/      — deterministic numeric domains with functional options
//	config/      — YAML definitions mapped to a domain and []fuzzy.Set
//	cmd/lvfuzzy/ — CLI: eval, union, intersect, merge, complement, cut
//
// Quick example:
//
//	young, _ := fuzzy.NewTrapezoidal("young", 0, 0, 10, 15)
//	youngPlus, _ := fuzzy.NewTrapezoidal("young+", 10, 15, 25, 30)
//	recs, _ := fuzzy.Union([]float64{10, 20, 30}, young, youngPlus)
//	// recs: "young ∪ young+" with degrees 1, 1, 0
//
// Guarantees:
//
//   - Every degree is in [0,1]; degenerate arithmetic never yields NaN.
//   - Output order always equals domain order; an empty domain gives an
//     empty result.
//   - Sets are immutable after construction and safe for concurrent use.
//
//	go get github.com/katalvlaran/lvfuzzy
package lvfuzzy
