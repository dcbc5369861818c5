// Package config reads YAML definitions of a domain plus a list of fuzzy
// sets and maps them onto domain builders and fuzzy.Set constructors.
//
// Document format:
//
//	domain:
//	  start: 0          # Linspace when n is set, Arange when step is set
//	  stop: 100
//	  n: 11
//	  # points: [10, 20, 30]   explicit alternative to start/stop
//	sets:
//	  - {title: young, kind: trapezoidal, params: [0, 0, 10, 15]}
//	  - {title: adult, kind: gaussian,    params: [40, 12]}
//
// Parse and Load decode with unknown-field checking, then MapDocument
// validates every field. Errors are *DocumentError values naming the
// offending field path (sets[1].params) and wrap ErrInvalidDocument, plus
// ErrUnknownKind or the constructor's fuzzy error when one applies.
package config
