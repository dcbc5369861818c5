// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// algebra.go — union, intersection, complement and generic merges.
//
// Alignment contract:
//   • Every set is fuzzified over the SAME domain slice, in the SAME order.
//   • Merges are positional: record i of each set is combined with record
//     i of the others. Value fields are carried from the first set and are
//     never used for alignment.
//   • The fold is left-to-right, seeded by the first set's records.

package fuzzy

import (
	"strings"

	"github.com/katalvlaran/lvfuzzy/shape"
)

// complementPrefix is prepended to the title of complemented records.
const complementPrefix = "complement "

// Union fuzzifies domain under every set and merges with max.
// Titles are joined with " ∪ ". One set yields its own fuzzification.
// Errors: ErrNoSets, ErrNilSet.
// Complexity: O(k·n) for k sets over n points.
func Union(domain []float64, sets ...Set) ([]Membership, error) {
	return Merge(domain, MaxUnion, sets...)
}

// Intersect fuzzifies domain under every set and merges with min.
// Titles are joined with " ∪ ", like Union. One set yields its own fuzzification.
// Errors: ErrNoSets, ErrNilSet.
// Complexity: O(k·n).
func Intersect(domain []float64, sets ...Set) ([]Membership, error) {
	return Merge(domain, MinIntersection, sets...)
}

// Complement fuzzifies domain under set and maps each degree d to 1 − d,
// prefixing the title with "complement ".
// Errors: ErrNilSet.
// Complexity: O(n).
func Complement(domain []float64, set Set) ([]Membership, error) {
	if set == nil {
		return nil, fuzzyErrorf(methodComplement, ErrNilSet)
	}

	return ComplementRecords(set.Fuzzify(domain)), nil
}

// ComplementRecords returns a new slice with every degree d mapped to
// 1 − d and every title prefixed with "complement ". Applying it twice
// restores the original degrees.
func ComplementRecords(records []Membership) []Membership {
	out := make([]Membership, len(records))
	for i, r := range records {
		out[i] = Membership{
			Title:  complementPrefix + r.Title,
			Value:  r.Value,
			Degree: shape.Sanitize(1 - r.Degree),
		}
	}

	return out
}

// Merge fuzzifies domain under every set and folds the rows with op.
// Errors: ErrNilOperator, ErrNoSets, ErrNilSet.
func Merge(domain []float64, op Operator, sets ...Set) ([]Membership, error) {
	if op.Combine == nil {
		return nil, fuzzyErrorf(methodMerge, ErrNilOperator)
	}
	if len(sets) == 0 {
		return nil, fuzzyErrorf(methodMerge, ErrNoSets)
	}

	rows := make([][]Membership, len(sets))
	for i, s := range sets {
		if s == nil {
			return nil, fuzzyErrorf(methodMerge, ErrNilSet)
		}
		rows[i] = s.Fuzzify(domain)
	}

	return MergeRecords(op, rows...)
}

// MergeRecords folds already-fuzzified rows positionally with op.
// The first row seeds the fold and is not modified; the result is a new
// slice. Titles become "t1 <sym> t2 <sym> ...".
// Errors: ErrNilOperator, ErrNoSets, ErrLengthMismatch.
// Complexity: O(k·n).
func MergeRecords(op Operator, rows ...[]Membership) ([]Membership, error) {
	if op.Combine == nil {
		return nil, fuzzyErrorf(methodMerge, ErrNilOperator)
	}
	if len(rows) == 0 {
		return nil, fuzzyErrorf(methodMerge, ErrNoSets)
	}

	n := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != n {
			return nil, fuzzyErrorf(methodMerge, ErrLengthMismatch)
		}
	}

	out := make([]Membership, n)
	copy(out, rows[0])
	sep := " " + op.Symbol + " "

	for _, row := range rows[1:] {
		for i := range out {
			out[i].Title = joinTitle(out[i].Title, sep, row[i].Title)
			out[i].Degree = shape.Sanitize(op.Combine(out[i].Degree, row[i].Degree))
		}
	}

	return out, nil
}

// joinTitle concatenates two titles with sep.
func joinTitle(left, sep, right string) string {
	var b strings.Builder
	b.Grow(len(left) + len(sep) + len(right))
	b.WriteString(left)
	b.WriteString(sep)
	b.WriteString(right)

	return b.String()
}
