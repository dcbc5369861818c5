// SPDX-License-Identifier: MIT
// Package: lvfuzzy/cmd/lvfuzzy
//
// commands.go — eval, union, intersect, merge, complement, cut, kinds.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfuzzy/config"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Print the degree of every set at every domain point",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}

			cols := make([][]fuzzy.Membership, len(doc.Sets))
			for i, s := range doc.Sets {
				cols[i] = s.Fuzzify(doc.Domain)
			}

			return a.printColumns(doc.Domain, cols...)
		},
	}
}

func (a *app) newUnionCmd() *cobra.Command {
	return a.newAlgebraCmd("union", "Print the max-union of all sets", fuzzy.MaxUnion)
}

func (a *app) newIntersectCmd() *cobra.Command {
	return a.newAlgebraCmd("intersect", "Print the min-intersection of all sets", fuzzy.MinIntersection)
}

// newAlgebraCmd folds every set in the document (or the --set subset) with op.
func (a *app) newAlgebraCmd(use, short string, op fuzzy.Operator) *cobra.Command {
	var titles []string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runMerge(op, titles)
		},
	}
	cmd.Flags().StringSliceVarP(&titles, "set", "s", nil, "restrict to these set titles, in order")

	return cmd
}

func (a *app) newMergeCmd() *cobra.Command {
	var (
		opName string
		titles []string
	)
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Fold sets with a named t-norm or t-conorm",
		Long:  "Fold sets with one of: " + strings.Join(operatorNames(), ", "),
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			op, ok := fuzzy.LookupOperator(opName)
			if !ok {
				return fmt.Errorf("unknown operator %q (want one of %s)", opName, strings.Join(operatorNames(), ", "))
			}

			return a.runMerge(op, titles)
		},
	}
	cmd.Flags().StringVar(&opName, "op", fuzzy.MaxUnion.Name, "operator name")
	cmd.Flags().StringSliceVarP(&titles, "set", "s", nil, "restrict to these set titles, in order")

	return cmd
}

func (a *app) runMerge(op fuzzy.Operator, titles []string) error {
	doc, err := a.loadDocument()
	if err != nil {
		return err
	}
	sets, err := pick(doc, titles)
	if err != nil {
		return err
	}
	a.logger.Debug("merging", "op", op.Name, "sets", len(sets))

	recs, err := fuzzy.Merge(doc.Domain, op, sets...)
	if err != nil {
		return err
	}

	return a.printColumns(doc.Domain, recs)
}

func (a *app) newComplementCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "complement",
		Short: "Print 1 - degree for one set",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			s, err := lookup(doc, title)
			if err != nil {
				return err
			}
			recs, err := fuzzy.Complement(doc.Domain, s)
			if err != nil {
				return err
			}

			return a.printColumns(doc.Domain, s.Fuzzify(doc.Domain), recs)
		},
	}
	cmd.Flags().StringVarP(&title, "set", "s", "", "set title")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func (a *app) newCutCmd() *cobra.Command {
	var (
		title string
		alpha float64
	)
	cmd := &cobra.Command{
		Use:   "cut",
		Short: "Print support, nucleus and alpha-cut of one set",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			s, err := lookup(doc, title)
			if err != nil {
				return err
			}

			rows, err := intervalRows(s, alpha)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, renderTable([]string{fuzzy.Describe(s), "interval"}, rows))

			return err
		},
	}
	cmd.Flags().StringVarP(&title, "set", "s", "", "set title")
	cmd.Flags().Float64VarP(&alpha, "alpha", "a", 0.5, "alpha level in [0,1]")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

// intervalRows queries the three intervals of s. Empty nuclei and
// unsupported cuts are shown as text; a bad alpha is returned.
func intervalRows(s fuzzy.Set, alpha float64) ([][]string, error) {
	sup, err := s.Support()
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"support", sup.String()}}

	nuc, err := s.Nucleus()
	switch {
	case errors.Is(err, fuzzy.ErrEmptyNucleus):
		rows = append(rows, []string{"nucleus", "empty"})
	case err != nil:
		return nil, err
	default:
		rows = append(rows, []string{"nucleus", nuc.String()})
	}

	label := fmt.Sprintf("%v-cut", alpha)
	cut, err := s.AlphaCut(alpha)
	switch {
	case errors.Is(err, fuzzy.ErrAlphaCutUnsupported):
		rows = append(rows, []string{label, "unsupported"})
	case err != nil:
		return nil, err
	default:
		rows = append(rows, []string{label, cut.String()})
	}

	return rows, nil
}

func (a *app) newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the set kinds and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(fuzzy.Kinds()))
			for _, k := range fuzzy.Kinds() {
				names, _ := config.ParamNames(k)
				rows = append(rows, []string{k.String(), strings.Join(names, ", ")})
			}
			_, err := fmt.Fprintln(a.out, renderTable([]string{"kind", "params"}, rows))

			return err
		},
	}
}

// lookup finds a set by title.
func lookup(doc config.Document, title string) (fuzzy.Set, error) {
	s, ok := doc.Set(title)
	if !ok {
		return nil, fmt.Errorf("no set titled %q", title)
	}

	return s, nil
}

// pick returns the named sets in order, or every set when titles is empty.
func pick(doc config.Document, titles []string) ([]fuzzy.Set, error) {
	if len(titles) == 0 {
		return doc.Sets, nil
	}
	out := make([]fuzzy.Set, 0, len(titles))
	for _, t := range titles {
		s, err := lookup(doc, t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func operatorNames() []string {
	ops := fuzzy.Operators()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}

	return names
}
