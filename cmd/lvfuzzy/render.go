// SPDX-License-Identifier: MIT
// Package: lvfuzzy/cmd/lvfuzzy
//
// render.go — lipgloss tables and number formatting.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// printColumns writes one row per domain point: x, then each column's degree.
// Column headers come from the first record's title.
func (a *app) printColumns(domain []float64, cols ...[]fuzzy.Membership) error {
	digits := a.v.GetInt(keyDigits)

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "x")
	for _, col := range cols {
		title := ""
		if len(col) > 0 {
			title = col[0].Title
		}
		headers = append(headers, title)
	}

	rows := make([][]string, len(domain))
	for i, x := range domain {
		row := make([]string, 0, len(cols)+1)
		row = append(row, formatNumber(x, -1))
		for _, col := range cols {
			row = append(row, formatNumber(col[i].Degree, digits))
		}
		rows[i] = row
	}

	_, err := fmt.Fprintln(a.out, renderTable(headers, rows))

	return err
}

// renderTable lays out headers and rows with a rounded lipgloss border.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// formatNumber prints v with at most digits decimals and no trailing zeros.
// digits < 0 uses the shortest exact representation.
func formatNumber(v float64, digits int) string {
	if digits < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}

	return s
}
