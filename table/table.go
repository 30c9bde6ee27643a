// Package table renders the benchmark comparison tables. It is purely
// presentational: rows are preformatted strings, the package only measures
// and pads.
package table

import (
	"fmt"
	"strings"
)

// Alignment controls per-column padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Generate lays out a pipe-delimited ASCII table. headers may hold several
// stacked header rows (the comparison table uses two: task name, then
// benchmark name plus metric names); a dash separator follows the last
// header row. Missing cells are treated as empty, missing alignments as
// left.
func Generate(headers [][]string, data [][]string, alignments []Alignment) string {
	columns := 0
	for _, row := range headers {
		if len(row) > columns {
			columns = len(row)
		}
	}
	for _, row := range data {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return ""
	}

	widths := make([]int, columns)
	measure := func(rows [][]string) {
		for _, row := range rows {
			for i, cell := range row {
				if len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}
	measure(headers)
	measure(data)

	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for i := 0; i < columns; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			align := AlignLeft
			if i < len(alignments) {
				align = alignments[i]
			}
			if align == AlignRight {
				fmt.Fprintf(&b, " %*s |", widths[i], cell)
			} else {
				fmt.Fprintf(&b, " %-*s |", widths[i], cell)
			}
		}
		b.WriteString("\n")
	}

	for _, row := range headers {
		writeRow(row)
	}
	b.WriteString("|")
	for i := 0; i < columns; i++ {
		b.WriteString(" " + strings.Repeat("-", widths[i]) + " |")
	}
	b.WriteString("\n")
	for _, row := range data {
		writeRow(row)
	}
	return b.String()
}
