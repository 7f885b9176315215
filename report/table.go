package report

import (
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// TEXT TABLE — Aligned column rendering for the console report
// ============================================================================

// Align selects cell alignment within a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column defines one table column.
type Column struct {
	Label string
	Align Align
}

// Table is a renderable text table.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// AddRow appends a data row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	for len(cells) < len(t.Columns) {
		cells = append(cells, "")
	}
	t.Rows = append(t.Rows, cells)
}

// Render writes the table with a header line, a dash ruler, and every cell
// padded to its column width.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c.Label)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = pad(c.Label, widths[i], c.Align)
	}
	fmt.Fprintln(w, strings.Join(header, "  "))

	ruler := make([]string, len(t.Columns))
	for i, width := range widths {
		ruler[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(ruler, "  "))

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i], t.Columns[i].Align)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func pad(s string, width int, align Align) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if align == AlignRight {
		return fill + s
	}
	return s + fill
}
