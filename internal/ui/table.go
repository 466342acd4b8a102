package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	columnGap    = 2
	clipWidth    = 50
	clipEllipsis = "..."
)

// Table accumulates rows under a fixed column set and renders them as an
// aligned plain-text listing. Cell widths are measured with lipgloss, so
// styled cells (phase labels from PhaseLabel) line up with plain ones.
type Table struct {
	columns []string
	rows    [][]string
}

// NewTable returns an empty table with the given column headings.
func NewTable(columns ...string) *Table {
	return &Table{columns: columns}
}

// Row appends one row. Missing cells render empty; extra cells are
// dropped. Line breaks and tabs inside a cell are folded to spaces so a
// multi-line note cannot break row alignment.
func (t *Table) Row(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = flattenCell(cells[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the listing with each column padded to its widest cell,
// with a two-space gutter between columns. The last column is not padded.
func (t *Table) Render() string {
	widths := make([]int, len(t.columns))
	for i, column := range t.columns {
		widths[i] = lipgloss.Width(column)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out strings.Builder
	line := func(cells []string) {
		for i, cell := range cells {
			out.WriteString(cell)
			if i < len(cells)-1 {
				out.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
			}
		}
		out.WriteByte('\n')
	}

	line(t.columns)
	for _, row := range t.rows {
		line(row)
	}
	return out.String()
}

// Clip shortens free-form text (task names, notes) to the listing's
// maximum cell width, marking the cut with an ellipsis. Input is assumed
// unstyled; the only styled cells are phase labels, which are short and
// never clipped.
func Clip(value string) string {
	value = flattenCell(value)
	runes := []rune(value)
	if len(runes) <= clipWidth {
		return value
	}
	return string(runes[:clipWidth-len(clipEllipsis)]) + clipEllipsis
}

func flattenCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
