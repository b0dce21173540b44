package markdown

import (
	"strings"

	"github.com/kk-code-lab/peek/internal/document"
	textutil "github.com/kk-code-lab/peek/internal/textutil"
)

const columnSeparator = "  "

// tableAccumulator collects plain cell text until the table closes.
type tableAccumulator struct {
	rows [][]string
	row  []string
	cell strings.Builder
}

func (t *tableAccumulator) reset() {
	t.rows = nil
	t.row = nil
	t.cell.Reset()
}

// computeColumnWidths returns the widest display width seen in every column.
// Rows shorter than the widest row contribute nothing to missing columns.
func computeColumnWidths(rows [][]string) []int {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if w := textutil.DisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func (b *Builder) renderTable() {
	rows := b.table.rows
	if len(rows) == 0 {
		return
	}
	widths := computeColumnWidths(rows)
	if len(widths) == 0 {
		b.table.reset()
		return
	}

	for r, row := range rows {
		style := document.Plain
		if r == 0 {
			style = document.Bold | document.Heading
		}
		line := document.Line{Indent: b.indent}
		for c, width := range widths {
			if c > 0 {
				line.Fragments = append(line.Fragments, document.Fragment{Text: columnSeparator})
			}
			line.Fragments = append(line.Fragments, document.Fragment{
				Text:  textutil.PadToWidth(cellAt(row, c), width),
				Style: style,
			})
		}
		b.doc.Append(line)

		if r == 0 {
			b.doc.Append(separatorLine(widths, b.indent))
		}
	}

	b.blank()
	b.table.reset()
}

func separatorLine(widths []int, indent int) document.Line {
	line := document.Line{Indent: indent}
	for c, width := range widths {
		if c > 0 {
			line.Fragments = append(line.Fragments, document.Fragment{Text: columnSeparator})
		}
		line.Fragments = append(line.Fragments, document.Fragment{
			Text:  strings.Repeat("─", width),
			Style: document.Dim,
		})
	}
	return line
}
