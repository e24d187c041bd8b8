package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	tablePadding   = 2
	heavySeparator = "="
	lightSeparator = "-"
)

// Cell is a table cell. Style is applied after padding is computed, so
// styled and plain tables line up the same.
type Cell struct {
	Text  string
	Style *lipgloss.Style
}

// Table is a plain column table with a heavy rule under the header.
type Table struct {
	styles  *Styles
	headers []string
	rows    [][]Cell
}

// NewTable creates a table with the given column headers.
func (s *Styles) NewTable(headers ...string) *Table {
	return &Table{styles: s, headers: headers}
}

// AddRow appends a row of unstyled cells.
func (t *Table) AddRow(cells ...string) {
	row := make([]Cell, len(cells))
	for i, text := range cells {
		row[i] = Cell{Text: text}
	}
	t.rows = append(t.rows, row)
}

// AddCells appends a row of cells.
func (t *Table) AddCells(cells ...Cell) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table. The last column is never padded.
func (t *Table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell.Text))
			}
		}
	}

	var b strings.Builder
	header := make([]Cell, len(t.headers))
	for i, h := range t.headers {
		header[i] = Cell{Text: h, Style: &t.styles.TableHeader}
	}
	t.writeRow(&b, header, widths)
	t.writeSeparator(&b, widths, heavySeparator)
	for _, row := range t.rows {
		t.writeRow(&b, row, widths)
	}
	if len(t.rows) > 0 {
		t.writeSeparator(&b, widths, lightSeparator)
	}
	return b.String()
}

func (t *Table) writeRow(b *strings.Builder, row []Cell, widths []int) {
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		text := cell.Text
		if i < len(widths)-1 {
			text += strings.Repeat(" ", widths[i]-lipgloss.Width(cell.Text)+tablePadding)
		}
		if cell.Style != nil {
			// Style the content only; padding stays plain.
			styled := cell.Style.Render(cell.Text)
			text = styled + text[len(cell.Text):]
		}
		b.WriteString(text)
	}
	b.WriteString("\n")
}

func (t *Table) writeSeparator(b *strings.Builder, widths []int, char string) {
	total := 0
	for _, w := range widths {
		total += w
	}
	total += tablePadding * max(len(widths)-1, 0)
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(char, total)))
	b.WriteString("\n")
}
