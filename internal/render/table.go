package render

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// writeTable replaces a table node with a fixed-width text grid framed by a
// line break on each side. Headers come from the explicit header row when
// present, otherwise from the first data row; rows with no cells are
// dropped. A table with neither headers nor rows contributes nothing.
func writeTable(b *strings.Builder, table *extast.Table, source []byte) {
	var headers []string
	var rows [][]string
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *extast.TableHeader:
			headers = rowCells(t, source)
		case *extast.TableRow:
			if cells := rowCells(t, source); len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
	}
	if len(headers) == 0 && len(rows) > 0 {
		headers = rows[0]
		rows = rows[1:]
	}
	g := grid(headers, rows)
	if g == "" {
		return
	}
	b.WriteByte('\n')
	b.WriteString(g)
	b.WriteByte('\n')
}

func rowCells(row ast.Node, source []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*extast.TableCell); !ok {
			continue
		}
		cells = append(cells, strings.TrimSpace(inlineText(c, source)))
	}
	return cells
}

// grid renders a GitHub-style table: left-aligned cells padded to the widest
// content per column (in runes), one space padding per side, '|' separators
// and a dash divider between header and body.
func grid(headers []string, rows [][]string) string {
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return ""
	}

	widths := make([]int, ncols)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := len([]rune(c)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, r := range rows {
		measure(r)
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteByte('|')
		for i := 0; i < ncols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteByte(' ')
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(cell))))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}

	writeRow(headers)
	b.WriteByte('|')
	for i := 0; i < ncols; i++ {
		b.WriteString(strings.Repeat("-", widths[i]+2))
		b.WriteByte('|')
	}
	b.WriteByte('\n')
	for _, r := range rows {
		writeRow(r)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
