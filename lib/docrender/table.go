// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docrender

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

const (
	columnGap      = "  "
	minColumnWidth = 3
)

// grid is a table of already-styled cells laid out in padded columns.
type grid struct {
	header     []string
	rows       [][]string
	alignments []extast.Alignment
}

func (g *grid) columns() int {
	count := len(g.header)
	for _, row := range g.rows {
		count = max(count, len(row))
	}
	return count
}

// widths returns the column widths for content, shrunk proportionally
// when the table is wider than available.
func (g *grid) widths(available int) []int {
	widths := make([]int, g.columns())
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	measure(g.header)
	for _, row := range g.rows {
		measure(row)
	}

	total := len(columnGap) * (len(widths) - 1)
	for _, width := range widths {
		total += width
	}
	if total <= available {
		return widths
	}

	usable := max(available-len(columnGap)*(len(widths)-1), len(widths)*minColumnWidth)
	for i := range widths {
		widths[i] = max(widths[i]*usable/total, minColumnWidth)
	}
	return widths
}

// lines renders the grid: the header in headerStyle, a rule in
// ruleStyle, then the rows.
func (g *grid) lines(available int, headerStyle, ruleStyle lipgloss.Style) []string {
	if g.columns() == 0 {
		return nil
	}
	widths := g.widths(available)

	var lines []string
	if len(g.header) > 0 {
		lines = append(lines, headerStyle.Render(g.row(g.header, widths)))
		rules := make([]string, len(widths))
		for i, width := range widths {
			rules[i] = strings.Repeat("─", width)
		}
		lines = append(lines, ruleStyle.Render(strings.Join(rules, columnGap)))
	}
	for _, row := range g.rows {
		lines = append(lines, g.row(row, widths))
	}
	return lines
}

func (g *grid) row(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if lipgloss.Width(cell) > width {
			cell = ansi.Truncate(cell, width, "…")
		}
		padding := max(width-lipgloss.Width(cell), 0)

		alignment := extast.AlignNone
		if i < len(g.alignments) {
			alignment = g.alignments[i]
		}
		switch alignment {
		case extast.AlignRight:
			cell = strings.Repeat(" ", padding) + cell
		case extast.AlignCenter:
			cell = strings.Repeat(" ", padding/2) + cell + strings.Repeat(" ", padding-padding/2)
		default:
			cell += strings.Repeat(" ", padding)
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ")
}

// table renders a GFM table node.
func (writer *markdownWriter) table(node *extast.Table) {
	g := &grid{alignments: node.Alignments}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case extast.KindTableHeader:
			g.header = writer.cells(child)
		case extast.KindTableRow:
			g.rows = append(g.rows, writer.cells(child))
		}
	}

	lines := g.lines(writer.width(),
		writer.renderer.style().Bold(true),
		writer.renderer.style().Foreground(writer.renderer.theme.Border))
	if len(lines) == 0 {
		return
	}
	writer.endBlock()
	writer.writeLines(strings.Join(lines, "\n"))
	writer.endBlock()
}

func (writer *markdownWriter) cells(row ast.Node) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.Kind() == extast.KindTableCell {
			cells = append(cells, writer.inlineOf(cell))
		}
	}
	return cells
}
