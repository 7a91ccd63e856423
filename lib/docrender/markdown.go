// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docrender

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// wrapBreakpoints are the characters ansi.Wrap may break after, in
// addition to spaces.
const wrapBreakpoints = " ,.;-+|"

var (
	parserOnce sync.Once
	parser     goldmark.Markdown
)

func markdownParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parser
}

// Markdown renders markdown source as styled terminal text. Soft line
// breaks become spaces so hard-wrapped prose reflows to the renderer
// width. Code blocks keep their layout.
func (renderer *Renderer) Markdown(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := markdownParser().Parser().Parse(text.NewReader(source))

	writer := &markdownWriter{renderer: renderer, source: source, newline: 2}
	ast.Walk(document, writer.visit)
	return strings.TrimRight(writer.out.String(), "\n")
}

// markdownWriter accumulates the rendering of one document. Inline
// content collects in a buffer and is wrapped as a unit when its block
// closes, which is why it walks the AST directly instead of plugging
// into goldmark's streaming renderer.
type markdownWriter struct {
	renderer *Renderer
	source   []byte

	out     strings.Builder
	inline  strings.Builder
	newline int // trailing newlines at the end of out

	// indents holds the prefix of each open blockquote or list item.
	indents []string
	// bullet, when set, replaces the indent of the next line.
	bullet string

	strong, emphasis, struck int
	lists                    []listFrame
}

type listFrame struct {
	ordered bool
	next    int
	tight   bool
}

func (writer *markdownWriter) indent() string {
	return strings.Join(writer.indents, "")
}

func (writer *markdownWriter) width() int {
	return max(writer.renderer.width-ansi.StringWidth(writer.indent()), minimumContentWidth)
}

func (writer *markdownWriter) tight() bool {
	return len(writer.lists) > 0 && writer.lists[len(writer.lists)-1].tight
}

func (writer *markdownWriter) write(s string) {
	if s == "" {
		return
	}
	writer.out.WriteString(s)
	trimmed := strings.TrimRight(s, "\n")
	trailing := len(s) - len(trimmed)
	if trimmed == "" {
		writer.newline += trailing
	} else {
		writer.newline = trailing
	}
}

// endLine ensures output ends with a newline; endBlock with a blank
// line.
func (writer *markdownWriter) endLine() {
	if writer.newline < 1 {
		writer.write("\n")
	}
}

func (writer *markdownWriter) endBlock() {
	for writer.newline < 2 {
		writer.write("\n")
	}
}

// firstPrefix returns the pending bullet for the first line of a list
// item, or the current indent.
func (writer *markdownWriter) firstPrefix() string {
	if writer.bullet != "" {
		bullet := writer.bullet
		writer.bullet = ""
		return bullet
	}
	return writer.indent()
}

// writeLines writes content line by line with block prefixes.
func (writer *markdownWriter) writeLines(content string) {
	indent := writer.indent()
	for i, line := range strings.Split(content, "\n") {
		if i == 0 {
			writer.write(writer.firstPrefix() + line)
		} else {
			writer.write("\n" + indent + line)
		}
	}
	writer.endLine()
}

func (writer *markdownWriter) flushParagraph() {
	content := writer.inline.String()
	writer.inline.Reset()
	if content == "" {
		return
	}
	writer.writeLines(ansi.Wrap(content, writer.width(), wrapBreakpoints))
	if !writer.tight() {
		writer.endBlock()
	}
}

func (writer *markdownWriter) textStyle() lipgloss.Style {
	style := writer.renderer.style().Foreground(writer.renderer.theme.Text)
	if writer.strong > 0 {
		style = style.Bold(true)
	}
	if writer.emphasis > 0 {
		style = style.Italic(true)
	}
	if writer.struck > 0 {
		style = style.Strikethrough(true)
	}
	return style
}

func (writer *markdownWriter) faint(s string) string {
	return renderLines(writer.renderer.style().Foreground(writer.renderer.theme.Faint), s)
}

// renderLines styles each line separately. lipgloss pads multi-line
// blocks to a common width, which code must not get.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// inlineOf renders the inline children of node into a string without
// disturbing the enclosing paragraph.
func (writer *markdownWriter) inlineOf(node ast.Node) string {
	saved := writer.inline.String()
	strong, emphasis, struck := writer.strong, writer.emphasis, writer.struck

	writer.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, writer.visit)
	}
	result := writer.inline.String()

	writer.inline.Reset()
	writer.inline.WriteString(saved)
	writer.strong, writer.emphasis, writer.struck = strong, emphasis, struck
	return result
}

func (writer *markdownWriter) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			writer.inline.Reset()
		} else {
			writer.flushParagraph()
		}

	case *ast.Heading:
		if entering {
			writer.inline.Reset()
		} else {
			writer.heading(node)
		}

	case *ast.FencedCodeBlock:
		if entering {
			language := string(node.Language(writer.source))
			writer.code(writer.highlight(linesOf(node, writer.source), language))
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			writer.code(writer.faint(linesOf(node, writer.source)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock:
		if entering {
			if content := strings.TrimSpace(stripTags(linesOf(node, writer.source))); content != "" {
				writer.writeLines(writer.faint(content))
				writer.endBlock()
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			writer.indents = append(writer.indents, "│ ")
		} else {
			writer.indents = writer.indents[:len(writer.indents)-1]
			writer.endBlock()
		}

	case *ast.List:
		if entering {
			writer.lists = append(writer.lists, listFrame{ordered: node.IsOrdered(), next: node.Start, tight: node.IsTight})
		} else {
			writer.lists = writer.lists[:len(writer.lists)-1]
			if !writer.tight() {
				writer.endBlock()
			}
		}

	case *ast.ListItem:
		if entering {
			writer.enterItem()
		} else {
			writer.indents = writer.indents[:len(writer.indents)-1]
			if writer.tight() {
				writer.endLine()
			} else {
				writer.endBlock()
			}
		}

	case *ast.ThematicBreak:
		if entering {
			rule := writer.renderer.style().Foreground(writer.renderer.theme.Border).Render(strings.Repeat("─", writer.width()))
			writer.endBlock()
			writer.writeLines(rule)
			writer.endBlock()
		}

	case *ast.Text:
		if entering {
			writer.inline.WriteString(writer.textStyle().Render(string(node.Segment.Value(writer.source))))
			switch {
			case node.HardLineBreak():
				writer.inline.WriteString("\n")
			case node.SoftLineBreak():
				writer.inline.WriteString(" ")
			}
		}

	case *ast.String:
		if entering {
			writer.inline.WriteString(writer.textStyle().Render(string(node.Value)))
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if node.Level >= 2 {
			writer.strong += delta
		} else {
			writer.emphasis += delta
		}

	case *extast.Strikethrough:
		if entering {
			writer.struck++
		} else {
			writer.struck--
		}

	case *ast.CodeSpan:
		if entering {
			writer.inline.WriteString(writer.renderer.style().Foreground(writer.renderer.theme.Accent).Render(codeSpanText(node, writer.source)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		if entering {
			writer.inline.WriteString(writer.inlineOf(node))
			if len(node.Destination) > 0 {
				writer.inline.WriteString(" " + writer.faint("("+string(node.Destination)+")"))
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			writer.inline.WriteString(writer.faint(string(node.URL(writer.source))))
		}

	case *ast.Image:
		if entering {
			writer.inline.WriteString(writer.faint("[" + ansi.Strip(writer.inlineOf(node)) + "]"))
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if entering {
			var html strings.Builder
			for i := range node.Segments.Len() {
				segment := node.Segments.At(i)
				html.Write(segment.Value(writer.source))
			}
			if content := stripTags(html.String()); content != "" {
				writer.inline.WriteString(writer.faint(content))
			}
		}

	case *extast.TaskCheckBox:
		if entering {
			if node.IsChecked {
				writer.inline.WriteString(writer.renderer.style().Foreground(writer.renderer.theme.Checked).Render("[x]") + " ")
			} else {
				writer.inline.WriteString(writer.textStyle().Render("[ ] "))
			}
		}

	case *extast.Table:
		if entering {
			writer.table(node)
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

func (writer *markdownWriter) heading(heading *ast.Heading) {
	content := ansi.Strip(writer.inline.String())
	writer.inline.Reset()
	if content == "" {
		return
	}
	style := writer.renderer.style().Bold(true).Foreground(writer.renderer.theme.Text)
	if heading.Level <= 2 {
		style = style.Foreground(writer.renderer.theme.Heading)
	}
	writer.endBlock()
	writer.writeLines(ansi.Wrap(style.Render(content), writer.width(), wrapBreakpoints))
	writer.endBlock()
}

func (writer *markdownWriter) code(rendered string) {
	writer.endBlock()
	writer.writeLines(strings.TrimRight(rendered, "\n"))
	writer.endBlock()
}

// highlight syntax-highlights code with chroma. Unknown languages,
// plain profiles, and chroma errors fall back to faint text.
func (writer *markdownWriter) highlight(code, language string) string {
	formatter := writer.renderer.codeFormatter()
	if language == "" || formatter == "" {
		return writer.faint(code)
	}
	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, code, language, formatter, writer.renderer.theme.CodeStyle); err != nil {
		return writer.faint(code)
	}
	return highlighted.String()
}

func (writer *markdownWriter) enterItem() {
	marker := "- "
	if len(writer.lists) > 0 {
		frame := &writer.lists[len(writer.lists)-1]
		if frame.ordered {
			marker = fmt.Sprintf("%d. ", frame.next)
			frame.next++
		}
	}
	writer.bullet = writer.indent() + marker
	writer.indents = append(writer.indents, strings.Repeat(" ", len(marker)))
}

// linesOf concatenates the source lines of a block node.
func linesOf(node ast.Node, source []byte) string {
	var content strings.Builder
	lines := node.Lines()
	for i := range lines.Len() {
		segment := lines.At(i)
		content.Write(segment.Value(source))
	}
	return content.String()
}

func codeSpanText(node ast.Node, source []byte) string {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			code.Write(child.Segment.Value(source))
		case *ast.String:
			code.Write(child.Value)
		}
	}
	return code.String()
}

// stripTags drops HTML tags, keeping their text content.
func stripTags(html string) string {
	var content strings.Builder
	inTag := false
	for _, character := range html {
		switch {
		case character == '<':
			inTag = true
		case character == '>':
			inTag = false
		case !inTag:
			content.WriteRune(character)
		}
	}
	return content.String()
}
