// Package render converts parsed markdown into canonical plain text:
// upper-cased underlined headings, bullet points, fixed-width tables,
// checkbox glyphs and stable blank-line spacing.
//
// Rendering is an ordered pipeline. List items, headings and tables are
// resolved structurally while the tree is flattened in document order; the
// textual cleanup pass (checkbox glyphs, ANSI stripping, blank-line
// compaction) runs strictly last. Running cleanup earlier would rewrite
// literal "[ ]" cell content before the table grid is built.
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.TaskList),
)

// Parse parses markdown source into its document tree.
func Parse(source []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(source))
}

// Markdown parses and renders markdown text in one step.
func Markdown(s string) string {
	source := []byte(s)
	return Render(Parse(source), source)
}

// Render flattens a parsed document to canonical plain text. It never fails:
// structurally incomplete nodes contribute an empty string and rendering
// continues with the rest of the document. The result has at most one blank
// line between blocks and ends with exactly one line break.
func Render(doc ast.Node, source []byte) string {
	var b strings.Builder
	writeBlocks(&b, doc, source)
	return cleanup(b.String())
}

func writeBlocks(b *strings.Builder, parent ast.Node, source []byte) {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		writeBlock(b, c, source)
		b.WriteByte('\n')
	}
}

func writeBlock(b *strings.Builder, n ast.Node, source []byte) {
	switch t := n.(type) {
	case *ast.Heading:
		writeHeading(b, t, source)
	case *ast.List:
		writeList(b, t, source)
	case *extast.Table:
		writeTable(b, t, source)
	case *ast.Paragraph:
		b.WriteString(inlineText(t, source))
		b.WriteByte('\n')
	case *ast.TextBlock:
		b.WriteString(inlineText(t, source))
		b.WriteByte('\n')
	case *ast.Blockquote:
		writeBlocks(b, t, source)
	case *ast.FencedCodeBlock:
		writeCodeLines(b, t, source)
	case *ast.CodeBlock:
		writeCodeLines(b, t, source)
	case *ast.ThematicBreak, *ast.HTMLBlock:
		// no textual contribution
	default:
		if n.HasChildren() {
			writeBlocks(b, n, source)
		}
	}
}

// writeHeading emits the heading text upper-cased with a dash underline of
// the same character length. An empty heading yields an empty underline.
func writeHeading(b *strings.Builder, n *ast.Heading, source []byte) {
	upper := strings.ToUpper(headingText(n, source))
	b.WriteByte('\n')
	b.WriteString(upper)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len([]rune(upper))))
	b.WriteByte('\n')
}

// headingText collapses the heading's inline children into a single
// space-joined run, trimming each text leaf.
func headingText(n ast.Node, source []byte) string {
	var parts []string
	collectLeaves(n, source, &parts)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func collectLeaves(n ast.Node, source []byte, parts *[]string) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			*parts = append(*parts, string(t.Segment.Value(source)))
		case *ast.String:
			*parts = append(*parts, string(t.Value))
		default:
			collectLeaves(c, source, parts)
		}
	}
}

func writeList(b *strings.Builder, n *ast.List, source []byte) {
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		writeListItem(b, item, source)
	}
}

// writeListItem prefixes the item with a constant bullet. Ordered list
// numbering is not reconstructed; nested lists become further bulleted
// lines, so nesting flattens visually while item count and order hold.
func writeListItem(b *strings.Builder, item ast.Node, source []byte) {
	b.WriteString("• ")
	var texts []string
	var nested []*ast.List
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if l, ok := c.(*ast.List); ok {
			nested = append(nested, l)
			continue
		}
		texts = append(texts, inlineText(c, source))
	}
	b.WriteString(strings.Join(texts, "\n"))
	b.WriteString("\n\n")
	for _, l := range nested {
		writeList(b, l, source)
	}
}

// inlineText concatenates the text content of a block's inline children in
// document order.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	writeInline(&b, n, source)
	return b.String()
}

func writeInline(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(source))
		case *extast.TaskCheckBox:
			// The parser consumed the literal token; re-emit it so the
			// cleanup pass substitutes the glyph form. Restore the
			// separating space unless the following text still carries it.
			if t.IsChecked {
				b.WriteString("[x]")
			} else {
				b.WriteString("[ ]")
			}
			if next, ok := c.NextSibling().(*ast.Text); !ok || !bytes.HasPrefix(next.Segment.Value(source), []byte(" ")) {
				b.WriteByte(' ')
			}
		default:
			writeInline(b, c, source)
		}
	}
}

func writeCodeLines(b *strings.Builder, n ast.Node, source []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
}
