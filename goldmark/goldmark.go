// Package goldmark parses CommonMark with the GitHub Flavored Markdown
// extensions into study blocks using goldmark. It is the standards-conforming alternative to the
// line-oriented parser in package markdown.
package goldmark

import (
	"strings"

	"github.com/fwojciec/study"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const maxHeadingLevel = 3

// Parse parses source and maps the goldmark AST onto study blocks.
// Headings deeper than level 3 are clamped, blockquotes are flattened into
// their children, nested lists are flattened into their parent's items, and
// thematic breaks become Blank. Strikethrough keeps its text, and task list
// checkboxes become "[x] " or "[ ] ". Consecutive top-level blocks are separated
// by Blank.
func Parse(source string) []study.Block {
	if source == "" {
		return nil
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	c := converter{source: src}
	var blocks []study.Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		converted := c.block(n)
		if len(converted) == 0 {
			continue
		}
		if len(blocks) > 0 {
			blocks = append(blocks, study.Blank{})
		}
		blocks = append(blocks, converted...)
	}
	return blocks
}

type converter struct {
	source []byte
}

func (c converter) block(node ast.Node) []study.Block {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return []study.Block{study.Paragraph{Text: c.inline(n)}}

	case *ast.Heading:
		return []study.Block{study.Heading{
			Level: min(n.Level, maxHeadingLevel),
			Text:  c.inline(n),
		}}

	case *ast.FencedCodeBlock:
		return []study.Block{study.CodeBlock{
			Language: string(n.Language(c.source)),
			Content:  c.lines(n),
		}}

	case *ast.CodeBlock:
		return []study.Block{study.CodeBlock{Content: c.lines(n)}}

	case *ast.List:
		items := c.listItems(n)
		if n.IsOrdered() {
			return []study.Block{study.NumberedList{Items: items}}
		}
		return []study.Block{study.BulletList{Items: items}}

	case *east.Table:
		return []study.Block{c.table(n)}

	case *ast.ThematicBreak:
		return []study.Block{study.Blank{}}

	case *ast.HTMLBlock:
		raw := strings.TrimSpace(c.lines(n))
		if raw == "" {
			return nil
		}
		return []study.Block{study.Paragraph{Text: []study.Span{study.Plain{Text: raw}}}}

	default:
		// Blockquotes and other containers: flatten children.
		var blocks []study.Block
		for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
			blocks = append(blocks, c.block(ch)...)
		}
		return blocks
	}
}

func (c converter) lines(node ast.Node) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c converter) listItems(list *ast.List) [][]study.Span {
	var items [][]study.Span
	for ch := list.FirstChild(); ch != nil; ch = ch.NextSibling() {
		item, ok := ch.(*ast.ListItem)
		if !ok {
			continue
		}
		var spans []study.Span
		var nested [][]study.Span
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if len(spans) > 0 {
					spans = appendPlain(spans, " ")
				}
				spans = append(spans, c.inline(in)...)
			case *ast.List:
				nested = append(nested, c.listItems(in)...)
			default:
				for _, b := range c.block(ic) {
					if code, ok := b.(study.CodeBlock); ok {
						spans = append(spans, study.Code{Text: code.Content})
					}
				}
			}
		}
		items = append(items, spans)
		items = append(items, nested...)
	}
	return items
}

func (c converter) table(tbl *east.Table) study.Table {
	var out study.Table
	for ch := tbl.FirstChild(); ch != nil; ch = ch.NextSibling() {
		var cells [][]study.Span
		for cell := ch.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if _, ok := cell.(*east.TableCell); ok {
				cells = append(cells, c.inline(cell))
			}
		}
		switch ch.(type) {
		case *east.TableHeader:
			out.Header = cells
		case *east.TableRow:
			out.Rows = append(out.Rows, cells)
		}
	}
	return out
}

// inline collects a node's inline children into spans, merging adjacent
// plain text.
func (c converter) inline(node ast.Node) []study.Span {
	var spans []study.Span
	for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
		spans = c.appendInline(spans, ch)
	}
	return spans
}

func (c converter) appendInline(spans []study.Span, node ast.Node) []study.Span {
	switch n := node.(type) {
	case *ast.Text:
		spans = appendPlain(spans, string(n.Segment.Value(c.source)))
		if n.SoftLineBreak() {
			spans = appendPlain(spans, " ")
		}
		if n.HardLineBreak() {
			spans = appendPlain(spans, "\n")
		}
		return spans

	case *ast.String:
		return appendPlain(spans, string(n.Value))

	case *ast.Emphasis:
		inner := study.SpanText(c.inline(n))
		if n.Level == 1 {
			return append(spans, study.Italic{Text: inner})
		}
		return append(spans, study.Bold{Text: inner})

	case *ast.CodeSpan:
		return append(spans, study.Code{Text: study.SpanText(c.inline(n))})

	case *ast.Link:
		spans = append(spans, c.inline(n)...)
		return appendPlain(spans, " ("+string(n.Destination)+")")

	case *ast.AutoLink:
		return appendPlain(spans, string(n.URL(c.source)))

	case *ast.Image:
		alt := study.SpanText(c.inline(n))
		return appendPlain(spans, alt+" ("+string(n.Destination)+")")

	case *east.TaskCheckBox:
		if n.IsChecked {
			return appendPlain(spans, "[x] ")
		}
		return appendPlain(spans, "[ ] ")

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.source))
		}
		return appendPlain(spans, b.String())

	default:
		for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
			spans = c.appendInline(spans, ch)
		}
		return spans
	}
}

func appendPlain(spans []study.Span, s string) []study.Span {
	if s == "" {
		return spans
	}
	if n := len(spans); n > 0 {
		if last, ok := spans[n-1].(study.Plain); ok {
			spans[n-1] = study.Plain{Text: last.Text + s}
			return spans
		}
	}
	return append(spans, study.Plain{Text: s})
}
