package lipgloss

import (
	"bytes"
	"strconv"
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/study"
	"github.com/rivo/uniseg"
)

type ansiRenderer struct {
	bold   lg.Style
	italic lg.Style
	code   lg.Style
	accent lg.Style
	muted  lg.Style
}

func newRenderer(lr *lg.Renderer, theme study.Theme) *ansiRenderer {
	return &ansiRenderer{
		bold:   lr.NewStyle().Bold(true),
		italic: lr.NewStyle().Italic(true),
		code:   lr.NewStyle().Foreground(ansiColor(theme.Code)),
		accent: lr.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:  lr.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
	}
}

func ansiColor(index int) lg.TerminalColor {
	if index < 0 {
		return lg.NoColor{}
	}
	return lg.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) renderBlock(block study.Block, width int, buf *bytes.Buffer) {
	switch b := block.(type) {
	case study.Paragraph:
		buf.WriteString(wrap(r.inline(b.Text), width))
		buf.WriteString("\n")

	case study.Heading:
		buf.WriteString(wrap(r.accent.Render(study.SpanText(b.Text)), width))
		buf.WriteString("\n")
		if b.Level == 1 {
			rule := min(uniseg.StringWidth(study.SpanText(b.Text)), width)
			if rule > 0 {
				buf.WriteString(r.muted.Render(strings.Repeat("─", rule)))
				buf.WriteString("\n")
			}
		}

	case study.BulletList:
		for _, item := range b.Items {
			r.writeListItem(buf, "- ", r.inline(item), width)
		}

	case study.NumberedList:
		markerWidth := len(strconv.Itoa(len(b.Items))) + 2
		for i, item := range b.Items {
			marker := strconv.Itoa(i+1) + ". "
			marker += strings.Repeat(" ", markerWidth-len(marker))
			r.writeListItem(buf, marker, r.inline(item), width)
		}

	case study.CodeBlock:
		if b.Language != "" {
			buf.WriteString(r.muted.Render(b.Language))
			buf.WriteString("\n")
		}
		gutter := r.muted.Render("│") + " "
		for _, line := range strings.Split(b.Content, "\n") {
			buf.WriteString(gutter + line)
			buf.WriteString("\n")
		}

	case study.Table:
		r.writeTable(buf, b, width)

	case study.Blank:
		buf.WriteString("\n")
	}
}

// writeListItem writes a list item with continuation lines indented under
// the item text.
func (r *ansiRenderer) writeListItem(buf *bytes.Buffer, marker, content string, width int) {
	itemWidth := max(width-len(marker), 10)
	wrapped := wrap(content, itemWidth)
	continuation := strings.Repeat(" ", len(marker))
	for i, line := range strings.Split(wrapped, "\n") {
		prefix := continuation
		if i == 0 {
			prefix = marker
		}
		buf.WriteString(strings.TrimRight(prefix+line, " ") + "\n")
	}
}

// wrap word-wraps s to width, breaking words longer than width, and trims
// the spaces left at line ends.
func wrap(s string, width int) string {
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func (r *ansiRenderer) inline(spans []study.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch v := s.(type) {
		case study.Bold:
			b.WriteString(r.bold.Render(v.Text))
		case study.Italic:
			b.WriteString(r.italic.Render(v.Text))
		case study.Code:
			b.WriteString(r.code.Render(v.Text))
		default:
			b.WriteString(s.Content())
		}
	}
	return b.String()
}
