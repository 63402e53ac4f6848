package markdown

import (
	"strconv"
	"strings"

	"github.com/fwojciec/study"
)

// Format serializes blocks back into the dialect Parse reads. For blocks
// produced by Parse from well-formed input, Parse(Format(blocks)) yields an
// equivalent block sequence.
func Format(blocks []study.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, formatBlock(b)...)
	}
	return strings.Join(lines, "\n")
}

func formatBlock(b study.Block) []string {
	switch v := b.(type) {
	case study.Paragraph:
		return []string{FormatInline(v.Text)}
	case study.Heading:
		level := min(max(v.Level, 1), 3)
		return []string{strings.Repeat("#", level) + " " + FormatInline(v.Text)}
	case study.BulletList:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = "- " + FormatInline(item)
		}
		return lines
	case study.NumberedList:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = strconv.Itoa(i+1) + ". " + FormatInline(item)
		}
		return lines
	case study.CodeBlock:
		lines := []string{fence + v.Language}
		if v.Content != "" {
			lines = append(lines, strings.Split(v.Content, "\n")...)
		}
		return append(lines, fence)
	case study.Table:
		return formatTable(v)
	case study.Blank:
		return []string{""}
	default:
		return nil
	}
}

func formatTable(t study.Table) []string {
	lines := []string{formatRow(t.Header)}
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
	for _, row := range t.Rows {
		lines = append(lines, formatRow(row))
	}
	return lines
}

func formatRow(cells [][]study.Span) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = FormatInline(c)
	}
	return "| " + strings.Join(parts, " | ") + " |"
}

// FormatInline serializes spans with their delimiters restored.
func FormatInline(spans []study.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch v := s.(type) {
		case study.Bold:
			b.WriteString("**" + v.Text + "**")
		case study.Italic:
			b.WriteString("*" + v.Text + "*")
		case study.Code:
			b.WriteString("`" + v.Text + "`")
		default:
			b.WriteString(s.Content())
		}
	}
	return b.String()
}
