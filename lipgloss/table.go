package lipgloss

import (
	"bytes"
	"strings"

	"github.com/fwojciec/study"
	"github.com/mattn/go-runewidth"
)

const (
	minColumnWidth = 3
	ellipsis       = "…"
)

type tableBorders struct {
	topLeft, topSep, topRight          string
	midLeft, midSep, midRight          string
	bottomLeft, bottomSep, bottomRight string
	vertical, horizontal               string
}

func defaultTableBorders() tableBorders {
	return tableBorders{
		topLeft:     "┌",
		topSep:      "┬",
		topRight:    "┐",
		midLeft:     "├",
		midSep:      "┼",
		midRight:    "┤",
		bottomLeft:  "└",
		bottomSep:   "┴",
		bottomRight: "┘",
		vertical:    "│",
		horizontal:  "─",
	}
}

// writeTable draws t with box borders. Body rows are padded or cut to the
// header's column count. Cells keep their inline styling; text that does not
// fit is truncated with an ellipsis.
func (r *ansiRenderer) writeTable(buf *bytes.Buffer, t study.Table, width int) {
	cols := len(t.Header)
	if cols == 0 {
		return
	}
	header := cellSpans(t.Header, cols)
	for i, cell := range header {
		header[i] = emphasize(cell)
	}
	rows := make([][][]study.Span, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = cellSpans(row, cols)
	}

	widths := columnWidths(header, rows)
	widths = clampColumnWidths(widths, width)

	brd := defaultTableBorders()
	buf.WriteString(r.muted.Render(borderLine(widths, brd.topLeft, brd.topSep, brd.topRight, brd.horizontal)))
	buf.WriteString("\n")
	r.writeRow(buf, header, widths, brd)
	buf.WriteString(r.muted.Render(borderLine(widths, brd.midLeft, brd.midSep, brd.midRight, brd.horizontal)))
	buf.WriteString("\n")
	for _, row := range rows {
		r.writeRow(buf, row, widths, brd)
	}
	buf.WriteString(r.muted.Render(borderLine(widths, brd.bottomLeft, brd.bottomSep, brd.bottomRight, brd.horizontal)))
	buf.WriteString("\n")
}

func (r *ansiRenderer) writeRow(buf *bytes.Buffer, cells [][]study.Span, widths []int, brd tableBorders) {
	sep := r.muted.Render(brd.vertical)
	buf.WriteString(sep)
	for i, cell := range cells {
		cell = truncateSpans(cell, widths[i])
		pad := widths[i] - runewidth.StringWidth(study.SpanText(cell))
		buf.WriteString(" " + r.inline(cell) + strings.Repeat(" ", max(pad, 0)) + " ")
		buf.WriteString(sep)
	}
	buf.WriteString("\n")
}

func cellSpans(cells [][]study.Span, cols int) [][]study.Span {
	out := make([][]study.Span, cols)
	copy(out, cells)
	return out
}

// emphasize turns plain header text bold. Styled spans keep their style.
func emphasize(spans []study.Span) []study.Span {
	out := make([]study.Span, len(spans))
	for i, s := range spans {
		if p, ok := s.(study.Plain); ok {
			out[i] = study.Bold{Text: p.Text}
			continue
		}
		out[i] = s
	}
	return out
}

// truncateSpans cuts spans to width display columns, ending in an ellipsis
// when anything was dropped.
func truncateSpans(spans []study.Span, width int) []study.Span {
	if runewidth.StringWidth(study.SpanText(spans)) <= width {
		return spans
	}
	budget := max(width-runewidth.StringWidth(ellipsis), 0)
	var out []study.Span
	for _, s := range spans {
		text := s.Content()
		w := runewidth.StringWidth(text)
		if w <= budget {
			out = append(out, s)
			budget -= w
			continue
		}
		if cut := runewidth.Truncate(text, budget, ""); cut != "" {
			out = append(out, withText(s, cut))
		}
		break
	}
	return append(out, study.Plain{Text: ellipsis})
}

func withText(s study.Span, text string) study.Span {
	switch s.(type) {
	case study.Bold:
		return study.Bold{Text: text}
	case study.Italic:
		return study.Italic{Text: text}
	case study.Code:
		return study.Code{Text: text}
	default:
		return study.Plain{Text: text}
	}
}

func columnWidths(header [][]study.Span, rows [][][]study.Span) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(runewidth.StringWidth(study.SpanText(h)), minColumnWidth)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(study.SpanText(cell)))
		}
	}
	return widths
}

// clampColumnWidths shrinks the widest columns until the table fits within
// maxWidth or every column is at the minimum width.
func clampColumnWidths(widths []int, maxWidth int) []int {
	// Each column carries one space of padding on both sides plus a border.
	overhead := len(widths)*3 + 1
	total := overhead
	for _, w := range widths {
		total += w
	}
	for total > maxWidth {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}

func borderLine(widths []int, left, sep, right, horizontal string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strings.Repeat(horizontal, w+2))
	}
	b.WriteString(right)
	return b.String()
}
