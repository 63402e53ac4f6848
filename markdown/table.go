package markdown

import (
	"strings"

	"github.com/fwojciec/study"
)

// minTableLines is a header row plus a separator row.
const minTableLines = 2

// parseTable consumes consecutive lines starting with "|". It reports false
// when fewer than two lines were consumed or no data rows remain after
// separator rows are dropped; the returned index is past the consumed lines
// either way.
func parseTable(lines []string, start int) (study.Table, int, bool) {
	var rows []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "|") {
			break
		}
		rows = append(rows, trimmed)
		i++
	}
	if len(rows) < minTableLines {
		return study.Table{}, i, false
	}

	var data [][][]study.Span
	for _, row := range rows {
		if isSeparatorRow(row) {
			continue
		}
		data = append(data, splitCells(row))
	}
	if len(data) == 0 {
		return study.Table{}, i, false
	}
	tbl := study.Table{Header: data[0]}
	if len(data) > 1 {
		tbl.Rows = data[1:]
	}
	return tbl, i, true
}

// isSeparatorRow reports whether row consists only of dashes, colons, pipes
// and whitespace.
func isSeparatorRow(row string) bool {
	for _, r := range row {
		switch r {
		case '-', ':', '|', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// splitCells splits row on "|" and drops the first and last segments, which
// lie outside the leading and trailing pipes.
func splitCells(row string) [][]study.Span {
	parts := strings.Split(row, "|")
	if len(parts) <= 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([][]study.Span, len(parts))
	for i, p := range parts {
		cells[i] = ParseInline(strings.TrimSpace(p))
	}
	return cells
}
