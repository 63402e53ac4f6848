// Package markdown converts the assistant's Markdown dialect into structured
// blocks. The dialect covers headings, bullet and numbered lists, fenced code
// blocks, pipe tables, and bold/italic/inline-code spans.
//
// Parsing is a single forward pass over the lines with no backtracking. It
// never fails: malformed markup degrades to the closest plain rendering.
package markdown

import (
	"strings"
	"unicode"

	"github.com/fwojciec/study"
)

const fence = "```"

// Parse splits source into blocks in document order. Empty input yields no
// blocks.
func Parse(source string) []study.Block {
	if source == "" {
		return nil
	}
	return parseBlocks(splitLines(source))
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseBlocks(lines []string) []study.Block {
	var blocks []study.Block
	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "|") {
			tbl, next, ok := parseTable(lines, i)
			if ok {
				blocks = append(blocks, tbl)
			}
			i = next
			continue
		}

		if strings.HasPrefix(trimmed, fence) {
			code, next := parseFencedCode(lines, i)
			blocks = append(blocks, code)
			i = next
			continue
		}

		if level, text, ok := parseHeading(line); ok {
			blocks = append(blocks, study.Heading{Level: level, Text: ParseInline(text)})
			i++
			continue
		}

		if _, ok := bulletItem(trimmed); ok {
			items, next := parseList(lines, i, bulletItem)
			blocks = append(blocks, study.BulletList{Items: items})
			i = next
			continue
		}

		if _, ok := numberedItem(trimmed); ok {
			items, next := parseList(lines, i, numberedItem)
			blocks = append(blocks, study.NumberedList{Items: items})
			i = next
			continue
		}

		if trimmed == "" {
			blocks = append(blocks, study.Blank{})
			i++
			continue
		}

		blocks = append(blocks, study.Paragraph{Text: ParseInline(line)})
		i++
	}
	return blocks
}

// parseFencedCode consumes lines verbatim up to a closing fence or the end
// of input. The returned index is past the closer when one exists.
func parseFencedCode(lines []string, start int) (study.CodeBlock, int) {
	info := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[start]), fence))
	var content []string
	i := start + 1
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), fence) {
			i++
			break
		}
		content = append(content, lines[i])
		i++
	}
	return study.CodeBlock{
		Language: info,
		Content:  strings.Join(content, "\n"),
	}, i
}

// headingPrefixes is ordered most specific first since "###" also starts
// with "#".
var headingPrefixes = [...]struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

func parseHeading(line string) (int, string, bool) {
	for _, h := range headingPrefixes {
		if rest, ok := strings.CutPrefix(line, h.prefix); ok {
			return h.level, rest, true
		}
	}
	return 0, "", false
}

// itemMatcher reports the item text of a trimmed list line with its marker
// stripped.
type itemMatcher func(trimmed string) (string, bool)

func parseList(lines []string, start int, match itemMatcher) ([][]study.Span, int) {
	var items [][]study.Span
	i := start
	for i < len(lines) {
		text, ok := match(strings.TrimSpace(lines[i]))
		if !ok {
			break
		}
		items = append(items, ParseInline(text))
		i++
	}
	return items, i
}

func bulletItem(trimmed string) (string, bool) {
	for _, marker := range []string{"-", "*", "•"} {
		rest, ok := strings.CutPrefix(trimmed, marker)
		if !ok {
			continue
		}
		if text, ok := cutLeadingSpace(rest); ok {
			return text, true
		}
	}
	return "", false
}

func numberedItem(trimmed string) (string, bool) {
	j := 0
	for j < len(trimmed) && isDigit(trimmed[j]) {
		j++
	}
	if j == 0 || j >= len(trimmed) {
		return "", false
	}
	if trimmed[j] != '.' && trimmed[j] != ')' {
		return "", false
	}
	return cutLeadingSpace(trimmed[j+1:])
}

// cutLeadingSpace requires at least one whitespace character at the start
// of s and strips all of it.
func cutLeadingSpace(s string) (string, bool) {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)
	if len(rest) == len(s) {
		return "", false
	}
	return rest, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
