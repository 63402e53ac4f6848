// Package study holds the domain types for the lecture study assistant:
// rendered Markdown blocks, tutor chat messages, lectures, and the Backend
// interface implemented by the HTTP client.
package study

import "strings"

// Block is a sealed interface representing one top-level unit of rendered
// text. The unexported marker method prevents external implementations, so
// a type switch over the variants below is exhaustive.
type Block interface {
	block()
}

// Paragraph is a single line of text that matched no other block rule.
type Paragraph struct {
	Text []Span
}

func (Paragraph) block() {}

// Heading is a level 1-3 heading.
type Heading struct {
	Level int
	Text  []Span
}

func (Heading) block() {}

// BulletList holds the items of consecutive "-", "*" or "•" lines with their
// markers stripped.
type BulletList struct {
	Items [][]Span
}

func (BulletList) block() {}

// NumberedList holds the items of consecutive "1." or "1)" lines with their
// markers stripped.
type NumberedList struct {
	Items [][]Span
}

func (NumberedList) block() {}

// CodeBlock is the verbatim interior of a fenced code block. Language is the
// info string following the opening fence, if any.
type CodeBlock struct {
	Language string
	Content  string
}

func (CodeBlock) block() {}

// Table is a pipe table. Header holds one cell per column; Rows holds the
// body. Separator rows are never part of either.
type Table struct {
	Header [][]Span
	Rows   [][][]Span
}

func (Table) block() {}

// Blank marks a paragraph break.
type Blank struct{}

func (Blank) block() {}

// Span is a sealed interface representing a styled fragment of text within
// a block.
type Span interface {
	span()
	Content() string
}

// Plain is unstyled text.
type Plain struct {
	Text string
}

func (Plain) span() {}

// Content returns the span text.
func (s Plain) Content() string { return s.Text }

// Bold is text that was wrapped in double asterisks.
type Bold struct {
	Text string
}

func (Bold) span() {}

// Content returns the span text.
func (s Bold) Content() string { return s.Text }

// Italic is text that was wrapped in single asterisks.
type Italic struct {
	Text string
}

func (Italic) span() {}

// Content returns the span text.
func (s Italic) Content() string { return s.Text }

// Code is text that was wrapped in backticks.
type Code struct {
	Text string
}

func (Code) span() {}

// Content returns the span text.
func (s Code) Content() string { return s.Text }

// SpanText concatenates the text of spans without any styling.
func SpanText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Content())
	}
	return b.String()
}

// Interface compliance checks.
var (
	_ Block = Paragraph{}
	_ Block = Heading{}
	_ Block = BulletList{}
	_ Block = NumberedList{}
	_ Block = CodeBlock{}
	_ Block = Table{}
	_ Block = Blank{}

	_ Span = Plain{}
	_ Span = Bold{}
	_ Span = Italic{}
	_ Span = Code{}
)
