package markdown_test

import (
	"testing"

	"github.com/fwojciec/study"
	"github.com/fwojciec/study/markdown"
	"github.com/stretchr/testify/assert"
)

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []study.Span
	}{
		{
			name:  "empty text",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text",
			input: "just words",
			want:  []study.Span{study.Plain{Text: "just words"}},
		},
		{
			name:  "bold italic and code",
			input: "**bold** and *italic* and `code`",
			want: []study.Span{
				study.Bold{Text: "bold"},
				study.Plain{Text: " and "},
				study.Italic{Text: "italic"},
				study.Plain{Text: " and "},
				study.Code{Text: "code"},
			},
		},
		{
			name:  "code wins over emphasis inside it",
			input: "`**x**`",
			want:  []study.Span{study.Code{Text: "**x**"}},
		},
		{
			name:  "lone asterisk stays literal",
			input: "a * b",
			want:  []study.Span{study.Plain{Text: "a * b"}},
		},
		{
			name:  "unclosed backtick stays literal",
			input: "`code",
			want:  []study.Span{study.Plain{Text: "`code"}},
		},
		{
			name:  "empty code span stays literal",
			input: "``",
			want:  []study.Span{study.Plain{Text: "``"}},
		},
		{
			name:  "unclosed bold falls back to italic",
			input: "**bold*",
			want: []study.Span{
				study.Plain{Text: "*"},
				study.Italic{Text: "bold"},
			},
		},
		{
			name:  "nested markers follow ordered precedence",
			input: "**a*b*c**",
			want: []study.Span{
				study.Plain{Text: "*"},
				study.Italic{Text: "a"},
				study.Plain{Text: "b"},
				study.Italic{Text: "c"},
				study.Plain{Text: "*"},
			},
		},
		{
			name:  "adjacent spans",
			input: "*a***b**`c`",
			want: []study.Span{
				study.Italic{Text: "a"},
				study.Bold{Text: "b"},
				study.Code{Text: "c"},
			},
		},
		{
			name:  "multibyte text around spans",
			input: "ΔS → **ważne** ✓",
			want: []study.Span{
				study.Plain{Text: "ΔS → "},
				study.Bold{Text: "ważne"},
				study.Plain{Text: " ✓"},
			},
		},
		{
			name:  "italic may contain spaces",
			input: "2 * 3 = 6 *",
			want:  []study.Span{study.Plain{Text: "2 "}, study.Italic{Text: " 3 = 6 "}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markdown.ParseInline(tt.input))
		})
	}
}
