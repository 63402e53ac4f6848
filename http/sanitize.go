package http

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize makes backend text safe to print to a terminal. It strips ANSI
// escape sequences and control characters, keeping tabs and newlines, and
// normalizes CRLF and lone CR to LF.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n':
			b.WriteRune(r)
		case r == '\r':
			b.WriteByte('\n')
		case r <= 0x1F, r == 0x7F, r >= 0x80 && r <= 0x9F:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
