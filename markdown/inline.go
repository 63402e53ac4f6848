package markdown

import (
	"strings"

	"github.com/fwojciec/study"
)

const inlineSpecials = "`*"

// ParseInline splits text into styled spans, scanning left to right. At each
// backtick or asterisk it tries inline code, then bold, then italic; the
// first delimited run that closes wins. A special character that opens
// nothing is kept as plain text. Adjacent plain text is merged into one span.
func ParseInline(text string) []study.Span {
	var spans []study.Span
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, study.Plain{Text: plain.String()})
			plain.Reset()
		}
	}

	pos := 0
	for pos < len(text) {
		rest := text[pos:]
		if span, n, ok := matchDelimited(rest); ok {
			flush()
			spans = append(spans, span)
			pos += n
			continue
		}
		if rest[0] == '`' || rest[0] == '*' {
			plain.WriteByte(rest[0])
			pos++
			continue
		}
		next := strings.IndexAny(rest, inlineSpecials)
		if next < 0 {
			plain.WriteString(rest)
			break
		}
		plain.WriteString(rest[:next])
		pos += next
	}
	flush()
	return spans
}

// matchDelimited tries the delimited span kinds in precedence order at the
// start of s and returns the span and the number of bytes it consumed.
func matchDelimited(s string) (study.Span, int, bool) {
	if inner, n, ok := matchRun(s, "`", '`'); ok {
		return study.Code{Text: inner}, n, true
	}
	if inner, n, ok := matchRun(s, "**", '*'); ok {
		return study.Bold{Text: inner}, n, true
	}
	if inner, n, ok := matchRun(s, "*", '*'); ok {
		return study.Italic{Text: inner}, n, true
	}
	return nil, 0, false
}

// matchRun matches delim, a non-empty run free of stop, then delim again.
func matchRun(s, delim string, stop byte) (string, int, bool) {
	body, ok := strings.CutPrefix(s, delim)
	if !ok {
		return "", 0, false
	}
	end := strings.IndexByte(body, stop)
	if end <= 0 {
		return "", 0, false
	}
	if !strings.HasPrefix(body[end:], delim) {
		return "", 0, false
	}
	return body[:end], len(delim) + end + len(delim), true
}
