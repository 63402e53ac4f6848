// Package lipgloss renders study blocks to ANSI-styled terminal output
// using lipgloss for styling.
package lipgloss

import (
	"bytes"
	"io"
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/study"
	"github.com/muesli/termenv"
)

const defaultWidth = 80

// Option configures Render.
type Option func(*options)

type options struct {
	profile    termenv.Profile
	hasProfile bool
}

// WithProfile renders with a fixed colour profile instead of the one lipgloss
// detects for stdout. termenv.Ascii produces output free of escape codes.
func WithProfile(p termenv.Profile) Option {
	return func(o *options) {
		o.profile = p
		o.hasProfile = true
	}
}

// Render returns ANSI-styled terminal output for blocks. Paragraphs and list
// items are word-wrapped to width. Code blocks are rendered without reflow.
// Tables are box-drawn and shrunk to fit width when possible. Lines carry no
// trailing padding.
func Render(blocks []study.Block, width int, theme study.Theme, opts ...Option) string {
	if len(blocks) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lr := lg.DefaultRenderer()
	if o.hasProfile {
		// A private renderer keeps the profile out of lipgloss's global state.
		lr = lg.NewRenderer(io.Discard)
		lr.SetColorProfile(o.profile)
	}

	r := newRenderer(lr, theme)
	var buf bytes.Buffer
	for _, b := range blocks {
		r.renderBlock(b, width, &buf)
	}
	return strings.TrimRight(buf.String(), "\n")
}
