// Package glamour renders whole Markdown documents with glamour's standard
// styles. It complements package lipgloss when full CommonMark styling is
// preferred over the assistant's dialect.
package glamour

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/study"
)

// Styles lists the accepted style names.
var Styles = []string{"ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// Render renders source with the named standard style, word-wrapped to width.
func Render(source string, width int, style string) (string, error) {
	if !slices.Contains(Styles, style) {
		return "", fmt.Errorf("unknown style %q (want one of %s): %w", style, strings.Join(Styles, ", "), study.ErrValidation)
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
