package study

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so output
// automatically matches any color scheme.
type Theme struct {
	UserMsg int // User question accent
	Error   int // Error messages
	Muted   int // Status bar, code gutter, table borders
	Code    int // Inline code
	Accent  int // Headings
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg: 4,
		Error:   1,
		Muted:   8,
		Code:    3,
		Accent:  5,
	}
}
