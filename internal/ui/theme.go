// Package ui provides terminal UI support for crema: theme colors,
// headless-mode detection with stored defaults, and a saving spinner.
package ui

// Colors holds the hex color palette for terminal output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme bundles the palette with the color toggle.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the crema terminal theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#C68B59", // crema
			Secondary: "#6F4E37", // roast
			Success:   "#34D399",
			Error:     "#F87171",
			Text:      "#E5E7EB",
			Muted:     "#9CA3AF",
			Border:    "#4B5563",
		},
	}
}
