package wizard

import (
	"github.com/charmbracelet/glamour"
)

// welcomeMarkdown is the introduction shown on the first wizard step.
const welcomeMarkdown = `# Welcome to crema

crema keeps track of your espresso shots. Before the first shot is
logged it needs to know two things about your gear:

1. **Grinder** — the usable range of your grind-setting scale, so dial-in
   suggestions stay inside it.
2. **Basket** — the dose-in and dose-out ranges of your portafilter
   basket, so implausible shots are flagged.

Both can be changed later. You can also skip setup now and start with
sensible defaults (a double-shot basket and a 0-40 grinder scale).
`

// renderWelcome renders the introduction markdown for the terminal.
// Falls back to the raw markdown when rendering fails.
func renderWelcome(noColor bool) string {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(78))
	if err != nil {
		return welcomeMarkdown
	}
	out, err := r.Render(welcomeMarkdown)
	if err != nil {
		return welcomeMarkdown
	}
	return out
}
