package wizard

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/crema-app/crema/internal/ui"
)

// newCremaTheme creates a huh.Theme with crema branding.
func newCremaTheme(t *ui.Theme) *huh.Theme {
	h := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#A9714B", Dark: t.Colors.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#4E342E", Dark: t.Colors.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: t.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: t.Colors.Error}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: t.Colors.Text}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: t.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: t.Colors.Border}

	h.Focused.Base = h.Focused.Base.BorderForeground(border)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(primary).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(muted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	h.Focused.NextIndicator = h.Focused.NextIndicator.Foreground(primary)
	h.Focused.PrevIndicator = h.Focused.PrevIndicator.Foreground(primary)
	h.Focused.Option = h.Focused.Option.Foreground(text)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(green)
	h.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	h.Focused.UnselectedOption = h.Focused.UnselectedOption.Foreground(text)
	h.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(primary)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(muted)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(secondary)
	h.Focused.FocusedButton = h.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	h.Focused.BlurredButton = h.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	h.Focused.Next = h.Focused.FocusedButton

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
