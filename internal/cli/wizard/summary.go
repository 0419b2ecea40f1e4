package wizard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crema-app/crema/internal/onboarding"
	"github.com/crema-app/crema/internal/ui"
	"github.com/crema-app/crema/pkg/models"
)

// renderSummary renders the collected configuration before saving.
func renderSummary(t *ui.Theme, grinder models.GrinderConfig, basket models.BasketConfig) string {
	title := lipgloss.NewStyle().Bold(true)
	label := lipgloss.NewStyle()
	value := lipgloss.NewStyle()
	if !t.NoColor {
		title = title.Foreground(lipgloss.Color(t.Colors.Primary))
		label = label.Foreground(lipgloss.Color(t.Colors.Muted))
		value = value.Foreground(lipgloss.Color(t.Colors.Text))
	}

	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString(title.Render("Your setup") + "\n\n")
	b.WriteString(label.Render("Grinder scale   ") + value.Render(grinder.String()) + "\n")
	b.WriteString(label.Render("Dose in         ") + value.Render(p.Sprintf("%.1f – %.1f g", basket.CoffeeInMin, basket.CoffeeInMax)) + "\n")
	b.WriteString(label.Render("Beverage out    ") + value.Render(p.Sprintf("%.1f – %.1f g", basket.CoffeeOutMin, basket.CoffeeOutMax)) + "\n")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		border = border.BorderForeground(lipgloss.Color(t.Colors.Border))
	}
	return border.Render(b.String()) + "\n"
}

// summaryConfigs extracts the validated configurations from flow state.
// Only meaningful at the summary step, where both steps validated.
func summaryConfigs(st onboarding.FlowState) (models.GrinderConfig, models.BasketConfig) {
	g := onboarding.ValidateGrinderInput(st.Fields[onboarding.FieldGrinderMin], st.Fields[onboarding.FieldGrinderMax])
	b := onboarding.ValidateBasketInput(
		st.Fields[onboarding.FieldCoffeeInMin], st.Fields[onboarding.FieldCoffeeInMax],
		st.Fields[onboarding.FieldCoffeeOutMin], st.Fields[onboarding.FieldCoffeeOutMax])
	return g.Config, b.Config
}
