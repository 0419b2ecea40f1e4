package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/crema-app/crema/internal/onboarding"
	"github.com/crema-app/crema/internal/ui"
)

// Wizard drives the onboarding flow through sequential huh forms.
// Each step runs as its own independent huh.Form, mirroring the flow's
// state machine: the form only collects input, every transition goes
// through the flow controller.
type Wizard struct {
	flow     *onboarding.Flow
	theme    *ui.Theme
	headless *ui.HeadlessManager
	huhTheme *huh.Theme
	out      io.Writer
}

// New creates a Wizard for the given flow.
func New(flow *onboarding.Flow, theme *ui.Theme, hm *ui.HeadlessManager) *Wizard {
	return &Wizard{
		flow:     flow,
		theme:    theme,
		headless: hm,
		huhTheme: newCremaTheme(theme),
		out:      os.Stdout,
	}
}

// fieldKeys maps headless default keys to onboarding fields.
var fieldKeys = []struct {
	key   string
	field onboarding.Field
}{
	{KeyGrinderMin, onboarding.FieldGrinderMin},
	{KeyGrinderMax, onboarding.FieldGrinderMax},
	{KeyCoffeeInMin, onboarding.FieldCoffeeInMin},
	{KeyCoffeeInMax, onboarding.FieldCoffeeInMax},
	{KeyCoffeeOutMin, onboarding.FieldCoffeeOutMin},
	{KeyCoffeeOutMax, onboarding.FieldCoffeeOutMax},
}

// Run executes the wizard. In headless mode it uses stored defaults,
// or skips onboarding entirely when none are set.
func (w *Wizard) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if w.headless.IsHeadless() {
		return w.runHeadless(ctx)
	}
	return w.runInteractive(ctx)
}

// runHeadless walks the flow with stored defaults instead of forms.
func (w *Wizard) runHeadless(ctx context.Context) error {
	if !w.headless.HasDefaults() {
		sp := ui.NewSpinner(w.theme, w.headless, "Saving default configuration...")
		err := w.flow.Skip(ctx)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("skip onboarding: %w", err)
		}
		return nil
	}

	for _, fk := range fieldKeys {
		if v, ok := w.headless.GetDefault(fk.key); ok {
			w.flow.SetField(fk.field, v)
		}
	}

	w.flow.Next() // welcome
	if !w.flow.Next() {
		return fmt.Errorf("grinder configuration invalid: %s", stepProblem(w.flow.State(), true))
	}
	if !w.flow.Next() {
		return fmt.Errorf("basket configuration invalid: %s", stepProblem(w.flow.State(), false))
	}

	sp := ui.NewSpinner(w.theme, w.headless, "Saving configuration...")
	err := w.flow.Finalize(ctx)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	return nil
}

// runInteractive loops over the flow's steps until completion.
func (w *Wizard) runInteractive(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		st := w.flow.State()
		if st.Completed {
			w.showSuccess()
			return nil
		}

		var err error
		switch st.Step {
		case onboarding.StepWelcome:
			err = w.welcomeStep(ctx)
		case onboarding.StepGrinderSetup:
			err = w.grinderStep()
		case onboarding.StepBasketSetup:
			err = w.basketStep()
		case onboarding.StepSummary:
			err = w.summaryStep(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// welcomeStep shows the introduction and offers setup or skip.
func (w *Wizard) welcomeStep(ctx context.Context) error {
	fmt.Fprint(w.out, renderWelcome(w.theme.NoColor))

	choice := "setup"
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("How would you like to start?").
			Options(
				huh.NewOption("Set up my gear", "setup"),
				huh.NewOption("Skip for now and use defaults", "skip"),
			).
			Value(&choice),
	)).WithTheme(w.huhTheme)

	if err := form.Run(); err != nil {
		return mapFormErr(err)
	}

	if choice == "skip" {
		return w.save(ctx, w.flow.Skip)
	}
	w.flow.Next()
	return nil
}

// grinderStep collects the grinder scale range, optionally from a preset.
func (w *Wizard) grinderStep() error {
	const custom = "custom"
	presets := onboarding.GrinderPresets()

	opts := make([]huh.Option[string], 0, len(presets)+1)
	for i, p := range presets {
		opts = append(opts, huh.NewOption(p.Label, strconv.Itoa(i)))
	}
	opts = append(opts, huh.NewOption("Enter manually", custom))

	choice := custom
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Grinder scale").
			Description("Pick a preset or enter your grinder's range by hand.").
			Options(opts...).
			Value(&choice),
	)).WithTheme(w.huhTheme)
	if err := form.Run(); err != nil {
		return mapFormErr(err)
	}
	if choice != custom {
		i, _ := strconv.Atoi(choice)
		w.flow.ApplyGrinderPreset(presets[i])
	}

	st := w.flow.State()
	minVal := st.Fields[onboarding.FieldGrinderMin]
	maxVal := st.Fields[onboarding.FieldGrinderMax]

	inputs := huh.NewForm(huh.NewGroup(
		w.fieldInput("Scale minimum", "e.g. 1", onboarding.FieldGrinderMin, &minVal, nil),
		w.fieldInput("Scale maximum", "e.g. 10", onboarding.FieldGrinderMax, &maxVal,
			func(st onboarding.FlowState) string { return st.GrinderError }),
	)).WithTheme(w.huhTheme)
	if err := inputs.Run(); err != nil {
		return mapFormErr(err)
	}

	return w.stepNav()
}

// basketStep collects the basket dose ranges, optionally from a preset.
func (w *Wizard) basketStep() error {
	const custom = "custom"
	presets := onboarding.BasketPresets()

	opts := make([]huh.Option[string], 0, len(presets)+1)
	for i, p := range presets {
		opts = append(opts, huh.NewOption(p.Label, strconv.Itoa(i)))
	}
	opts = append(opts, huh.NewOption("Enter manually", custom))

	choice := custom
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Basket doses").
			Description("Acceptable dry dose and beverage weight, in grams.").
			Options(opts...).
			Value(&choice),
	)).WithTheme(w.huhTheme)
	if err := form.Run(); err != nil {
		return mapFormErr(err)
	}
	if choice != custom {
		i, _ := strconv.Atoi(choice)
		w.flow.ApplyBasketPreset(presets[i])
	}

	st := w.flow.State()
	inMin := st.Fields[onboarding.FieldCoffeeInMin]
	inMax := st.Fields[onboarding.FieldCoffeeInMax]
	outMin := st.Fields[onboarding.FieldCoffeeOutMin]
	outMax := st.Fields[onboarding.FieldCoffeeOutMax]

	inputs := huh.NewForm(huh.NewGroup(
		w.fieldInput("Dose in, minimum (g)", "e.g. 16", onboarding.FieldCoffeeInMin, &inMin, nil),
		w.fieldInput("Dose in, maximum (g)", "e.g. 20", onboarding.FieldCoffeeInMax, &inMax, nil),
		w.fieldInput("Beverage out, minimum (g)", "e.g. 32", onboarding.FieldCoffeeOutMin, &outMin, nil),
		w.fieldInput("Beverage out, maximum (g)", "e.g. 48", onboarding.FieldCoffeeOutMax, &outMax,
			func(st onboarding.FlowState) string { return st.BasketError }),
	)).WithTheme(w.huhTheme)
	if err := inputs.Run(); err != nil {
		return mapFormErr(err)
	}

	return w.stepNav()
}

// summaryStep shows the collected configuration and saves on confirm.
func (w *Wizard) summaryStep(ctx context.Context) error {
	grinder, basket := summaryConfigs(w.flow.State())
	fmt.Fprint(w.out, renderSummary(w.theme, grinder, basket))

	choice := "save"
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Save this configuration?").
			Options(
				huh.NewOption("Save configuration", "save"),
				huh.NewOption("Go back", "back"),
			).
			Value(&choice),
	)).WithTheme(w.huhTheme)
	if err := form.Run(); err != nil {
		return mapFormErr(err)
	}

	if choice == "back" {
		w.flow.Back()
		return nil
	}
	return w.save(ctx, w.flow.Finalize)
}

// fieldInput builds one numeric input bound to a flow field. The
// Validate hook feeds every change into the flow, then reports the
// flow's own field error back to the form (teacher pattern: the form
// never validates, it only relays).
func (w *Wizard) fieldInput(title, placeholder string, field onboarding.Field, value *string, generalErr func(onboarding.FlowState) string) huh.Field {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(val string) error {
			w.flow.SetField(field, val)
			st := w.flow.State()

			if strings.TrimSpace(val) == "" {
				return errors.New("required")
			}
			if msg := st.FieldErrors[field]; msg != "" {
				return errors.New(msg)
			}
			if generalErr != nil {
				if msg := generalErr(st); msg != "" {
					return errors.New(msg)
				}
			}
			return nil
		})
}

// stepNav offers continue/back after a step's inputs.
func (w *Wizard) stepNav() error {
	choice := "continue"
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Options(
				huh.NewOption("Continue", "continue"),
				huh.NewOption("Go back", "back"),
			).
			Value(&choice),
	)).WithTheme(w.huhTheme)
	if err := form.Run(); err != nil {
		return mapFormErr(err)
	}

	if choice == "back" {
		w.flow.Back()
		return nil
	}
	// A blocked forward transition leaves the flow on the same step and
	// the loop re-renders it.
	w.flow.Next()
	return nil
}

// save runs a persistence operation behind a spinner. Failures are
// shown and the flow stays on its step so the user can retry.
func (w *Wizard) save(ctx context.Context, op func(context.Context) error) error {
	sp := ui.NewSpinner(w.theme, w.headless, "Saving configuration...")
	err := op(ctx)
	sp.Stop()

	if err != nil {
		w.showError(w.flow.State().Error)
	}
	return nil
}

// showError prints a dismissible-style error line.
func (w *Wizard) showError(msg string) {
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	style := lipgloss.NewStyle()
	if !w.theme.NoColor {
		style = style.Foreground(lipgloss.Color(w.theme.Colors.Error))
	}
	fmt.Fprintln(w.out, style.Render("✗ "+msg))
}

// showSuccess prints the completion message.
func (w *Wizard) showSuccess() {
	style := lipgloss.NewStyle().Bold(true)
	if !w.theme.NoColor {
		style = style.Foreground(lipgloss.Color(w.theme.Colors.Success))
	}
	fmt.Fprintln(w.out, style.Render("✓ You're all set. Pull a shot and log it with crema."))
}

// stepProblem summarizes why a step refuses to advance, for headless
// error messages.
func stepProblem(st onboarding.FlowState, grinder bool) string {
	general := st.BasketError
	if grinder {
		general = st.GrinderError
	}
	if general != "" {
		return general
	}
	var msgs []string
	for _, fk := range fieldKeys {
		if msg, ok := st.FieldErrors[fk.field]; ok {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fk.key, msg))
		}
	}
	if len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}
	return "missing values"
}

// mapFormErr translates huh errors to wizard errors.
func mapFormErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("wizard error: %w", err)
}
