package wizard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/crema-app/crema/internal/onboarding"
	"github.com/crema-app/crema/internal/ui"
	"github.com/crema-app/crema/pkg/models"
)

// --- fakes ---

type fakeGrinderStore struct {
	saved    []models.GrinderConfig
	reverted int
}

func (f *fakeGrinderStore) SaveConfig(_ context.Context, cfg models.GrinderConfig) error {
	f.saved = append(f.saved, cfg)
	return nil
}

func (f *fakeGrinderStore) GetOrCreateDefault(_ context.Context) (models.GrinderConfig, error) {
	cfg := models.DefaultGrinderConfig()
	f.saved = append(f.saved, cfg)
	return cfg, nil
}

func (f *fakeGrinderStore) RevertLastSave(_ context.Context) error {
	f.reverted++
	return nil
}

type fakeBasketStore struct {
	saved []models.BasketConfig
}

func (f *fakeBasketStore) SaveConfig(_ context.Context, cfg models.BasketConfig) error {
	f.saved = append(f.saved, cfg)
	return nil
}

type fakeTracker struct {
	complete bool
}

func (f *fakeTracker) MarkComplete(_ context.Context) error {
	f.complete = true
	return nil
}

func (f *fakeTracker) Completed(_ context.Context) (bool, error) {
	return f.complete, nil
}

func newTestWizard(t *testing.T) (*Wizard, *fakeGrinderStore, *fakeBasketStore, *fakeTracker) {
	t.Helper()

	grinders := &fakeGrinderStore{}
	baskets := &fakeBasketStore{}
	tracker := &fakeTracker{}
	flow := onboarding.NewFlow(grinders, baskets, tracker)

	theme := ui.NewTheme(true)
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	w := New(flow, theme, hm)
	w.out = &bytes.Buffer{}
	return w, grinders, baskets, tracker
}

// --- headless runs ---

func TestRunHeadlessWithDefaults(t *testing.T) {
	t.Parallel()

	w, grinders, baskets, tracker := newTestWizard(t)
	w.headless.SetDefaults(map[string]string{
		KeyGrinderMin:   "1",
		KeyGrinderMax:   "10",
		KeyCoffeeInMin:  "16",
		KeyCoffeeInMax:  "20",
		KeyCoffeeOutMin: "32",
		KeyCoffeeOutMax: "48",
	})

	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(grinders.saved) != 1 {
		t.Fatalf("grinder saves = %d, want 1", len(grinders.saved))
	}
	if got := grinders.saved[0]; got.ScaleMin != 1 || got.ScaleMax != 10 {
		t.Errorf("saved grinder = %+v", got)
	}
	if len(baskets.saved) != 1 || !baskets.saved[0].Active {
		t.Errorf("basket saves = %+v, want one active", baskets.saved)
	}
	if !tracker.complete {
		t.Error("onboarding not marked complete")
	}
	if !w.flow.State().Completed {
		t.Error("flow state not completed")
	}
}

func TestRunHeadlessWithoutDefaultsSkips(t *testing.T) {
	t.Parallel()

	w, grinders, baskets, tracker := newTestWizard(t)

	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(grinders.saved) != 1 {
		t.Fatalf("grinder saves = %d, want 1 default", len(grinders.saved))
	}
	if got := grinders.saved[0]; got != models.DefaultGrinderConfig() {
		t.Errorf("saved grinder = %+v, want default", got)
	}
	if len(baskets.saved) != 1 || baskets.saved[0].Name != "Double" {
		t.Errorf("basket saves = %+v, want the double preset", baskets.saved)
	}
	if !tracker.complete {
		t.Error("onboarding not marked complete")
	}
}

func TestRunHeadlessInvalidGrinderDefaults(t *testing.T) {
	t.Parallel()

	w, grinders, _, _ := newTestWizard(t)
	w.headless.SetDefaults(map[string]string{
		KeyGrinderMin:   "10",
		KeyGrinderMax:   "1",
		KeyCoffeeInMin:  "16",
		KeyCoffeeInMax:  "20",
		KeyCoffeeOutMin: "32",
		KeyCoffeeOutMax: "48",
	})

	err := w.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded with reversed grinder bounds")
	}
	if !strings.Contains(err.Error(), "grinder") {
		t.Errorf("error = %q, want mention of grinder", err)
	}
	if len(grinders.saved) != 0 {
		t.Errorf("grinder saves = %d, want 0", len(grinders.saved))
	}
}

func TestRunHeadlessInvalidBasketDefaults(t *testing.T) {
	t.Parallel()

	w, _, baskets, _ := newTestWizard(t)
	w.headless.SetDefaults(map[string]string{
		KeyGrinderMin:   "1",
		KeyGrinderMax:   "10",
		KeyCoffeeInMin:  "20",
		KeyCoffeeInMax:  "16",
		KeyCoffeeOutMin: "32",
		KeyCoffeeOutMax: "48",
	})

	err := w.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded with reversed dose bounds")
	}
	if !strings.Contains(err.Error(), "basket") {
		t.Errorf("error = %q, want mention of basket", err)
	}
	if len(baskets.saved) != 0 {
		t.Errorf("basket saves = %d, want 0", len(baskets.saved))
	}
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	w, _, _, _ := newTestWizard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Run(ctx); err == nil {
		t.Fatal("Run() succeeded with cancelled context")
	}
}

// --- rendering ---

func TestRenderWelcome(t *testing.T) {
	t.Parallel()

	out := renderWelcome(true)
	if !strings.Contains(out, "Welcome to crema") {
		t.Errorf("welcome output missing heading:\n%s", out)
	}
	if !strings.Contains(out, "Grinder") || !strings.Contains(out, "Basket") {
		t.Errorf("welcome output missing gear mentions:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	theme := ui.NewTheme(true)
	grinder := models.GrinderConfig{ScaleMin: 1, ScaleMax: 10}
	basket := models.BasketConfig{
		CoffeeInMin: 16, CoffeeInMax: 20,
		CoffeeOutMin: 32, CoffeeOutMax: 48,
	}

	out := renderSummary(theme, grinder, basket)
	for _, want := range []string{"1-10", "16.0", "48.0", "Your setup"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryConfigs(t *testing.T) {
	t.Parallel()

	w, _, _, _ := newTestWizard(t)
	w.flow.SetField(onboarding.FieldGrinderMin, "5")
	w.flow.SetField(onboarding.FieldGrinderMax, "55")
	w.flow.SetField(onboarding.FieldCoffeeInMin, "7")
	w.flow.SetField(onboarding.FieldCoffeeInMax, "10")
	w.flow.SetField(onboarding.FieldCoffeeOutMin, "14")
	w.flow.SetField(onboarding.FieldCoffeeOutMax, "25")

	grinder, basket := summaryConfigs(w.flow.State())
	if grinder.ScaleMin != 5 || grinder.ScaleMax != 55 {
		t.Errorf("grinder = %+v", grinder)
	}
	if basket.CoffeeInMin != 7 || basket.CoffeeOutMax != 25 {
		t.Errorf("basket = %+v", basket)
	}
}

func TestStepProblem(t *testing.T) {
	t.Parallel()

	w, _, _, _ := newTestWizard(t)
	w.flow.SetField(onboarding.FieldGrinderMin, "10")
	w.flow.SetField(onboarding.FieldGrinderMax, "1")

	msg := stepProblem(w.flow.State(), true)
	if msg == "" || msg == "missing values" {
		t.Errorf("stepProblem = %q, want a concrete violation", msg)
	}
}
