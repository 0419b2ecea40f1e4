// Package onboarding implements the first-run configuration flow:
// a linear four-step wizard state machine, a pure validation engine
// for its numeric inputs, and the coordinator that persists the
// resulting grinder and basket configuration.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/crema-app/crema/internal/store"
	"github.com/crema-app/crema/pkg/models"
)

// Sentinel errors for flow operations.
var (
	// ErrSaveInFlight is returned when a save or skip is already running.
	ErrSaveInFlight = errors.New("onboarding: save already in progress")

	// ErrIncomplete is returned when finalize is attempted before both
	// setup steps validated.
	ErrIncomplete = errors.New("onboarding: configuration incomplete")
)

// Generic user-facing messages for persistence failures. Validation
// failures pass their own message through instead.
const (
	msgDatabaseError = "A database error occurred. Please try again."
	msgUnknownError  = "Something went wrong. Please try again."
)

// Flow owns the state of one onboarding session. All mutation goes
// through its methods; observers receive immutable snapshots.
type Flow struct {
	mu    sync.Mutex
	state FlowState

	grinders store.GrinderStore
	baskets  store.BasketStore
	tracker  store.OnboardingTracker

	observers  []func(FlowState)
	onComplete func()
}

// NewFlow creates a Flow at the welcome step backed by the given stores.
func NewFlow(grinders store.GrinderStore, baskets store.BasketStore, tracker store.OnboardingTracker) *Flow {
	return &Flow{
		state:    newFlowState(),
		grinders: grinders,
		baskets:  baskets,
		tracker:  tracker,
	}
}

// Watch registers an observer invoked with a state snapshot after every
// change. Observers must not call back into the Flow.
func (f *Flow) Watch(fn func(FlowState)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
}

// OnComplete registers the success callback, invoked only after both
// configurations are saved and onboarding is marked complete.
func (f *Flow) OnComplete(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onComplete = fn
}

// State returns a snapshot of the current flow state.
func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

// SetField stores raw text for one field and re-validates the owning
// step. Runs on every keystroke.
func (f *Flow) SetField(field Field, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Fields[field] = raw
	f.revalidateLocked(field)
	f.publishLocked()
}

// ApplyGrinderPreset bulk-fills the grinder fields from a preset and
// clears all previous grinder errors.
func (f *Flow) ApplyGrinderPreset(p GrinderPreset) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Fields[FieldGrinderMin] = strconv.Itoa(p.Config.ScaleMin)
	f.state.Fields[FieldGrinderMax] = strconv.Itoa(p.Config.ScaleMax)
	for _, field := range grinderFields {
		delete(f.state.FieldErrors, field)
	}
	f.state.GrinderError = ""
	f.revalidateGrinderLocked()
	f.publishLocked()
}

// ApplyBasketPreset bulk-fills the basket fields from a preset and
// clears all previous basket errors.
func (f *Flow) ApplyBasketPreset(p BasketPreset) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Fields[FieldCoffeeInMin] = formatDose(p.Config.CoffeeInMin)
	f.state.Fields[FieldCoffeeInMax] = formatDose(p.Config.CoffeeInMax)
	f.state.Fields[FieldCoffeeOutMin] = formatDose(p.Config.CoffeeOutMin)
	f.state.Fields[FieldCoffeeOutMax] = formatDose(p.Config.CoffeeOutMax)
	for _, field := range basketFields {
		delete(f.state.FieldErrors, field)
	}
	f.state.BasketError = ""
	f.revalidateBasketLocked()
	f.publishLocked()
}

// Next attempts the forward transition from the current step.
// Returns false (state unchanged) when the step's guard fails or no
// forward edge exists.
func (f *Flow) Next() bool {
	return f.navigate(ActionNext)
}

// Back attempts the backward transition from the current step.
// Backward edges never re-validate.
func (f *Flow) Back() bool {
	return f.navigate(ActionBack)
}

func (f *Flow) navigate(action Action) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	to, ok := resolve(&f.state, action)
	if !ok {
		return false
	}
	f.state.Step = to
	f.publishLocked()
	return true
}

// Finalize persists the configured grinder and basket records, then
// marks onboarding complete. Writes are sequential: a grinder failure
// aborts before the basket is touched; a basket failure reverts the
// grinder write when the store supports it.
func (f *Flow) Finalize(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Saving {
		f.mu.Unlock()
		return ErrSaveInFlight
	}

	grinderRes := ValidateGrinderInput(f.state.Fields[FieldGrinderMin], f.state.Fields[FieldGrinderMax])
	basketRes := ValidateBasketInput(
		f.state.Fields[FieldCoffeeInMin], f.state.Fields[FieldCoffeeInMax],
		f.state.Fields[FieldCoffeeOutMin], f.state.Fields[FieldCoffeeOutMax])
	if !grinderRes.Valid || !basketRes.Valid {
		f.mu.Unlock()
		return ErrIncomplete
	}

	basketCfg := basketRes.Config
	basketCfg.Name = "Custom"
	basketCfg.Active = true

	f.state.Saving = true
	f.state.Error = ""
	f.publishLocked()
	f.mu.Unlock()

	if err := f.grinders.SaveConfig(ctx, grinderRes.Config); err != nil {
		f.fail(fmt.Sprintf("Could not save grinder configuration. %s", displayMessage(err)))
		return err
	}

	if err := f.baskets.SaveConfig(ctx, basketCfg); err != nil {
		f.compensateGrinder(ctx)
		f.fail(fmt.Sprintf("Could not save basket configuration. %s", displayMessage(err)))
		return err
	}

	return f.complete(ctx)
}

// Skip persists default configurations instead of user input: the
// stored (or freshly created default) grinder range and the double-shot
// basket preset. Then marks onboarding complete.
func (f *Flow) Skip(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Saving {
		f.mu.Unlock()
		return ErrSaveInFlight
	}
	f.state.Saving = true
	f.state.Error = ""
	f.publishLocked()
	f.mu.Unlock()

	if _, err := f.grinders.GetOrCreateDefault(ctx); err != nil {
		f.fail(fmt.Sprintf("Could not save grinder configuration. %s", displayMessage(err)))
		return err
	}

	if err := f.baskets.SaveConfig(ctx, DoubleShotBasket()); err != nil {
		f.fail(fmt.Sprintf("Could not save basket configuration. %s", displayMessage(err)))
		return err
	}

	return f.complete(ctx)
}

// complete marks onboarding done and notifies the success callback.
func (f *Flow) complete(ctx context.Context) error {
	if err := f.tracker.MarkComplete(ctx); err != nil {
		f.fail(displayMessage(err))
		return err
	}

	f.mu.Lock()
	f.state.Saving = false
	f.state.Completed = true
	done := f.onComplete
	f.publishLocked()
	f.mu.Unlock()

	if done != nil {
		done()
	}
	return nil
}

// compensateGrinder reverts the grinder write after a basket failure.
// Best effort: a failed revert is logged and the original error still
// surfaces to the user.
func (f *Flow) compensateGrinder(ctx context.Context) {
	rev, ok := f.grinders.(store.GrinderReverter)
	if !ok {
		slog.Warn("grinder store cannot revert, partial save left in place")
		return
	}
	if err := rev.RevertLastSave(ctx); err != nil {
		slog.Warn("failed to revert grinder config after basket save failure", "error", err)
	}
}

// fail clears the saving flag and records a displayable error.
// The flow stays on its current step; the user must re-trigger.
func (f *Flow) fail(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Saving = false
	f.state.Error = msg
	f.publishLocked()
}

// revalidateLocked re-runs validation for the step owning the field.
func (f *Flow) revalidateLocked(field Field) {
	switch field {
	case FieldGrinderMin, FieldGrinderMax:
		f.revalidateGrinderLocked()
	default:
		f.revalidateBasketLocked()
	}
}

func (f *Flow) revalidateGrinderLocked() {
	res := ValidateGrinderInput(f.state.Fields[FieldGrinderMin], f.state.Fields[FieldGrinderMax])
	for _, field := range grinderFields {
		delete(f.state.FieldErrors, field)
	}
	for field, msg := range res.FieldErrors {
		f.state.FieldErrors[field] = msg
	}
	f.state.GrinderError = res.GeneralError
	f.state.GrinderValid = res.Valid
}

func (f *Flow) revalidateBasketLocked() {
	res := ValidateBasketInput(
		f.state.Fields[FieldCoffeeInMin], f.state.Fields[FieldCoffeeInMax],
		f.state.Fields[FieldCoffeeOutMin], f.state.Fields[FieldCoffeeOutMax])
	for _, field := range basketFields {
		delete(f.state.FieldErrors, field)
	}
	for field, msg := range res.FieldErrors {
		f.state.FieldErrors[field] = msg
	}
	f.state.BasketError = res.GeneralError
	f.state.BasketValid = res.Valid
}

// publishLocked notifies observers with a snapshot. Caller holds the lock.
func (f *Flow) publishLocked() {
	if len(f.observers) == 0 {
		return
	}
	snapshot := f.state.clone()
	for _, fn := range f.observers {
		fn(snapshot)
	}
}

// displayMessage maps a persistence error to its user-facing message.
// Validation messages pass through; database and unknown failures get
// generic messages.
func displayMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrValidation):
		var ve *models.ValidationErrors
		if errors.As(err, &ve) && ve.First() != "" {
			return ve.First()
		}
		return err.Error()
	case errors.Is(err, store.ErrDatabase):
		return msgDatabaseError
	default:
		return msgUnknownError
	}
}

// formatDose renders a dose value the way a user would type it.
func formatDose(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
