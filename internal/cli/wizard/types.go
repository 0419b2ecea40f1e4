// Package wizard provides the interactive first-run onboarding wizard
// for crema, built on huh forms.
package wizard

import "errors"

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
)

// Headless default keys, matching the onboarding fields.
const (
	KeyGrinderMin   = "grinder_min"
	KeyGrinderMax   = "grinder_max"
	KeyCoffeeInMin  = "coffee_in_min"
	KeyCoffeeInMax  = "coffee_in_max"
	KeyCoffeeOutMin = "coffee_out_min"
	KeyCoffeeOutMax = "coffee_out_max"
)
