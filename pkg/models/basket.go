package models

import "fmt"

// Physical limits for basket dose ranges, in grams.
const (
	// CoffeeInLimit is the largest plausible dry dose for a single basket.
	CoffeeInLimit = 100.0

	// CoffeeOutLimit is the largest plausible beverage weight for a single shot.
	CoffeeOutLimit = 200.0
)

// BasketConfig holds the acceptable dose-in/dose-out ranges for a
// portafilter basket, used for shot validation elsewhere in the app.
// Active marks the current basket profile; only one profile may be
// active at a time, an invariant owned by the persistence layer.
type BasketConfig struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	CoffeeInMin  float64 `yaml:"coffee_in_min"`
	CoffeeInMax  float64 `yaml:"coffee_in_max"`
	CoffeeOutMin float64 `yaml:"coffee_out_min"`
	CoffeeOutMax float64 `yaml:"coffee_out_max"`
	Active       bool    `yaml:"active"`
}

// Validate checks the basket range invariants: all bounds non-negative,
// each minimum strictly below its maximum, and both ranges within their
// physical limits. Returns nil when valid, otherwise a *ValidationErrors
// with the violations in check order.
func (b BasketConfig) Validate() error {
	var errs []ValidationError

	errs = append(errs, validateDoseRange("coffee_in", b.CoffeeInMin, b.CoffeeInMax, CoffeeInLimit)...)
	errs = append(errs, validateDoseRange("coffee_out", b.CoffeeOutMin, b.CoffeeOutMax, CoffeeOutLimit)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateDoseRange checks a single min/max dose pair against a physical limit.
func validateDoseRange(field string, min, max, limit float64) []ValidationError {
	var errs []ValidationError

	if min < 0 {
		errs = append(errs, ValidationError{
			Field:   field + "_min",
			Message: field + " minimum cannot be negative",
			Value:   min,
			Wrapped: ErrNegativeBound,
		})
	}
	if max < 0 {
		errs = append(errs, ValidationError{
			Field:   field + "_max",
			Message: field + " maximum cannot be negative",
			Value:   max,
			Wrapped: ErrNegativeBound,
		})
	}
	if min > limit {
		errs = append(errs, ValidationError{
			Field:   field + "_min",
			Message: fmt.Sprintf("%s minimum cannot exceed %g g", field, limit),
			Value:   min,
			Wrapped: ErrBoundExceeded,
		})
	}
	if max > limit {
		errs = append(errs, ValidationError{
			Field:   field + "_max",
			Message: fmt.Sprintf("%s maximum cannot exceed %g g", field, limit),
			Value:   max,
			Wrapped: ErrBoundExceeded,
		})
	}
	if min >= max {
		errs = append(errs, ValidationError{
			Field:   field + "_min",
			Message: field + " minimum must be less than " + field + " maximum",
			Value:   min,
			Wrapped: ErrMinNotBelowMax,
		})
	}

	return errs
}
