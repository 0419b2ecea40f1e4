package models

import "fmt"

// Physical limits for grinder scale ranges.
const (
	// GrinderScaleLimit is the largest value either bound may take.
	GrinderScaleLimit = 1000

	// GrinderSpanMin is the smallest usable number of steps between the bounds.
	GrinderSpanMin = 3

	// GrinderSpanMax is the widest plausible number of steps between the bounds.
	GrinderSpanMax = 100
)

// GrinderConfig holds the usable min/max scale range of the user's grinder.
// It is used elsewhere in the app to normalize grind-setting input.
type GrinderConfig struct {
	ScaleMin int `yaml:"scale_min"`
	ScaleMax int `yaml:"scale_max"`
}

// DefaultGrinderConfig returns the grinder range used when the user
// skips onboarding without configuring a grinder.
func DefaultGrinderConfig() GrinderConfig {
	return GrinderConfig{ScaleMin: 0, ScaleMax: 40}
}

// Span returns the number of steps between the bounds.
func (g GrinderConfig) Span() int {
	return g.ScaleMax - g.ScaleMin
}

// String returns the range in display form, e.g. "1-10".
func (g GrinderConfig) String() string {
	return fmt.Sprintf("%d-%d", g.ScaleMin, g.ScaleMax)
}

// Validate checks the grinder range invariants:
// both bounds in [0, GrinderScaleLimit], min strictly below max,
// and a span within [GrinderSpanMin, GrinderSpanMax].
// Returns nil when valid, otherwise a *ValidationErrors with the
// violations in check order.
func (g GrinderConfig) Validate() error {
	var errs []ValidationError

	if g.ScaleMin < 0 {
		errs = append(errs, ValidationError{
			Field:   "scale_min",
			Message: "scale minimum cannot be negative",
			Value:   g.ScaleMin,
			Wrapped: ErrNegativeBound,
		})
	}
	if g.ScaleMax < 0 {
		errs = append(errs, ValidationError{
			Field:   "scale_max",
			Message: "scale maximum cannot be negative",
			Value:   g.ScaleMax,
			Wrapped: ErrNegativeBound,
		})
	}
	if g.ScaleMin > GrinderScaleLimit {
		errs = append(errs, ValidationError{
			Field:   "scale_min",
			Message: fmt.Sprintf("scale minimum cannot exceed %d", GrinderScaleLimit),
			Value:   g.ScaleMin,
			Wrapped: ErrBoundExceeded,
		})
	}
	if g.ScaleMax > GrinderScaleLimit {
		errs = append(errs, ValidationError{
			Field:   "scale_max",
			Message: fmt.Sprintf("scale maximum cannot exceed %d", GrinderScaleLimit),
			Value:   g.ScaleMax,
			Wrapped: ErrBoundExceeded,
		})
	}
	if g.ScaleMin >= g.ScaleMax {
		errs = append(errs, ValidationError{
			Field:   "scale_min",
			Message: "scale minimum must be less than scale maximum",
			Value:   g.ScaleMin,
			Wrapped: ErrMinNotBelowMax,
		})
	} else {
		// Span checks only make sense for an ordered pair.
		if g.Span() < GrinderSpanMin {
			errs = append(errs, ValidationError{
				Field:   "scale_max",
				Message: fmt.Sprintf("scale range must have at least %d steps", GrinderSpanMin),
				Value:   g.Span(),
				Wrapped: ErrSpanTooSmall,
			})
		}
		if g.Span() > GrinderSpanMax {
			errs = append(errs, ValidationError{
				Field:   "scale_max",
				Message: fmt.Sprintf("scale range cannot have more than %d steps", GrinderSpanMax),
				Value:   g.Span(),
				Wrapped: ErrSpanTooLarge,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
