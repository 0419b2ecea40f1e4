package models

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Every integer pair with 0 <= min < max <= GrinderScaleLimit and a span
// inside [GrinderSpanMin, GrinderSpanMax] must validate cleanly.
func TestGrinderConfigValidateProperty(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("in-range pairs are always valid", prop.ForAll(
		func(min, span int) bool {
			cfg := GrinderConfig{ScaleMin: min, ScaleMax: min + span}
			if cfg.ScaleMax > GrinderScaleLimit {
				return true // generator overshoot, nothing to check
			}
			return cfg.Validate() == nil
		},
		gen.IntRange(0, GrinderScaleLimit-GrinderSpanMin),
		gen.IntRange(GrinderSpanMin, GrinderSpanMax),
	))

	properties.Property("reversed pairs never validate", prop.ForAll(
		func(min, span int) bool {
			cfg := GrinderConfig{ScaleMin: min + span, ScaleMax: min}
			return cfg.Validate() != nil
		},
		gen.IntRange(0, GrinderScaleLimit-GrinderSpanMin),
		gen.IntRange(GrinderSpanMin, GrinderSpanMax),
	))

	properties.TestingRun(t)
}
