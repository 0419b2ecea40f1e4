package onboarding

import "github.com/crema-app/crema/pkg/models"

// GrinderPreset is a selectable shortcut for a common grinder scale.
type GrinderPreset struct {
	Label  string
	Config models.GrinderConfig
}

// GrinderPresets returns the fixed catalog of grinder scale presets.
func GrinderPresets() []GrinderPreset {
	return []GrinderPreset{
		{Label: "Stepped 1-10", Config: models.GrinderConfig{ScaleMin: 1, ScaleMax: 10}},
		{Label: "Stepless 30-80", Config: models.GrinderConfig{ScaleMin: 30, ScaleMax: 80}},
		{Label: "Espresso band 50-60", Config: models.GrinderConfig{ScaleMin: 50, ScaleMax: 60}},
		{Label: "Full range 0-100", Config: models.GrinderConfig{ScaleMin: 0, ScaleMax: 100}},
	}
}

// BasketPreset is a selectable shortcut for a common basket profile.
type BasketPreset struct {
	Label  string
	Config models.BasketConfig
}

// DoubleShotBasket returns the double-shot basket profile used both as
// a preset and as the default written when onboarding is skipped.
func DoubleShotBasket() models.BasketConfig {
	return models.BasketConfig{
		Name:         "Double",
		CoffeeInMin:  16,
		CoffeeInMax:  20,
		CoffeeOutMin: 32,
		CoffeeOutMax: 48,
		Active:       true,
	}
}

// SingleShotBasket returns the single-shot basket profile preset.
func SingleShotBasket() models.BasketConfig {
	return models.BasketConfig{
		Name:         "Single",
		CoffeeInMin:  7,
		CoffeeInMax:  10,
		CoffeeOutMin: 14,
		CoffeeOutMax: 25,
		Active:       true,
	}
}

// BasketPresets returns the fixed catalog of basket dose presets.
func BasketPresets() []BasketPreset {
	return []BasketPreset{
		{Label: "Single (7-10 g in, 14-25 g out)", Config: SingleShotBasket()},
		{Label: "Double (16-20 g in, 32-48 g out)", Config: DoubleShotBasket()},
	}
}
