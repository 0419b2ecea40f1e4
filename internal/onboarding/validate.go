package onboarding

import (
	"errors"
	"strconv"
	"strings"

	"github.com/crema-app/crema/pkg/models"
)

// parseErrMsg is the per-field error for text that fails numeric parsing.
const parseErrMsg = "not a valid number"

// GrinderResult is the outcome of validating raw grinder step input.
type GrinderResult struct {
	Config       models.GrinderConfig
	FieldErrors  map[Field]string
	GeneralError string
	Valid        bool
}

// BasketResult is the outcome of validating raw basket step input.
type BasketResult struct {
	Config       models.BasketConfig
	FieldErrors  map[Field]string
	GeneralError string
	Valid        bool
}

// ValidateGrinderInput maps raw text for the two grinder fields to a
// configuration and its errors. Pure: safe to re-run on every keystroke.
//
// A non-blank field that fails integer parsing gets a field error.
// Blank fields get no field error but leave the step invalid. The
// range-level error is only computed once both fields parse, and is the
// first invariant violated by the parsed configuration.
func ValidateGrinderInput(rawMin, rawMax string) GrinderResult {
	res := GrinderResult{FieldErrors: make(map[Field]string)}

	min, minOK := parseIntField(rawMin, FieldGrinderMin, res.FieldErrors)
	max, maxOK := parseIntField(rawMax, FieldGrinderMax, res.FieldErrors)
	if !minOK || !maxOK {
		return res
	}

	res.Config = models.GrinderConfig{ScaleMin: min, ScaleMax: max}
	if err := res.Config.Validate(); err != nil {
		res.GeneralError = firstViolation(err)
		return res
	}

	res.Valid = true
	return res
}

// ValidateBasketInput maps raw text for the four basket fields to a
// configuration and its errors, with the same contract as
// ValidateGrinderInput but decimal parsing.
func ValidateBasketInput(rawInMin, rawInMax, rawOutMin, rawOutMax string) BasketResult {
	res := BasketResult{FieldErrors: make(map[Field]string)}

	inMin, a := parseFloatField(rawInMin, FieldCoffeeInMin, res.FieldErrors)
	inMax, b := parseFloatField(rawInMax, FieldCoffeeInMax, res.FieldErrors)
	outMin, c := parseFloatField(rawOutMin, FieldCoffeeOutMin, res.FieldErrors)
	outMax, d := parseFloatField(rawOutMax, FieldCoffeeOutMax, res.FieldErrors)
	if !a || !b || !c || !d {
		return res
	}

	res.Config = models.BasketConfig{
		CoffeeInMin:  inMin,
		CoffeeInMax:  inMax,
		CoffeeOutMin: outMin,
		CoffeeOutMax: outMax,
	}
	if err := res.Config.Validate(); err != nil {
		res.GeneralError = firstViolation(err)
		return res
	}

	res.Valid = true
	return res
}

// parseIntField parses one integer field. Blank input is not an error
// but does not parse either.
func parseIntField(raw string, field Field, fieldErrs map[Field]string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		fieldErrs[field] = parseErrMsg
		return 0, false
	}
	return v, true
}

// parseFloatField parses one decimal field with the same contract as
// parseIntField.
func parseFloatField(raw string, field Field, fieldErrs map[Field]string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		fieldErrs[field] = parseErrMsg
		return 0, false
	}
	return v, true
}

// firstViolation extracts the primary violated-invariant message.
func firstViolation(err error) string {
	var ve *models.ValidationErrors
	if errors.As(err, &ve) {
		return ve.First()
	}
	return err.Error()
}
