package onboarding

import (
	"testing"
)

func TestValidateGrinderInputValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max string
	}{
		{"simple range", "1", "10"},
		{"wide range", "0", "100"},
		{"whitespace tolerated", " 30 ", " 80 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidateGrinderInput(tt.min, tt.max)
			if !res.Valid {
				t.Errorf("ValidateGrinderInput(%q, %q) expected valid, field errors: %v, general: %q",
					tt.min, tt.max, res.FieldErrors, res.GeneralError)
			}
			if len(res.FieldErrors) != 0 {
				t.Errorf("expected no field errors, got: %v", res.FieldErrors)
			}
			if res.GeneralError != "" {
				t.Errorf("expected no general error, got: %q", res.GeneralError)
			}
		})
	}
}

func TestValidateGrinderInputParseErrors(t *testing.T) {
	t.Parallel()

	res := ValidateGrinderInput("abc", "10")

	if res.Valid {
		t.Error("expected invalid result for non-numeric input")
	}
	if res.FieldErrors[FieldGrinderMin] != parseErrMsg {
		t.Errorf("min field error = %q, want %q", res.FieldErrors[FieldGrinderMin], parseErrMsg)
	}
	if _, ok := res.FieldErrors[FieldGrinderMax]; ok {
		t.Error("max parsed fine, should carry no field error")
	}
	// Range error must not be computed until every field parses.
	if res.GeneralError != "" {
		t.Errorf("expected no general error with a parse failure, got: %q", res.GeneralError)
	}
}

func TestValidateGrinderInputBlankFields(t *testing.T) {
	t.Parallel()

	res := ValidateGrinderInput("", "")

	if res.Valid {
		t.Error("blank input must be invalid")
	}
	if len(res.FieldErrors) != 0 {
		t.Errorf("blank fields must not carry parse errors, got: %v", res.FieldErrors)
	}
	if res.GeneralError != "" {
		t.Errorf("expected no general error, got: %q", res.GeneralError)
	}
}

func TestValidateGrinderInputRangeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max string
		wantMsg  string
	}{
		{"min above max", "10", "5", "scale minimum must be less than scale maximum"},
		{"negative min", "-1", "50", "scale minimum cannot be negative"},
		{"span too small", "0", "2", "scale range must have at least 3 steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidateGrinderInput(tt.min, tt.max)
			if res.Valid {
				t.Fatalf("ValidateGrinderInput(%q, %q) expected invalid", tt.min, tt.max)
			}
			if res.GeneralError != tt.wantMsg {
				t.Errorf("general error = %q, want %q", res.GeneralError, tt.wantMsg)
			}
			if len(res.FieldErrors) != 0 {
				t.Errorf("range errors must not produce field errors, got: %v", res.FieldErrors)
			}
		})
	}
}

func TestValidateBasketInputValid(t *testing.T) {
	t.Parallel()

	res := ValidateBasketInput("16", "20.5", "32", "48")

	if !res.Valid {
		t.Fatalf("expected valid, field errors: %v, general: %q", res.FieldErrors, res.GeneralError)
	}
	if res.Config.CoffeeInMax != 20.5 {
		t.Errorf("CoffeeInMax = %v, want 20.5", res.Config.CoffeeInMax)
	}
}

func TestValidateBasketInputErrors(t *testing.T) {
	t.Parallel()

	t.Run("parse error on one field", func(t *testing.T) {
		t.Parallel()

		res := ValidateBasketInput("16", "twenty", "32", "48")
		if res.Valid {
			t.Error("expected invalid result")
		}
		if res.FieldErrors[FieldCoffeeInMax] != parseErrMsg {
			t.Errorf("in-max field error = %q, want %q", res.FieldErrors[FieldCoffeeInMax], parseErrMsg)
		}
		if res.GeneralError != "" {
			t.Errorf("expected no general error, got: %q", res.GeneralError)
		}
	})

	t.Run("range error once all parse", func(t *testing.T) {
		t.Parallel()

		res := ValidateBasketInput("20", "16", "32", "48")
		if res.Valid {
			t.Error("expected invalid result")
		}
		if res.GeneralError == "" {
			t.Error("expected a general error for reversed in range")
		}
	})
}
