// Package models provides the shared configuration value objects for crema.
//
// The types here are immutable data holders with explicit Validate methods.
// Validation never mutates the receiver and always reports violations in a
// stable order, so callers can surface the first violation as the primary
// user-facing error.
//
//	cfg := models.GrinderConfig{ScaleMin: 1, ScaleMax: 10}
//	if err := cfg.Validate(); err != nil {
//	    // err is a *models.ValidationErrors
//	}
package models
