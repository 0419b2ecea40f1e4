// Package store provides persistence for crema configuration records.
// It defines the collaborator interfaces consumed by the onboarding flow
// and a SQLite-backed implementation of all of them.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/crema-app/crema/pkg/models"
)

// Sentinel errors classifying repository failures.
var (
	// ErrValidation indicates the record was rejected before reaching the database.
	ErrValidation = errors.New("store: validation failed")

	// ErrDatabase indicates the underlying database operation failed.
	ErrDatabase = errors.New("store: database operation failed")

	// ErrClosed indicates the store has been closed.
	ErrClosed = errors.New("store: closed")
)

// RepositoryError wraps a failed store operation with its classification.
type RepositoryError struct {
	Op      string // operation name, e.g. "save grinder config"
	Kind    error  // ErrValidation or ErrDatabase
	Wrapped error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
}

// Unwrap returns the wrapped error.
func (e *RepositoryError) Unwrap() error {
	return e.Wrapped
}

// Is supports errors.Is against the classification sentinels.
func (e *RepositoryError) Is(target error) bool {
	return target == e.Kind
}

// GrinderStore persists the grinder scale configuration.
type GrinderStore interface {
	// SaveConfig writes the grinder configuration, replacing any existing one.
	SaveConfig(ctx context.Context, cfg models.GrinderConfig) error

	// GetOrCreateDefault returns the stored grinder configuration,
	// creating and persisting the default one when none exists.
	GetOrCreateDefault(ctx context.Context) (models.GrinderConfig, error)
}

// BasketStore persists basket dose profiles.
type BasketStore interface {
	// SaveConfig writes a basket configuration. When the profile is
	// active, any previously active profile is deactivated.
	SaveConfig(ctx context.Context, cfg models.BasketConfig) error
}

// OnboardingTracker records whether first-run onboarding has finished.
type OnboardingTracker interface {
	// MarkComplete flags onboarding as done. Idempotent.
	MarkComplete(ctx context.Context) error

	// Completed reports whether onboarding has been marked done.
	Completed(ctx context.Context) (bool, error)
}

// GrinderReverter is implemented by grinder stores that can undo their
// most recent save. The onboarding flow uses it as a compensation step
// when a later write in the same finalization fails.
type GrinderReverter interface {
	RevertLastSave(ctx context.Context) error
}
