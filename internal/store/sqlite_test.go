package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/crema-app/crema/pkg/models"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "crema.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveGrinderConfigRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	want := models.GrinderConfig{ScaleMin: 1, ScaleMax: 10}
	if err := s.SaveGrinderConfig(ctx, want); err != nil {
		t.Fatalf("SaveGrinderConfig() failed: %v", err)
	}

	got, err := s.GetOrCreateDefaultGrinder(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefaultGrinder() failed: %v", err)
	}
	if got != want {
		t.Errorf("stored config = %v, want %v", got, want)
	}
}

func TestSaveGrinderConfigRejectsInvalid(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	err := s.SaveGrinderConfig(context.Background(), models.GrinderConfig{ScaleMin: 10, ScaleMax: 5})
	if err == nil {
		t.Fatal("SaveGrinderConfig() expected error for invalid config")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
	if !errors.Is(err, models.ErrMinNotBelowMax) {
		t.Errorf("expected wrapped ErrMinNotBelowMax, got: %v", err)
	}
}

func TestGetOrCreateDefaultGrinderCreatesOnce(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.GetOrCreateDefaultGrinder(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefaultGrinder() failed: %v", err)
	}
	if first != models.DefaultGrinderConfig() {
		t.Errorf("created config = %v, want default %v", first, models.DefaultGrinderConfig())
	}

	second, err := s.GetOrCreateDefaultGrinder(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefaultGrinder() second call failed: %v", err)
	}
	if second != first {
		t.Errorf("second read = %v, want %v", second, first)
	}
}

func TestRevertLastSaveRestoresPrevious(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	original := models.GrinderConfig{ScaleMin: 30, ScaleMax: 80}
	if err := s.SaveGrinderConfig(ctx, original); err != nil {
		t.Fatalf("SaveGrinderConfig() failed: %v", err)
	}
	if err := s.SaveGrinderConfig(ctx, models.GrinderConfig{ScaleMin: 0, ScaleMax: 100}); err != nil {
		t.Fatalf("SaveGrinderConfig() failed: %v", err)
	}

	if err := s.RevertLastSave(ctx); err != nil {
		t.Fatalf("RevertLastSave() failed: %v", err)
	}

	got, err := s.GetOrCreateDefaultGrinder(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefaultGrinder() failed: %v", err)
	}
	if got != original {
		t.Errorf("after revert config = %v, want %v", got, original)
	}
}

func TestRevertLastSaveDeletesFirstWrite(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveGrinderConfig(ctx, models.GrinderConfig{ScaleMin: 1, ScaleMax: 10}); err != nil {
		t.Fatalf("SaveGrinderConfig() failed: %v", err)
	}
	if err := s.RevertLastSave(ctx); err != nil {
		t.Fatalf("RevertLastSave() failed: %v", err)
	}

	// With the write reverted there is no row, so the default is created.
	got, err := s.GetOrCreateDefaultGrinder(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateDefaultGrinder() failed: %v", err)
	}
	if got != models.DefaultGrinderConfig() {
		t.Errorf("after revert config = %v, want default", got)
	}
}

func TestSaveBasketConfigSingleActive(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	first := models.BasketConfig{
		Name:        "Single",
		CoffeeInMin: 7, CoffeeInMax: 10,
		CoffeeOutMin: 14, CoffeeOutMax: 25,
		Active: true,
	}
	if err := s.SaveBasketConfig(ctx, first); err != nil {
		t.Fatalf("SaveBasketConfig() failed: %v", err)
	}

	second := models.BasketConfig{
		Name:        "Double",
		CoffeeInMin: 16, CoffeeInMax: 20,
		CoffeeOutMin: 32, CoffeeOutMax: 48,
		Active: true,
	}
	if err := s.SaveBasketConfig(ctx, second); err != nil {
		t.Fatalf("SaveBasketConfig() failed: %v", err)
	}

	active, ok, err := s.ActiveBasket(ctx)
	if err != nil {
		t.Fatalf("ActiveBasket() failed: %v", err)
	}
	if !ok {
		t.Fatal("ActiveBasket() expected an active profile")
	}
	if active.Name != "Double" {
		t.Errorf("active basket = %q, want Double", active.Name)
	}
	if active.ID == "" {
		t.Error("active basket should have a generated ID")
	}
}

func TestSaveBasketConfigRejectsInvalid(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	err := s.SaveBasketConfig(context.Background(), models.BasketConfig{
		Name:        "Broken",
		CoffeeInMin: 20, CoffeeInMax: 16,
		CoffeeOutMin: 32, CoffeeOutMax: 48,
	})
	if err == nil {
		t.Fatal("SaveBasketConfig() expected error for invalid config")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
}

func TestMarkCompleteIdempotent(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	done, err := s.Completed(ctx)
	if err != nil {
		t.Fatalf("Completed() failed: %v", err)
	}
	if done {
		t.Error("Completed() should be false on a fresh database")
	}

	for range 3 {
		if err := s.MarkComplete(ctx); err != nil {
			t.Fatalf("MarkComplete() failed: %v", err)
		}
	}

	done, err = s.Completed(ctx)
	if err != nil {
		t.Fatalf("Completed() failed: %v", err)
	}
	if !done {
		t.Error("Completed() should be true after MarkComplete()")
	}
}

func TestRepositoryErrorClassification(t *testing.T) {
	t.Parallel()

	err := &RepositoryError{Op: "save grinder config", Kind: ErrDatabase, Wrapped: errors.New("disk full")}

	if !errors.Is(err, ErrDatabase) {
		t.Error("expected errors.Is(err, ErrDatabase)")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("database error must not match ErrValidation")
	}
}
