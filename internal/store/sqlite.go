package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/crema-app/crema/pkg/models"

	_ "modernc.org/sqlite"
)

// SQLite implements GrinderStore, BasketStore and OnboardingTracker
// on a single local SQLite database.
type SQLite struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string

	// previous grinder row, remembered across SaveConfig for RevertLastSave
	prevGrinder *models.GrinderConfig
	grinderSet  bool
}

// OpenSQLite initializes the SQLite database at the given path,
// creating the parent directory and schema as needed.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLite{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// initialize creates the required tables.
func (s *SQLite) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS grinder_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		scale_min INTEGER NOT NULL,
		scale_max INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS basket_configs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		coffee_in_min REAL NOT NULL,
		coffee_in_max REAL NOT NULL,
		coffee_out_min REAL NOT NULL,
		coffee_out_max REAL NOT NULL,
		active INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_basket_configs_active ON basket_configs(active);
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return &RepositoryError{Op: "initialize schema", Kind: ErrDatabase, Wrapped: err}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.dbPath
}

// SaveGrinderConfig writes the grinder configuration as the single
// grinder row. The previous row is remembered so a subsequent
// RevertLastSave can restore it.
func (s *SQLite) SaveGrinderConfig(ctx context.Context, cfg models.GrinderConfig) error {
	if err := cfg.Validate(); err != nil {
		return &RepositoryError{Op: "save grinder config", Kind: ErrValidation, Wrapped: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok, err := s.readGrinder(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO grinder_config (id, scale_min, scale_max, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			scale_min = excluded.scale_min,
			scale_max = excluded.scale_max,
			updated_at = CURRENT_TIMESTAMP`,
		cfg.ScaleMin, cfg.ScaleMax)
	if err != nil {
		return &RepositoryError{Op: "save grinder config", Kind: ErrDatabase, Wrapped: err}
	}

	if ok {
		s.prevGrinder = &prev
	} else {
		s.prevGrinder = nil
	}
	s.grinderSet = true

	slog.Debug("grinder config saved", "range", cfg.String())
	return nil
}

// RevertLastSave undoes the most recent SaveConfig, restoring the
// previous grinder row or deleting the row if none existed before.
// A no-op when no save has happened on this handle.
func (s *SQLite) RevertLastSave(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.grinderSet {
		return nil
	}

	var err error
	if s.prevGrinder != nil {
		_, err = s.db.ExecContext(ctx, `
			UPDATE grinder_config
			SET scale_min = ?, scale_max = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = 1`,
			s.prevGrinder.ScaleMin, s.prevGrinder.ScaleMax)
	} else {
		_, err = s.db.ExecContext(ctx, `DELETE FROM grinder_config WHERE id = 1`)
	}
	if err != nil {
		return &RepositoryError{Op: "revert grinder config", Kind: ErrDatabase, Wrapped: err}
	}

	s.grinderSet = false
	s.prevGrinder = nil
	return nil
}

// GetOrCreateDefaultGrinder returns the stored grinder configuration,
// creating the default one when none exists yet.
func (s *SQLite) GetOrCreateDefaultGrinder(ctx context.Context) (models.GrinderConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok, err := s.readGrinder(ctx)
	if err != nil {
		return models.GrinderConfig{}, err
	}
	if ok {
		return cfg, nil
	}

	cfg = models.DefaultGrinderConfig()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO grinder_config (id, scale_min, scale_max) VALUES (1, ?, ?)`,
		cfg.ScaleMin, cfg.ScaleMax)
	if err != nil {
		return models.GrinderConfig{}, &RepositoryError{Op: "create default grinder config", Kind: ErrDatabase, Wrapped: err}
	}

	slog.Debug("default grinder config created", "range", cfg.String())
	return cfg, nil
}

// Grinder returns the stored grinder configuration without creating
// one. The second return value reports whether a row exists.
func (s *SQLite) Grinder(ctx context.Context) (models.GrinderConfig, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readGrinder(ctx)
}

// readGrinder reads the grinder row. Caller must hold the mutex.
func (s *SQLite) readGrinder(ctx context.Context) (models.GrinderConfig, bool, error) {
	var cfg models.GrinderConfig
	err := s.db.QueryRowContext(ctx,
		`SELECT scale_min, scale_max FROM grinder_config WHERE id = 1`).
		Scan(&cfg.ScaleMin, &cfg.ScaleMax)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GrinderConfig{}, false, nil
	}
	if err != nil {
		return models.GrinderConfig{}, false, &RepositoryError{Op: "read grinder config", Kind: ErrDatabase, Wrapped: err}
	}
	return cfg, true, nil
}

// SaveBasketConfig writes a basket profile. An active profile deactivates
// every other profile in the same transaction; only one basket may be
// active at a time.
func (s *SQLite) SaveBasketConfig(ctx context.Context, cfg models.BasketConfig) error {
	if err := cfg.Validate(); err != nil {
		return &RepositoryError{Op: "save basket config", Kind: ErrValidation, Wrapped: err}
	}

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &RepositoryError{Op: "save basket config", Kind: ErrDatabase, Wrapped: err}
	}
	defer func() { _ = tx.Rollback() }()

	if cfg.Active {
		if _, err := tx.ExecContext(ctx,
			`UPDATE basket_configs SET active = 0 WHERE id != ?`, cfg.ID); err != nil {
			return &RepositoryError{Op: "save basket config", Kind: ErrDatabase, Wrapped: err}
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO basket_configs
			(id, name, coffee_in_min, coffee_in_max, coffee_out_min, coffee_out_max, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			coffee_in_min = excluded.coffee_in_min,
			coffee_in_max = excluded.coffee_in_max,
			coffee_out_min = excluded.coffee_out_min,
			coffee_out_max = excluded.coffee_out_max,
			active = excluded.active`,
		cfg.ID, cfg.Name, cfg.CoffeeInMin, cfg.CoffeeInMax,
		cfg.CoffeeOutMin, cfg.CoffeeOutMax, cfg.Active)
	if err != nil {
		return &RepositoryError{Op: "save basket config", Kind: ErrDatabase, Wrapped: err}
	}

	if err := tx.Commit(); err != nil {
		return &RepositoryError{Op: "save basket config", Kind: ErrDatabase, Wrapped: err}
	}

	slog.Debug("basket config saved", "name", cfg.Name, "active", cfg.Active)
	return nil
}

// ActiveBasket returns the currently active basket profile.
// The second return value is false when no profile is active.
func (s *SQLite) ActiveBasket(ctx context.Context) (models.BasketConfig, bool, error) {
	var cfg models.BasketConfig
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, coffee_in_min, coffee_in_max, coffee_out_min, coffee_out_max, active
		FROM basket_configs WHERE active = 1 LIMIT 1`).
		Scan(&cfg.ID, &cfg.Name, &cfg.CoffeeInMin, &cfg.CoffeeInMax,
			&cfg.CoffeeOutMin, &cfg.CoffeeOutMax, &cfg.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BasketConfig{}, false, nil
	}
	if err != nil {
		return models.BasketConfig{}, false, &RepositoryError{Op: "read active basket", Kind: ErrDatabase, Wrapped: err}
	}
	return cfg, true, nil
}

// onboardingCompleteKey is the app_state key for the completion flag.
const onboardingCompleteKey = "onboarding_complete"

// MarkComplete flags onboarding as done. Safe to call repeatedly.
func (s *SQLite) MarkComplete(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, '1')
		ON CONFLICT(key) DO UPDATE SET value = '1'`,
		onboardingCompleteKey)
	if err != nil {
		return &RepositoryError{Op: "mark onboarding complete", Kind: ErrDatabase, Wrapped: err}
	}
	return nil
}

// Completed reports whether onboarding has been marked done.
func (s *SQLite) Completed(ctx context.Context) (bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, onboardingCompleteKey).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, &RepositoryError{Op: "read onboarding state", Kind: ErrDatabase, Wrapped: err}
	}
	return value == "1", nil
}

// Grinders returns the GrinderStore view of this database.
// The returned store also implements GrinderReverter.
func (s *SQLite) Grinders() GrinderStore {
	return grinderRepo{s: s}
}

// Baskets returns the BasketStore view of this database.
func (s *SQLite) Baskets() BasketStore {
	return basketRepo{s: s}
}

// Tracker returns the OnboardingTracker view of this database.
func (s *SQLite) Tracker() OnboardingTracker {
	return s
}

// grinderRepo adapts SQLite to the GrinderStore interface.
type grinderRepo struct {
	s *SQLite
}

func (r grinderRepo) SaveConfig(ctx context.Context, cfg models.GrinderConfig) error {
	return r.s.SaveGrinderConfig(ctx, cfg)
}

func (r grinderRepo) GetOrCreateDefault(ctx context.Context) (models.GrinderConfig, error) {
	return r.s.GetOrCreateDefaultGrinder(ctx)
}

func (r grinderRepo) RevertLastSave(ctx context.Context) error {
	return r.s.RevertLastSave(ctx)
}

// basketRepo adapts SQLite to the BasketStore interface.
type basketRepo struct {
	s *SQLite
}

func (r basketRepo) SaveConfig(ctx context.Context, cfg models.BasketConfig) error {
	return r.s.SaveBasketConfig(ctx, cfg)
}
