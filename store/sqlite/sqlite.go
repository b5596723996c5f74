/*
Package sqlite persists published schedules, manual overrides, and roster
configs.

PURPOSE:
  The generator is pure; this is the seam the rest of the product plugs
  into. Publishing freezes a generated month so the floor sees a stable
  rota even if the roster changes afterward; overrides record the desk
  manager's manual edits and are replayed on read.

KEY TABLES:
  rosters:             Named roster configs as JSON documents
  published_schedules: One row per (year, month), day payload as JSON
  schedule_overrides:  Manual shift moves layered over a published month

CONCURRENCY:
  sync.RWMutex around all access; SQLite runs in WAL mode so readers do
  not block each other.

MIGRATION:
  Schema is auto-migrated on New() with an idempotent inline script. For
  production, a versioned migration tool (golang-migrate, goose) would
  replace this.

USAGE:
  store, err := sqlite.New("./data/basecamp.db")   // ":memory:" for tests
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kaikoapy/basecamp-sub000/rota"
)

// Store implements schedule and roster persistence on SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Named roster configurations (JSON documents, see roster.RosterJSON)
	CREATE TABLE IF NOT EXISTS rosters (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		config_json TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);

	-- One published rota per calendar month
	CREATE TABLE IF NOT EXISTS published_schedules (
		id           TEXT PRIMARY KEY,
		year         INTEGER NOT NULL,
		month        INTEGER NOT NULL,
		days_json    TEXT NOT NULL,
		published_at TEXT NOT NULL,
		UNIQUE(year, month)
	);

	-- Manual edits layered over a published month at read time
	CREATE TABLE IF NOT EXISTS schedule_overrides (
		id         TEXT PRIMARY KEY,
		year       INTEGER NOT NULL,
		month      INTEGER NOT NULL,
		date       TEXT NOT NULL,
		employee   TEXT NOT NULL,
		to_shift   TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_overrides_month
		ON schedule_overrides(year, month);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ROSTERS
// =============================================================================

// SaveRoster upserts a named roster config.
func (s *Store) SaveRoster(ctx context.Context, name string, configJSON []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rosters (id, name, config_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET config_json = excluded.config_json`,
		uuid.NewString(), name, string(configJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save roster %q: %w", name, err)
	}
	return nil
}

// GetRoster returns the named roster config, or nil if absent.
func (s *Store) GetRoster(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var configJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT config_json FROM rosters WHERE name = ?`, name).Scan(&configJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster %q: %w", name, err)
	}
	return []byte(configJSON), nil
}

// ListRosterNames returns all stored roster names.
func (s *Store) ListRosterNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM rosters ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// =============================================================================
// PUBLISHED SCHEDULES
// =============================================================================

// PublishSchedule freezes a generated month, replacing any prior publish.
func (s *Store) PublishSchedule(ctx context.Context, year int, month time.Month, days []rota.DaySchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO published_schedules (id, year, month, days_json, published_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(year, month) DO UPDATE SET
			days_json = excluded.days_json,
			published_at = excluded.published_at`,
		uuid.NewString(), year, int(month), string(payload),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to publish schedule %d-%02d: %w", year, month, err)
	}
	return nil
}

// GetPublishedSchedule loads the published month, or nil if never published.
func (s *Store) GetPublishedSchedule(ctx context.Context, year int, month time.Month) ([]rota.DaySchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT days_json FROM published_schedules WHERE year = ? AND month = ?`,
		year, int(month)).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %d-%02d: %w", year, month, err)
	}

	var days []rota.DaySchedule
	if err := json.Unmarshal([]byte(payload), &days); err != nil {
		return nil, fmt.Errorf("failed to decode schedule %d-%02d: %w", year, month, err)
	}
	return days, nil
}

// =============================================================================
// OVERRIDES
// =============================================================================

// AddOverride records one manual shift move against a published month.
func (s *Store) AddOverride(ctx context.Context, year int, month time.Month, ov rota.Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schedule_overrides (id, year, month, date, employee, to_shift, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), year, int(month),
		ov.Date.Format("2006-01-02"), ov.Employee, ov.ToShift,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add override: %w", err)
	}
	return nil
}

// ListOverrides returns a month's overrides in insertion order.
func (s *Store) ListOverrides(ctx context.Context, year int, month time.Month) ([]rota.Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, employee, to_shift FROM schedule_overrides
		WHERE year = ? AND month = ?
		ORDER BY rowid`,
		year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []rota.Override
	for rows.Next() {
		var dateStr, employee, toShift string
		if err := rows.Scan(&dateStr, &employee, &toShift); err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt override date %q: %w", dateStr, err)
		}
		overrides = append(overrides, rota.Override{Date: date, Employee: employee, ToShift: toShift})
	}
	return overrides, rows.Err()
}
