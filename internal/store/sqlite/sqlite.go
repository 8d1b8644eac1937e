// Package sqlite persists household snapshots. Snapshots are stored
// verbatim as JSON documents keyed by household id; the engine never reads
// them itself, they are supplied to it by the CLI and API layers.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

// Store is a SQLite-backed household snapshot store.
// Use ":memory:" as the path for an in-memory database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (and migrates) a snapshot database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS households (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	snapshot   TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a household snapshot verbatim.
func (s *Store) Save(ctx context.Context, h *domain.Household) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode household: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO households (id, name, snapshot, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET name = excluded.name, snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		h.ID.String(), h.Name, string(doc), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save household %s: %w", h.ID, err)
	}
	return nil
}

// Get loads a household snapshot by id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM households WHERE id = ?`, id.String()).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", domain.ErrHouseholdNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load household %s: %w", id, err)
	}

	var h domain.Household
	if err := json.Unmarshal([]byte(doc), &h); err != nil {
		return nil, fmt.Errorf("failed to decode household %s: %w", id, err)
	}
	return &h, nil
}

// List returns refs to all stored households, most recently saved first.
func (s *Store) List(ctx context.Context) ([]domain.HouseholdRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM households ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}
	defer rows.Close()

	out := []domain.HouseholdRef{}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		out = append(out, domain.HouseholdRef{ID: parsed, Name: name})
	}
	return out, rows.Err()
}

// Delete removes a household snapshot.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM households WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete household %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrHouseholdNotFound, id)
	}
	return nil
}
