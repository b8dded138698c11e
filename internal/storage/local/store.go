package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SlotStore is the low-level key-value layer: one named slot per entity type,
// each holding a JSON-serialized record or list. Every write is immediately
// durable; there is no write-behind buffering.
type SlotStore struct {
	db *sql.DB
}

// NewSlotStore returns a SlotStore bound to db.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Get returns the slot value and whether the slot exists.
func (s *SlotStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %q: %w", name, err)
	}
	return value, true, nil
}

// Set upserts the slot value.
func (s *SlotStore) Set(ctx context.Context, name string, value []byte) error {
	query := `INSERT INTO slots (name, value) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", name, err)
	}
	return nil
}

// DeleteAll removes every named slot in one transaction, so a wipe is never
// observed half-done.
func (s *SlotStore) DeleteAll(ctx context.Context, names ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin wipe: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range names {
		if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
			return fmt.Errorf("failed to delete slot %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wipe: %w", err)
	}
	return nil
}
