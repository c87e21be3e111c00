package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Exists reports whether a live entry with the exact name is present.
// No side effects; never returns NoEntryError.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM data WHERE name = ?
	`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check entry: %w", err)
	}
	return count > 0, nil
}

// Get retrieves the entry with the given name.
// Returns *NoEntryError if no such entry exists.
//
// The query carries no ORDER BY: should duplicate names exist, the first
// match in storage scan order is canonical.
func (s *Store) Get(ctx context.Context, name string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, value, alternate FROM data WHERE name = ? LIMIT 1
	`, name)
	return scanEntry(row, name)
}

// Set creates or updates the entry with the given name.
//
// Existing entry: value and alternate are updated where non-nil and kept
// where nil. Absent entry: inserted with the provided fields (nil defaults
// to ""), unless changeOnly is set, in which case Set fails with
// *NoEntryError and creates nothing.
//
// The lookup and the write run in a single transaction so two concurrent
// invocations cannot interleave between them.
func (s *Store) Set(ctx context.Context, name string, value, alternate *string, changeOnly bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set entry: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var cur Entry
	err = tx.QueryRowContext(ctx, `
		SELECT id, name, value, alternate FROM data WHERE name = ? LIMIT 1
	`, name).Scan(&cur.ID, &cur.Name, &cur.Value, &cur.Alternate)

	switch {
	case err == nil:
		// Update keyed by the matched row id, not the name, so a duplicate
		// name can never make the update fan out past the first match.
		newValue := cur.Value
		if value != nil {
			newValue = *value
		}
		newAlternate := cur.Alternate
		if alternate != nil {
			newAlternate = *alternate
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE data SET value = ?, alternate = ? WHERE id = ?
		`, newValue, newAlternate, cur.ID); err != nil {
			return fmt.Errorf("set entry: update: %w", err)
		}

	case errors.Is(err, sql.ErrNoRows):
		if changeOnly {
			return &NoEntryError{Name: name}
		}
		var newValue, newAlternate string
		if value != nil {
			newValue = *value
		}
		if alternate != nil {
			newAlternate = *alternate
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO data (name, value, alternate) VALUES (?, ?, ?)
		`, name, newValue, newAlternate); err != nil {
			return fmt.Errorf("set entry: insert: %w", err)
		}

	default:
		return fmt.Errorf("set entry: select: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("set entry: commit: %w", err)
	}

	return nil
}

// Toggle swaps value and alternate in storage and returns the new value
// (the old alternate). Returns *NoEntryError if no such entry exists.
func (s *Store) Toggle(ctx context.Context, name string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("toggle entry: begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT id, name, value, alternate FROM data WHERE name = ? LIMIT 1
	`, name)
	entry, err := scanEntry(row, name)
	if err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE data SET value = ?, alternate = ? WHERE id = ?
	`, entry.Alternate, entry.Value, entry.ID); err != nil {
		return "", fmt.Errorf("toggle entry: update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("toggle entry: commit: %w", err)
	}

	return entry.Alternate, nil
}

// Delete removes the entry with the given name if present.
// Idempotent: absence is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM data WHERE name = ?
	`, name); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// List returns all live entries in storage scan order (no guaranteed sort).
// Returns an empty slice (not nil) for an empty store.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, value, alternate FROM data
	`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Value, &e.Alternate); err != nil {
			return nil, fmt.Errorf("list entries: scan: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: iterate: %w", err)
	}

	return entries, nil
}

// Drop removes all entries, truncating the mapping. The database file itself
// and the table stay in place. Irreversible.
func (s *Store) Drop(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM data`); err != nil {
		return fmt.Errorf("drop entries: %w", err)
	}
	return nil
}

// scanEntry scans a single-row lookup result, translating sql.ErrNoRows
// into the store's typed missing-entry error.
func scanEntry(row *sql.Row, name string) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Name, &e.Value, &e.Alternate)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, &NoEntryError{Name: name}
	}
	if err != nil {
		return Entry{}, fmt.Errorf("select entry: %w", err)
	}
	return e, nil
}
