package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Get returns the record stored under key. ok is false when no record exists.
func (db *Database) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := db.ReadOnly.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select record %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous record.
func (db *Database) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ReadWrite.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value      = excluded.value,
		                                updated_at = strftime('%Y-%m-%dT%H:%M:%fZ')`, key, value); err != nil {
		return fmt.Errorf("upsert record %s: %w", key, err)
	}
	return nil
}

// Delete removes the record stored under key. Deleting a missing record is not an error.
func (db *Database) Delete(ctx context.Context, key string) error {
	if _, err := db.ReadWrite.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}
	return nil
}
