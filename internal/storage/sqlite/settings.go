package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

// SettingsDAO stores small opaque values keyed by name (gate passphrase hash,
// salts). Not part of the aggregate tables.
type SettingsDAO struct{ db *DB }

// NewSettingsDAO constructs a settings DAO.
func NewSettingsDAO(db *DB) *SettingsDAO { return &SettingsDAO{db: db} }

// Get returns the stored value, or nil when the key is absent.
func (d *SettingsDAO) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := d.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put writes the value, replacing any existing one.
func (d *SettingsDAO) Put(ctx context.Context, key string, value []byte) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
