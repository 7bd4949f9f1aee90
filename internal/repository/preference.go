package repository

import (
	"context"
	"database/sql"
	"errors"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository stores key/value display preferences per device.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get returns the stored value of key for deviceID.
func (r *PreferenceRepository) Get(ctx context.Context, deviceID, key string) (string, error) {
	query := `SELECT pref_value FROM preferences WHERE device_id = ? AND pref_key = ?`

	var value string
	if err := r.db.QueryRowContext(ctx, query, deviceID, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPreferenceNotFound
		}
		return "", err
	}
	return value, nil
}

// Set inserts or replaces the value of key for deviceID.
func (r *PreferenceRepository) Set(ctx context.Context, deviceID, key, value string) error {
	query := `INSERT INTO preferences (device_id, pref_key, pref_value) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE pref_value = VALUES(pref_value)`

	_, err := r.db.ExecContext(ctx, query, deviceID, key, value)
	return err
}
