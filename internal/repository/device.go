package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultpass/passgen-go/internal/model"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository handles device persistence operations.
type DeviceRepository struct {
	db *sql.DB
}

// NewDeviceRepository creates a new DeviceRepository.
func NewDeviceRepository(db *sql.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Create inserts a new device.
func (r *DeviceRepository) Create(ctx context.Context, d *model.Device) error {
	query := `INSERT INTO devices (id, secret_digest) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, d.ID, d.SecretDigest); err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateDevice
		}
		return err
	}
	return nil
}

// GetByID retrieves a device by its ID.
func (r *DeviceRepository) GetByID(ctx context.Context, id string) (*model.Device, error) {
	query := `SELECT id, secret_digest, created_at, updated_at FROM devices WHERE id = ?`

	d := &model.Device{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.SecretDigest, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return d, nil
}
