package store

import (
	"context"
	"errors"
	"fmt"

	"wallet-admin/internal/database"
	"wallet-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

const deviceColumns = `device_id, device_name, is_verified, verified_at, registered_at`

func scanDevice(row pgx.Row) (*model.Device, error) {
	d := &model.Device{}
	err := row.Scan(
		&d.DeviceID,
		&d.DeviceName,
		&d.IsVerified,
		&d.VerifiedAt,
		&d.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetDevice loads one device of the given user.
func GetDevice(ctx context.Context, db database.DB, userID int, deviceID string) (*model.Device, error) {
	d, err := scanDevice(db.QueryRow(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE user_id = $1 AND device_id = $2`,
		userID,
		deviceID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetDevice: %w", err)
	}
	return d, nil
}

// VerifyDevice marks a device verified. The update is conditional on the
// current state so two concurrent calls cannot both succeed: the loser sees
// ErrDeviceAlreadyVerified exactly as a later duplicate call would.
func VerifyDevice(ctx context.Context, db database.DB, userID int, deviceID string) (*model.Device, error) {
	d, err := scanDevice(db.QueryRow(ctx,
		`UPDATE devices SET is_verified = TRUE, verified_at = now()
		 WHERE user_id = $1 AND device_id = $2 AND is_verified = FALSE
		 RETURNING `+deviceColumns,
		userID,
		deviceID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, classifyVerifyMiss(ctx, db, userID, deviceID)
	}
	if err != nil {
		return nil, fmt.Errorf("VerifyDevice: %w", err)
	}
	return d, nil
}

// RevokeDevice clears a device's verification. Unlike verify there is no
// already-revoked guard: revoking an unverified device succeeds.
func RevokeDevice(ctx context.Context, db database.DB, userID int, deviceID string) (*model.Device, error) {
	d, err := scanDevice(db.QueryRow(ctx,
		`UPDATE devices SET is_verified = FALSE, verified_at = NULL
		 WHERE user_id = $1 AND device_id = $2
		 RETURNING `+deviceColumns,
		userID,
		deviceID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, classifyDeviceMiss(ctx, db, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("RevokeDevice: %w", err)
	}
	return d, nil
}

// ListPendingDevices flattens every unverified device into one row carrying
// the owner's identity. Unpaginated: the pending set is small in practice.
func ListPendingDevices(ctx context.Context, db database.DB) ([]model.PendingDevice, error) {
	rows, err := db.Query(ctx,
		`SELECT u.id, u.email, u.full_name, d.device_id, d.device_name, d.registered_at
		 FROM devices d
		 JOIN users u ON u.id = d.user_id
		 WHERE d.is_verified = FALSE
		 ORDER BY d.registered_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPendingDevices: %w", err)
	}
	defer rows.Close()

	pending := []model.PendingDevice{}
	for rows.Next() {
		var p model.PendingDevice
		if err := rows.Scan(&p.UserID, &p.UserEmail, &p.UserFullName, &p.DeviceID, &p.DeviceName, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("ListPendingDevices: %w", err)
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPendingDevices: %w", err)
	}
	return pending, nil
}

// RegisterDevice attaches a device to a user. Used by dev tooling; device
// registration proper belongs to the user-facing platform.
func RegisterDevice(ctx context.Context, db database.DB, userID int, d *model.Device) error {
	row := db.QueryRow(ctx,
		`INSERT INTO devices (user_id, device_id, device_name, is_verified, verified_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING registered_at`,
		userID,
		d.DeviceID,
		d.DeviceName,
		d.IsVerified,
		d.VerifiedAt,
	)
	if err := row.Scan(&d.RegisteredAt); err != nil {
		return fmt.Errorf("RegisterDevice: %w", err)
	}
	return nil
}

// classifyVerifyMiss decides why a conditional verify matched no row.
func classifyVerifyMiss(ctx context.Context, db database.DB, userID int, deviceID string) error {
	d, err := GetDevice(ctx, db, userID, deviceID)
	if err == nil && d.IsVerified {
		return ErrDeviceAlreadyVerified
	}
	if err != nil && !errors.Is(err, ErrDeviceNotFound) {
		return fmt.Errorf("VerifyDevice: %w", err)
	}
	if errors.Is(err, ErrDeviceNotFound) {
		return classifyDeviceMiss(ctx, db, userID)
	}
	// Device reappeared unverified between the update and the lookup.
	return ErrDeviceNotFound
}

// classifyDeviceMiss distinguishes a missing user from a missing device.
func classifyDeviceMiss(ctx context.Context, db database.DB, userID int) error {
	exists, err := userExists(ctx, db, userID)
	if err != nil {
		return fmt.Errorf("classifyDeviceMiss: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return ErrDeviceNotFound
}
