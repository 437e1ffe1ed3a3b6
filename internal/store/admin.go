package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-admin/internal/database"
	"wallet-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

const adminColumns = `id, full_name, email, password_hash, role, is_active, last_login, created_at`

func scanAdmin(row pgx.Row) (*model.Admin, error) {
	a := &model.Admin{}
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.IsActive,
		&a.LastLogin,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAdminByEmail(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
	a, err := scanAdmin(db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1`,
		email,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetAdminByEmail: %w", err)
	}
	return a, nil
}

func GetAdminByID(ctx context.Context, db database.DB, adminID int) (*model.Admin, error) {
	a, err := scanAdmin(db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`,
		adminID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetAdminByID: %w", err)
	}
	return a, nil
}

func CreateAdmin(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admins (full_name, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.FullName,
		a.Email,
		a.PasswordHash,
		a.Role,
		a.IsActive,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAdmin: %w", err)
	}
	return a, nil
}

// UpdateAdminLastLogin stamps the admin's last login time.
func UpdateAdminLastLogin(ctx context.Context, db database.DB, adminID int, at time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE admins SET last_login = $1 WHERE id = $2`,
		at,
		adminID,
	)
	if err != nil {
		return fmt.Errorf("UpdateAdminLastLogin: %w", err)
	}
	return nil
}
