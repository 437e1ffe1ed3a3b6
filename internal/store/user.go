package store

import (
	"context"
	"errors"
	"fmt"

	"wallet-admin/internal/database"
	"wallet-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, full_name, email, phone_number, balance, is_active, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PhoneNumber,
		&u.Balance,
		&u.IsActive,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns one page of users ordered by creation time descending,
// optionally filtered by a case-insensitive substring over full name, email
// and phone number, together with the total match count. Pages past the end
// yield an empty slice with an accurate total.
func ListUsers(ctx context.Context, db database.DB, page, limit int, search string) ([]model.User, int, error) {
	filter := ""
	args := []any{}
	if search != "" {
		filter = ` WHERE full_name ILIKE $1 OR email ILIKE $1 OR phone_number ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+filter, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}

	listSQL := fmt.Sprintf(
		`SELECT %s FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userColumns, filter, len(args)+1, len(args)+2,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}

	if err := attachDevices(ctx, db, users); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	return users, total, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}

	users := []model.User{*u}
	if err := attachDevices(ctx, db, users); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return &users[0], nil
}

// ToggleUserStatus flips is_active in a single conditional update so two
// concurrent toggles cannot read the same prior state.
func ToggleUserStatus(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`UPDATE users SET is_active = NOT is_active
		 WHERE id = $1
		 RETURNING `+userColumns,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ToggleUserStatus: %w", err)
	}

	users := []model.User{*u}
	if err := attachDevices(ctx, db, users); err != nil {
		return nil, fmt.Errorf("ToggleUserStatus: %w", err)
	}
	return &users[0], nil
}

// CreateUser inserts a user row. Only dev tooling writes users; the admin
// surface never does.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, phone_number, password_hash, balance, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.FullName,
		u.Email,
		u.PhoneNumber,
		u.PasswordHash,
		u.Balance,
		u.IsActive,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func userExists(ctx context.Context, db database.DB, userID int) (bool, error) {
	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		userID,
	).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// attachDevices loads the device lists for the given users in one query.
func attachDevices(ctx context.Context, db database.DB, users []model.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]int, 0, len(users))
	byID := make(map[int]*model.User, len(users))
	for i := range users {
		users[i].Devices = []model.Device{}
		ids = append(ids, users[i].ID)
		byID[users[i].ID] = &users[i]
	}

	rows, err := db.Query(ctx,
		`SELECT user_id, device_id, device_name, is_verified, verified_at, registered_at
		 FROM devices
		 WHERE user_id = ANY($1)
		 ORDER BY registered_at`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userID int
		var d model.Device
		if err := rows.Scan(&userID, &d.DeviceID, &d.DeviceName, &d.IsVerified, &d.VerifiedAt, &d.RegisteredAt); err != nil {
			return err
		}
		if u, ok := byID[userID]; ok {
			u.Devices = append(u.Devices, d)
		}
	}
	return rows.Err()
}
