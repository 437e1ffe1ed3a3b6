package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wallet-admin/internal/database"
	"wallet-admin/internal/model"
	"wallet-admin/internal/store"
)

var (
	getAdminByEmail = store.GetAdminByEmail
	createAdmin     = store.CreateAdmin
)

// EnsureDefaultAdmin creates the configured superadmin account when no
// admin with that email exists yet. Idempotent, runs on every start.
func EnsureDefaultAdmin(ctx context.Context, db database.DB, email, password string) error {
	_, err := getAdminByEmail(ctx, db, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		return fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}

	admin, err := createAdmin(ctx, db, &model.Admin{
		FullName:     "System Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleSuperadmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}

	log.Printf("default admin created: %s", admin.Email)
	return nil
}
