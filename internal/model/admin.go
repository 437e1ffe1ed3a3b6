package model

import "time"

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

type Admin struct {
	ID           int        `db:"id" json:"id"`
	FullName     string     `db:"full_name" json:"fullName"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLogin    *time.Time `db:"last_login" json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}
