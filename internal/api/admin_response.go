package api

import (
	"time"

	"wallet-admin/internal/model"
)

// AdminResponse is the public slice of an admin record; the password hash
// is never serialized.
// swagger:model api.AdminResponse
type AdminResponse struct {
	ID       int    `json:"id" example:"1"`
	FullName string `json:"fullName" example:"System Administrator"`
	Email    string `json:"email" example:"admin@wallet.local"`
	Role     string `json:"role" example:"superadmin"`
}

// ProfileResponse extends AdminResponse with the last login time.
// swagger:model api.ProfileResponse
type ProfileResponse struct {
	AdminResponse
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// LoginResponse pairs the admin identity with a bearer token.
// swagger:model api.LoginResponse
type LoginResponse struct {
	Admin AdminResponse `json:"admin"`
	Token string        `json:"token"`
}

func NewAdminResponse(a model.Admin) AdminResponse {
	return AdminResponse{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
		Role:     a.Role,
	}
}

func NewProfileResponse(a model.Admin) ProfileResponse {
	return ProfileResponse{
		AdminResponse: NewAdminResponse(a),
		LastLogin:     a.LastLogin,
	}
}
