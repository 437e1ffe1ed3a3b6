package api

import (
	"time"

	"wallet-admin/internal/model"
)

// swagger:model api.DeviceResponse
type DeviceResponse struct {
	DeviceID     string     `json:"deviceId"`
	DeviceName   string     `json:"deviceName"`
	IsVerified   bool       `json:"isVerified"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty"`
	RegisteredAt time.Time  `json:"registeredAt"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int              `json:"id" example:"7"`
	FullName    string           `json:"fullName" example:"John Doe"`
	Email       string           `json:"email" example:"john@example.com"`
	PhoneNumber string           `json:"phoneNumber" example:"+250788123456"`
	Balance     float64          `json:"balance" example:"1500.25"`
	IsActive    bool             `json:"isActive" example:"true"`
	CreatedAt   time.Time        `json:"createdAt"`
	Devices     []DeviceResponse `json:"devices"`
}

// UserListResponse is the data payload of the paginated user listing.
// swagger:model api.UserListResponse
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

func NewDeviceResponse(d model.Device) DeviceResponse {
	return DeviceResponse{
		DeviceID:     d.DeviceID,
		DeviceName:   d.DeviceName,
		IsVerified:   d.IsVerified,
		VerifiedAt:   d.VerifiedAt,
		RegisteredAt: d.RegisteredAt,
	}
}

func NewUserResponse(u model.User) UserResponse {
	devices := make([]DeviceResponse, 0, len(u.Devices))
	for _, d := range u.Devices {
		devices = append(devices, NewDeviceResponse(d))
	}
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Balance:     u.Balance,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		Devices:     devices,
	}
}

func NewUserListResponse(users []model.User, p Pagination) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return UserListResponse{Users: out, Pagination: p}
}
