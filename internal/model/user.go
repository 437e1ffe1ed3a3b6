package model

import "time"

// User is the aggregate root owning its device list. Devices are only ever
// addressed through (user id, device id) and carry no standalone identity.
type User struct {
	ID           int       `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	PhoneNumber  string    `db:"phone_number" json:"phoneNumber"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Balance      float64   `db:"balance" json:"balance"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	Devices      []Device  `json:"devices"`
}

// Device trust record. VerifiedAt is non-nil iff the device is currently
// verified; revoking clears it.
type Device struct {
	DeviceID     string     `db:"device_id" json:"deviceId"`
	DeviceName   string     `db:"device_name" json:"deviceName"`
	IsVerified   bool       `db:"is_verified" json:"isVerified"`
	VerifiedAt   *time.Time `db:"verified_at" json:"verifiedAt,omitempty"`
	RegisteredAt time.Time  `db:"registered_at" json:"registeredAt"`
}

// PendingDevice is a denormalized row for the pending verification listing:
// device identity plus owner identity.
type PendingDevice struct {
	UserID       int       `json:"userId"`
	UserEmail    string    `json:"userEmail"`
	UserFullName string    `json:"userFullName"`
	DeviceID     string    `json:"deviceId"`
	DeviceName   string    `json:"deviceName"`
	RegisteredAt time.Time `json:"registeredAt"`
}
