package store

import "errors"

// Sentinel errors handlers map to HTTP statuses and envelope messages.
var (
	ErrAdminNotFound         = errors.New("admin not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDeviceNotFound        = errors.New("device not found")
	ErrDeviceAlreadyVerified = errors.New("device already verified")
)
