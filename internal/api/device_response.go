package api

import (
	"time"

	"wallet-admin/internal/model"
)

// PendingDeviceResponse is one row of the unpaginated pending listing:
// the device plus the identity of its owner.
// swagger:model api.PendingDeviceResponse
type PendingDeviceResponse struct {
	UserID       int       `json:"userId" example:"7"`
	UserEmail    string    `json:"userEmail" example:"john@example.com"`
	UserFullName string    `json:"userFullName" example:"John Doe"`
	DeviceID     string    `json:"deviceId"`
	DeviceName   string    `json:"deviceName" example:"Pixel 8"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func NewPendingDeviceResponse(p model.PendingDevice) PendingDeviceResponse {
	return PendingDeviceResponse{
		UserID:       p.UserID,
		UserEmail:    p.UserEmail,
		UserFullName: p.UserFullName,
		DeviceID:     p.DeviceID,
		DeviceName:   p.DeviceName,
		RegisteredAt: p.RegisteredAt,
	}
}

func NewPendingDeviceListResponse(pending []model.PendingDevice) []PendingDeviceResponse {
	out := make([]PendingDeviceResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, NewPendingDeviceResponse(p))
	}
	return out
}
