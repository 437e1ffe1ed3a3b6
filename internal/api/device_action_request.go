package api

// DeviceActionRequest addresses a device through its owning user; devices
// have no standalone identity.
// swagger:model api.DeviceActionRequest
type DeviceActionRequest struct {
	UserID   int    `json:"userId" form:"userId" validate:"required" example:"7"`
	DeviceID string `json:"deviceId" form:"deviceId" validate:"required" example:"6f1c2a9e-7b3d-4a57-9c0e-2f8b1d4e5a6c"`
}
