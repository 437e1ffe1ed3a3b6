package devices

import (
	"context"
	"errors"
	"net/http"

	"wallet-admin/internal/api"
	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/store"
	"wallet-admin/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listPendingDevices = store.ListPendingDevices
	verifyDevice       = store.VerifyDevice
	revokeDevice       = store.RevokeDevice
)

// ListPendingHandler returns every unverified device across all users,
// each row carrying the owner's identity. Unpaginated.
// @Summary     Pending device verifications
// @Tags        devices
// @Produce     json
// @Success     200 {object} api.Response{data=[]api.PendingDeviceResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /devices/pending [get]
func ListPendingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		pending, err := listPendingDevices(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		}
		return c.JSON(http.StatusOK, api.OK(api.NewPendingDeviceListResponse(pending)))
	}
}

// VerifyHandler marks a device as trusted. A second verify of the same
// device fails; the device store rejects it in the same conditional update
// that performs the transition.
// @Summary     Verify a device
// @Tags        devices
// @Accept      json
// @Produce     json
// @Param       body body api.DeviceActionRequest true "device address"
// @Success     200 {object} api.Response{data=api.DeviceResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /devices/verify [post]
func VerifyHandler(db database.DB, rdb cache.Cache, wp worker.Pool, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, ok := bindDeviceAction(c)
		if !ok {
			return nil
		}

		device, err := verifyDevice(c.Request().Context(), db, req.UserID, req.DeviceID)
		if err != nil {
			return deviceActionError(c, err, cfg)
		}

		invalidateStats(rdb, wp)
		return c.JSON(http.StatusOK, api.OKMessage("Device verified successfully", api.NewDeviceResponse(*device)))
	}
}

// RevokeHandler clears a device's trust. No already-revoked guard: revoking
// an unverified device succeeds, unlike the verify direction.
// @Summary     Revoke a device verification
// @Tags        devices
// @Accept      json
// @Produce     json
// @Param       body body api.DeviceActionRequest true "device address"
// @Success     200 {object} api.Response{data=api.DeviceResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /devices/revoke [post]
func RevokeHandler(db database.DB, rdb cache.Cache, wp worker.Pool, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, ok := bindDeviceAction(c)
		if !ok {
			return nil
		}

		device, err := revokeDevice(c.Request().Context(), db, req.UserID, req.DeviceID)
		if err != nil {
			return deviceActionError(c, err, cfg)
		}

		invalidateStats(rdb, wp)
		return c.JSON(http.StatusOK, api.OKMessage("Device verification revoked", api.NewDeviceResponse(*device)))
	}
}

func bindDeviceAction(c echo.Context) (api.DeviceActionRequest, bool) {
	var req api.DeviceActionRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("UserId and deviceId are required"))
		return req, false
	}
	if err := c.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("UserId and deviceId are required"))
		return req, false
	}
	return req, true
}

// deviceActionError maps store errors; device operations report not-found
// as 400, matching the rest of the device surface.
func deviceActionError(c echo.Context, err error, cfg config.Config) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return c.JSON(http.StatusBadRequest, api.Error("User not found"))
	case errors.Is(err, store.ErrDeviceNotFound):
		return c.JSON(http.StatusBadRequest, api.Error("Device not found"))
	case errors.Is(err, store.ErrDeviceAlreadyVerified):
		return c.JSON(http.StatusBadRequest, api.Error("Device already verified"))
	default:
		return c.JSON(http.StatusInternalServerError, api.Internal(err, cfg.IsDevelopment()))
	}
}

// invalidateStats drops the cached dashboard snapshot off the request path.
func invalidateStats(rdb cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		rdb.Del(context.Background(), cache.StatsKey)
	})
}
