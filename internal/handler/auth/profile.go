package auth

import (
	"net/http"

	"wallet-admin/internal/api"
	"wallet-admin/internal/database"
	"wallet-admin/internal/middleware"
	"wallet-admin/internal/service"

	"github.com/labstack/echo/v4"
)

// ProfileHandler returns the authenticated admin's profile.
// @Summary     Admin profile
// @Description Current admin's identity, role and last login
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Response{data=api.ProfileResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /auth/profile [get]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextAdminKey).(*service.CustomClaims)
		if !ok || claims.AdminID == 0 {
			return c.JSON(http.StatusUnauthorized, api.Error("invalid or missing token"))
		}

		admin, err := getAdminByID(c.Request().Context(), db, claims.AdminID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Error("Admin not found"))
		}

		return c.JSON(http.StatusOK, api.OK(api.NewProfileResponse(*admin)))
	}
}
