package auth

import (
	"net/http"
	"strings"
	"time"

	"wallet-admin/internal/api"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/service"
	"wallet-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getAdminByEmail      = store.GetAdminByEmail
	getAdminByID         = store.GetAdminByID
	updateAdminLastLogin = store.UpdateAdminLastLogin
	comparePassword      = service.ComparePassword
	issueAccessToken     = service.IssueAccessToken
	timeNow              = time.Now
)

// LoginHandler authenticates an admin by email and password and returns a
// bearer token. Unknown email and wrong password are indistinguishable to
// the caller; a deactivated account is reported as such.
// @Summary     Admin login
// @Description Authenticate with email and password, returns admin identity and a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "credentials"
// @Success     200 {object} api.Response{data=api.LoginResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error("Please provide email and password"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Error("Please provide email and password"))
		}

		ctx := c.Request().Context()
		admin, err := getAdminByEmail(ctx, db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.Error("Invalid credentials"))
		}
		if !admin.IsActive {
			return c.JSON(http.StatusUnauthorized, api.Error("Account is deactivated"))
		}
		if err := comparePassword(admin.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.Error("Invalid credentials"))
		}

		// Side effect of a successful login, stamped before responding.
		now := timeNow()
		if err := updateAdminLastLogin(ctx, db, admin.ID, now); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Internal(err, cfg.IsDevelopment()))
		}
		admin.LastLogin = &now

		token, err := issueAccessToken(*admin, cfg.TokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Internal(err, cfg.IsDevelopment()))
		}

		return c.JSON(http.StatusOK, api.OKMessage("Login successful", api.LoginResponse{
			Admin: api.NewAdminResponse(*admin),
			Token: token,
		}))
	}
}
