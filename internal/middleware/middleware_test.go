package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-admin/internal/model"
	"wallet-admin/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, header string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-secret")

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("missing header", func(t *testing.T) {
		err := RequireAdmin(next)(newContext(t, ""))
		requireUnauthorized(t, err)
	})

	t.Run("malformed header", func(t *testing.T) {
		err := RequireAdmin(next)(newContext(t, "Token abc"))
		requireUnauthorized(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		err := RequireAdmin(next)(newContext(t, "Bearer not-a-jwt"))
		requireUnauthorized(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.Admin{ID: 1, Role: model.RoleAdmin}, time.Hour)
		require.NoError(t, err)
		t.Setenv("JWT_SECRET", "rotated")
		err = RequireAdmin(next)(newContext(t, "Bearer "+token))
		requireUnauthorized(t, err)
	})

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.Admin{ID: 42, Role: model.RoleSuperadmin}, time.Hour)
		require.NoError(t, err)

		c := newContext(t, "Bearer "+token)
		called := false
		err = RequireAdmin(func(c echo.Context) error {
			called = true
			claims, ok := c.Get(ContextAdminKey).(*service.CustomClaims)
			require.True(t, ok)
			require.Equal(t, 42, claims.AdminID)
			require.Equal(t, model.RoleSuperadmin, claims.Role)
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		require.True(t, called)
	})

	t.Run("lowercase bearer is accepted", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.Admin{ID: 1, Role: model.RoleAdmin}, time.Hour)
		require.NoError(t, err)
		err = RequireAdmin(next)(newContext(t, "bearer "+token))
		require.NoError(t, err)
	})
}
