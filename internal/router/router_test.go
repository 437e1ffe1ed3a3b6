package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type noopPool struct{}

func (noopPool) Submit(worker.Task) {}
func (noopPool) Stop()              {}

func TestSetupRegistersRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopPool{}, config.Config{})

	want := map[string]string{
		"/api/health":                       http.MethodGet,
		"/api/auth/login":                   http.MethodPost,
		"/api/auth/profile":                 http.MethodGet,
		"/api/users":                        http.MethodGet,
		"/api/users/:userId":                http.MethodGet,
		"/api/users/:userId/toggle-status":  http.MethodPut,
		"/api/devices/pending":              http.MethodGet,
		"/api/devices/verify":               http.MethodPost,
		"/api/devices/revoke":               http.MethodPost,
		"/api/dashboard/stats":              http.MethodGet,
		"/api/transactions":                 http.MethodGet,
	}

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for path, method := range want {
		require.True(t, got[method+" "+path], path)
	}
}

func TestSetupProtectsRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopPool{}, config.Config{})

	protected := []struct{ method, target string }{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/7"},
		{http.MethodPut, "/api/users/7/toggle-status"},
		{http.MethodGet, "/api/devices/pending"},
		{http.MethodPost, "/api/devices/verify"},
		{http.MethodPost, "/api/devices/revoke"},
		{http.MethodGet, "/api/dashboard/stats"},
		{http.MethodGet, "/api/transactions"},
	}
	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, route.target)
		require.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestErrorHandler(t *testing.T) {
	newCtx := func(method string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(method, "/", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("route miss", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodGet)
		errorHandler(false)(echo.NewHTTPError(http.StatusNotFound, "Not Found"), ctx)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Route not found")
	})

	t.Run("http error keeps status and message", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodGet)
		errorHandler(false)(echo.NewHTTPError(http.StatusUnauthorized, "missing token"), ctx)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "missing token")
	})

	t.Run("unexpected error is redacted", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodGet)
		errorHandler(false)(errors.New("pg down"), ctx)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Something went wrong!")
		require.NotContains(t, rec.Body.String(), "pg down")
	})

	t.Run("development exposes the detail", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodGet)
		errorHandler(true)(errors.New("pg down"), ctx)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "pg down")
	})

	t.Run("head request gets no body", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodHead)
		errorHandler(false)(errors.New("x"), ctx)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Empty(t, rec.Body.String())
	})
}
