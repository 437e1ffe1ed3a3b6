package router

import (
	"net/http"

	"wallet-admin/internal/api"
	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/handler"
	"wallet-admin/internal/handler/auth"
	"wallet-admin/internal/handler/dashboard"
	"wallet-admin/internal/handler/devices"
	"wallet-admin/internal/handler/transactions"
	"wallet-admin/internal/handler/users"
	"wallet-admin/internal/middleware"
	"wallet-admin/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup registers every route under /api and installs the envelope-shaping
// error handler.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg config.Config) {
	e.HTTPErrorHandler = errorHandler(cfg.IsDevelopment())

	route := e.Group("/api")

	route.GET("/health", handler.HealthHandler(db))

	route.POST("/auth/login", auth.LoginHandler(db, cfg))
	route.GET("/auth/profile", auth.ProfileHandler(db), middleware.RequireAdmin)

	apiUsers := route.Group("/users", middleware.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:userId", users.GetUserHandler(db))
	apiUsers.PUT("/:userId/toggle-status", users.ToggleUserStatusHandler(db, rdb, wp, cfg))

	apiDevices := route.Group("/devices", middleware.RequireAdmin)
	apiDevices.GET("/pending", devices.ListPendingHandler(db))
	apiDevices.POST("/verify", devices.VerifyHandler(db, rdb, wp, cfg))
	apiDevices.POST("/revoke", devices.RevokeHandler(db, rdb, wp, cfg))

	route.GET("/dashboard/stats", dashboard.StatsHandler(db, rdb, cfg), middleware.RequireAdmin)
	route.GET("/transactions", transactions.ListHandler(db), middleware.RequireAdmin)
}

// errorHandler shapes uncaught errors into the response envelope: route
// misses become 404s, echo.HTTPErrors keep their status, and anything else
// is a 500 whose detail only development mode exposes.
func errorHandler(development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		res := api.Internal(err, development)

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				res = api.Error(msg)
			}
			if status == http.StatusNotFound {
				res = api.Error("Route not found")
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, res)
	}
}
