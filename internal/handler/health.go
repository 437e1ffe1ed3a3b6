package handler

import (
	"net/http"

	"wallet-admin/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness payload.
// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Admin API is running"`
}

// HealthHandler reports liveness. Public; also pings the database so load
// balancers notice a lost store.
// @Summary     Health check
// @Description Liveness probe for the admin API
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.Response
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, HealthResponse{Status: "DOWN", Message: "database unreachable"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "Admin API is running"})
	}
}
