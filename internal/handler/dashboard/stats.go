package dashboard

import (
	"encoding/json"
	"net/http"

	"wallet-admin/internal/api"
	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/model"
	"wallet-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var getDashboardStats = store.GetDashboardStats

// StatsHandler serves the aggregate dashboard snapshot through a short-TTL
// Redis cache; the aggregates scan whole tables and the dashboard polls.
// @Summary     Dashboard statistics
// @Description Aggregate user, balance, ledger and device-verification metrics
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} api.Response{data=model.DashboardStats}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /dashboard/stats [get]
func StatsHandler(db database.DB, rdb cache.Cache, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, cache.StatsKey).Result(); err == nil {
			var stats model.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return c.JSON(http.StatusOK, api.OK(stats))
			}
		}

		stats, err := getDashboardStats(ctx, db)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		}

		if payload, err := json.Marshal(stats); err == nil {
			// Best effort; a failed cache write only costs the next caller
			// a recomputation.
			rdb.Set(ctx, cache.StatsKey, payload, cfg.StatsCacheTTL)
		}

		return c.JSON(http.StatusOK, api.OK(*stats))
	}
}
