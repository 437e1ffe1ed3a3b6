package transactions

import (
	"net/http"
	"strconv"
	"time"

	"wallet-admin/internal/api"
	"wallet-admin/internal/database"
	"wallet-admin/internal/store"

	"github.com/labstack/echo/v4"
)

var listTransactions = store.ListTransactions

const (
	defaultPage  = 1
	defaultLimit = 20
)

// dateLayouts accepted for startDate/endDate query values.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// ListHandler returns one page of the ledger, newest first, each entry
// expanded with the owning user's identity.
// @Summary     List transactions
// @Description Paginated ledger listing with optional type, user and date-range filters
// @Tags        transactions
// @Produce     json
// @Param       page      query int    false "page number (1-based)"
// @Param       limit     query int    false "page size"
// @Param       type      query string false "deposit or withdraw"
// @Param       userId    query int    false "filter by owning user"
// @Param       startDate query string false "inclusive lower bound (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "inclusive upper bound (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} api.Response{data=api.TransactionListResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /transactions [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = defaultPage
		}
		limit, err := strconv.Atoi(c.QueryParam("limit"))
		if err != nil || limit < 1 {
			limit = defaultLimit
		}

		filter := store.TransactionFilter{Type: c.QueryParam("type")}
		if raw := c.QueryParam("userId"); raw != "" {
			if id, err := strconv.Atoi(raw); err == nil {
				filter.UserID = id
			}
		}
		if raw := c.QueryParam("startDate"); raw != "" {
			filter.StartDate = parseDate(raw)
		}
		if raw := c.QueryParam("endDate"); raw != "" {
			filter.EndDate = parseDate(raw)
		}

		txs, total, err := listTransactions(c.Request().Context(), db, page, limit, filter)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		}

		return c.JSON(http.StatusOK, api.OK(
			api.NewTransactionListResponse(txs, api.NewPagination(page, limit, total)),
		))
	}
}
