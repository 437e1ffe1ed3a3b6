package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"wallet-admin/internal/api"
	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/store"
	"wallet-admin/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listUsers        = store.ListUsers
	getUserByID      = store.GetUserByID
	toggleUserStatus = store.ToggleUserStatus
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// pageParams parses page/limit, falling back to defaults on absent or
// malformed values rather than failing the request.
func pageParams(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// ListUsersHandler returns one page of users with their devices.
// @Summary     List users
// @Description Paginated user listing with case-insensitive search over name, email and phone number
// @Tags        users
// @Produce     json
// @Param       page   query int    false "page number (1-based)"
// @Param       limit  query int    false "page size"
// @Param       search query string false "substring filter"
// @Success     200 {object} api.Response{data=api.UserListResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, limit := pageParams(c)
		search := c.QueryParam("search")

		users, total, err := listUsers(c.Request().Context(), db, page, limit, search)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		}

		return c.JSON(http.StatusOK, api.OK(
			api.NewUserListResponse(users, api.NewPagination(page, limit, total)),
		))
	}
}

// GetUserHandler returns a single user with devices.
// @Summary     Get user
// @Tags        users
// @Produce     json
// @Param       userId path int true "user ID"
// @Success     200 {object} api.Response{data=api.UserResponse}
// @Failure     404 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users/{userId} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.Error("User not found"))
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.Error("User not found"))
		}

		return c.JSON(http.StatusOK, api.OK(api.NewUserResponse(*user)))
	}
}

// ToggleUserStatusHandler flips a user's active flag atomically.
// @Summary     Toggle user status
// @Description Activate or deactivate a user account
// @Tags        users
// @Produce     json
// @Param       userId path int true "user ID"
// @Success     200 {object} api.Response{data=api.UserResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users/{userId}/toggle-status [put]
func ToggleUserStatusHandler(db database.DB, rdb cache.Cache, wp worker.Pool, cfg config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Error("User not found"))
		}

		user, err := toggleUserStatus(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return c.JSON(http.StatusBadRequest, api.Error("User not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Internal(err, cfg.IsDevelopment()))
		}

		// Active-user count changed; drop the cached dashboard snapshot.
		wp.Submit(func() {
			rdb.Del(context.Background(), cache.StatsKey)
		})

		message := "User deactivated successfully"
		if user.IsActive {
			message = "User activated successfully"
		}
		return c.JSON(http.StatusOK, api.OKMessage(message, api.NewUserResponse(*user)))
	}
}
