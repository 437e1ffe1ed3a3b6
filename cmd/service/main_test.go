package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/service"
	"wallet-admin/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	ensureDefaultAdmin = service.EnsureDefaultAdmin
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("JWT_SECRET", "s")
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Email string `validate:"required,email"`
	}
	require.NoError(t, cv.Validate(&s{Email: "admin@wallet.local"}))
	require.Error(t, cv.Validate(&s{Email: "not-an-email"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setRequiredEnv(t)
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("WORKER_COUNT", "2")

	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://test", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	ensureDefaultAdmin = func(ctx context.Context, db database.DB, email, password string) error {
		called["bootstrap"] = true
		require.Equal(t, "admin@wallet.local", email)
		return nil
	}
	newWorkerPool = func(n int) worker.Pool {
		require.Equal(t, 2, n)
		called["pool"] = true
		return worker.NewPool(1)
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}

	require.NoError(t, run())
	for _, step := range []string{"pgx", "redis", "migrate", "bootstrap", "pool", "start", "dbClose", "redisClose"} {
		require.True(t, called[step], step)
	}
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")
	require.Error(t, run())

	setRequiredEnv(t)
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	ensureDefaultAdmin = func(context.Context, database.DB, string, string) error { return errors.New("bootstrap") }
	require.Error(t, run())

	ensureDefaultAdmin = func(context.Context, database.DB, string, string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setRequiredEnv(t)
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	ensureDefaultAdmin = func(context.Context, database.DB, string, string) error { return nil }
	startServer = func(*echo.Echo, string) error { return nil }
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setRequiredEnv(t)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
