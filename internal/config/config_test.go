package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/wallet")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("STATS_CACHE_TTL_SECONDS", "")
	t.Setenv("WORKER_COUNT", "")
	t.Setenv("DEFAULT_ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, 8*time.Hour, cfg.TokenTTL)
	require.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, "admin@wallet.local", cfg.DefaultAdminEmail)
}

func TestLoadRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.EqualError(t, err, "DATABASE_URL is required")

	setRequired(t)
	t.Setenv("REDIS_ADDR", "")
	_, err = Load()
	require.EqualError(t, err, "REDIS_ADDR is required")

	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	require.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_TTL_HOURS", "1")
	t.Setenv("STATS_CACHE_TTL_SECONDS", "0")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("DEFAULT_ADMIN_EMAIL", "Root@Example.Com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddress())
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, time.Duration(0), cfg.StatsCacheTTL)
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, "root@example.com", cfg.DefaultAdminEmail)
}

func TestLoadBadInts(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_DB", "nope")
	_, err := Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("REDIS_DB", "0")
	t.Setenv("JWT_TTL_HOURS", "-1")
	_, err = Load()
	require.Error(t, err)
}
