package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	TokenTTL      time.Duration
	StatsCacheTTL time.Duration
	WorkerCount   int

	DefaultAdminEmail    string
	DefaultAdminPassword string
}

// Load reads a .env file if present, then the environment, and validates
// the required settings.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                 fallback(os.Getenv("PORT"), "8080"),
		Env:                  fallback(os.Getenv("APP_ENV"), "development"),
		DatabaseURL:          strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:            strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:            strings.TrimSpace(os.Getenv("JWT_SECRET")),
		DefaultAdminEmail:    strings.ToLower(fallback(os.Getenv("DEFAULT_ADMIN_EMAIL"), "admin@wallet.local")),
		DefaultAdminPassword: fallback(os.Getenv("DEFAULT_ADMIN_PASSWORD"), "Admin@test"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 1); err != nil {
		return Config{}, err
	}
	ttlHours, err := intEnv("JWT_TTL_HOURS", 8)
	if err != nil {
		return Config{}, err
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour
	cacheSeconds, err := intEnv("STATS_CACHE_TTL_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.StatsCacheTTL = time.Duration(cacheSeconds) * time.Second

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// IsDevelopment reports whether internal error details may be exposed.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func intEnv(name string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}
