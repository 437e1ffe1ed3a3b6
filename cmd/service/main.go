// @title        Wallet Admin API
// @version      1.0
// @description  Administrative back office for the savings/wallet platform
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"wallet-admin/internal/cache"
	"wallet-admin/internal/config"
	"wallet-admin/internal/database"
	"wallet-admin/internal/router"
	"wallet-admin/internal/service"
	"wallet-admin/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "wallet-admin/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig         = config.Load
	newPgxPool         = database.NewPgxPool
	newRedisClient     = cache.NewRedisClient
	runMigrationsFn    = database.RunMigrations
	ensureDefaultAdmin = service.EnsureDefaultAdmin
	newWorkerPool      = worker.NewPool
	startServer        = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc           = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %v", err)
	}

	if err := ensureDefaultAdmin(context.Background(), db, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
		return fmt.Errorf("default admin bootstrap failed: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.IsDevelopment()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, wp, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.HTTPAddress())
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
