package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/config"
	"todoapp/internal/database"
	"todoapp/internal/logger"
	"todoapp/internal/router"
	"todoapp/internal/services"
	"todoapp/internal/validator"
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../internal/docs

// @title           Todo App API
// @version         1.0
// @description     REST API for managing todos and the categories they are filed under.

// @host      localhost:5000
// @BasePath  /api

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(os.Getenv("ENV"), "info")
		logger.Get().Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if cfg.AutoMigrate {
		if err := dbManager.RunMigrations(cfg.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	db := dbManager.DB()
	engine := router.New(router.Deps{
		Todos:      services.NewTodoService(db),
		Categories: services.NewCategoryService(db),
		Activity:   services.NewActivityService(db),
		DB:         dbManager,
		CORSOrigin: cfg.CORSOrigin,
		Version:    version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Todo API server on port %s (%s)", cfg.Port, cfg.Env)
		log.Infof("Swagger documentation available at http://localhost:%s/api-docs/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
