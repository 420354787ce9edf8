// Package main implements the entry point for the jobdesk API server,
// a job-board backend exposing companies, jobs, users and applications
// over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobdesk/jobdesk-api/internal/api"
	"github.com/jobdesk/jobdesk-api/internal/api/middleware"
	"github.com/jobdesk/jobdesk-api/internal/config"
	"github.com/jobdesk/jobdesk-api/internal/platform/logger"
	"github.com/jobdesk/jobdesk-api/internal/platform/postgres"
	"github.com/jobdesk/jobdesk-api/internal/service/auth"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires configuration, storage, services and the HTTP server, then
// blocks until the server stops or a shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := runMigrations(db, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}
	hasher := auth.NewBcryptHasher()

	companies := postgres.NewPostgresCompanyStore(db, log)
	jobs := postgres.NewPostgresJobStore(db, log)
	users := postgres.NewPostgresUserStore(db, log)

	router := newRouter(routerDeps{
		authContext: middleware.NewAuthContext(tokens),
		auth:        api.NewAuthHandler(users, tokens, hasher, hasher),
		companies:   api.NewCompanyHandler(companies, jobs),
		jobs:        api.NewJobHandler(jobs),
		users:       api.NewUserHandler(users, tokens, hasher),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
