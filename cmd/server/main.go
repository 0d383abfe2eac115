package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/handler"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/repository"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/config"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/services"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger(logging.LevelError, "json").Error(ctx, "failed to load config", "error", err)
		return err
	}

	logger := logging.NewLogger(logging.LogLevel(cfg.LogLevel), cfg.LogFormat)

	// Initialize Repository
	repo, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to connect to database", "driver", cfg.Driver(), "error", err)
		return err
	}
	defer repo.Close()

	// Initialize Service
	service := services.NewLinkService(repo, logger)

	// Initialize Router
	mux, err := handler.NewRouter(cfg, service, logger)
	if err != nil {
		logger.Error(ctx, "failed to build router", "error", err)
		return err
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server starting", "port", cfg.Port, "env", cfg.AppEnv, "driver", cfg.Driver(), "csrf", cfg.CSRFSecret != "")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error(ctx, "server failed", "error", err)
		return err
	case sig := <-quit:
		logger.Info(ctx, "shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", "error", err)
		return err
	}

	logger.Info(ctx, "server exited")
	return nil
}
