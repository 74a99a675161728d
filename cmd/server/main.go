package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/nomikai/internal/app"
	"github.com/mmynk/nomikai/internal/config"
	"github.com/mmynk/nomikai/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	a, err := app.New(ctx, cfg, os.Getenv)
	if err != nil {
		if errors.Is(err, config.ErrNoConnectionString) {
			slog.Error("No database connection string configured", "error", err)
		} else {
			slog.Error("Failed to start", "error", err)
		}
		os.Exit(1)
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h2c.NewHandler(a.Handler, &http2.Server{}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "address", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
