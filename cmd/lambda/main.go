package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mmynk/nomikai/internal/app"
	"github.com/mmynk/nomikai/internal/config"
	"github.com/mmynk/nomikai/internal/lambdaadapter"
	"github.com/mmynk/nomikai/pkg/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	// CloudWatch ingests JSON lines.
	logging.Setup(cfg.LogLevel, "json")

	a, err := app.New(ctx, cfg, os.Getenv)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	lambda.Start(lambdaadapter.New(a.Handler).Handle)
}
