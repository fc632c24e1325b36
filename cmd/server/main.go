package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/cloudx/internal/app"
	"github.com/nfrund/cloudx/internal/config"
	"github.com/nfrund/cloudx/internal/logging"
)

func main() {
	cfg := config.New()
	slog.SetDefault(logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg).Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
