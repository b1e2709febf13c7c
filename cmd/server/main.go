package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlagunovs/watertrack/internal/config"
	"github.com/mlagunovs/watertrack/internal/logging"
	"github.com/mlagunovs/watertrack/internal/server"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	logger.Info(ctx, "starting status server", "addr", cfg.HTTPAddr)
	if err := server.New(cfg.HTTPAddr, logger).Run(ctx); err != nil {
		logger.Error(ctx, "server error", "error", err.Error())
		os.Exit(1)
	}
}
