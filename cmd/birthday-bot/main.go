package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/glebk/birthday-bot/internal/app"
	"github.com/glebk/birthday-bot/internal/config"
	"github.com/glebk/birthday-bot/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize app", zap.Error(err))
	}

	if err := application.Run(ctx); err != nil {
		log.Fatal("App stopped with error", zap.Error(err))
	}
}
