package main

import (
	"context"
	"log"

	"github.com/viola-academy/academy_app/internal/app"
	"github.com/viola-academy/academy_app/internal/config"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	logger.Sugar().Infow("Starting academy server",
		"environment", cfg.Environment,
		"addr", cfg.HTTPAddr)

	if err := app.Run(context.Background(), cfg, logger); err != nil {
		logger.Sugar().Fatalw("Server stopped with error", "error", err)
	}
}
