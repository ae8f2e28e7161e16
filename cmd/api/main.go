package main

import (
	"context"
	"os"
	"time"

	"stockboard/cmd/app"
	"stockboard/internal/config"
	"stockboard/internal/util"
)

func main() {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel)
	logger := util.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	handler, err := app.App(ctx, cfg)
	cancel()
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Serve("community-api", cfg.ServerPort, handler); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
