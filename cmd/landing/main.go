package main

import (
	"os"

	"stockboard/cmd/app"
	"stockboard/internal/config"
	"stockboard/internal/router"
	"stockboard/internal/util"
)

func main() {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel)

	if err := app.Serve("landing", cfg.ServerPort, router.NewLandingRouter()); err != nil {
		util.GetLogger().Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
