package main

import (
	"log"
	"os"
	"time"

	"weathereats/config"
	"weathereats/di"
	"weathereats/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := util.NewLogger(cfg.LogLevel, os.Stdout)

	container, err := di.NewContainer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}

	if _, err := container.VenueCatalogLoader.Load(); err != nil {
		logger.Warn("initial catalog load failed, serving without stored venues", "error", err)
	}
	container.VenueCatalogLoader.StartPeriodicJob(time.Duration(cfg.CatalogReloadMinutes) * time.Minute)

	if err := container.WeatherEatsHttpServer.Start(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
