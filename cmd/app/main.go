package main

import (
	"venue/config"
	"venue/di"
	"venue/shared/logger"
	"venue/shared/timezone"
)

// @title Venue API
// @version 1.0
// @description Facility catalog, reservations, ratings and usage summary.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.Init(cfg)
	timezone.Init(cfg.App.Timezone)

	http, cleanup := di.InitializeService()
	defer cleanup()

	http.Serve()
}
