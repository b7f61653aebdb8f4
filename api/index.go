package handler

import (
	"net/http"
	"sync"

	"venue/config"
	"venue/di"
	"venue/shared/logger"
	"venue/shared/timezone"
)

var (
	app     http.Handler
	appOnce sync.Once
)

// Handler is the serverless entrypoint. The container is built once per
// instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	appOnce.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)
		timezone.Init(cfg.App.Timezone)

		app, _ = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
