package handler

import (
	"net/http"
	"os"
	"shareit/config"
	"shareit/di"
	"shareit/shared/logger"
	"sync"

	transport "shareit/transport/http"
)

var (
	once    sync.Once
	service *transport.HTTP
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetOutput(cfg, os.Stdout)
		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
