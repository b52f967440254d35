package main

import (
	"os"

	"github.com/ogulcan/coursepilot/internal/pkg/logger"
	"github.com/ogulcan/coursepilot/internal/server"
)

// @title CoursePilot API
// @version 1.0
// @description Schedule assembly service: builds conflict-free weekly class schedules from the course catalog, honoring prerequisites, class standing and student preferences.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
