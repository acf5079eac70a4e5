package main

import (
	"os"

	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
	"github.com/yigit/eamcet-predictor/internal/server"
)

// @title EAMCET College Predictor API
// @version 1.0
// @description Admission probability, reverse rank and college analytics over EAMCET closing ranks
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	// NewServer orchestrates config, database, dependencies and router setup
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
