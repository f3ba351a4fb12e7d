package app

import (
	"log/slog"

	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	PredictToken *usecase.PredictToken
	ListNetworks *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	predictToken *usecase.PredictToken,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:       cfg,
		Logger:       logger,
		PredictToken: predictToken,
		ListNetworks: listNetworks,
	}, nil
}
