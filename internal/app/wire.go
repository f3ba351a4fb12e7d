//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/mintcast-org/mintcast/internal/adapters/factory"
	"github.com/mintcast-org/mintcast/internal/adapters/interactive"
	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/logging"
	"github.com/mintcast-org/mintcast/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.NewLogger,

		// Adapters
		factory.NewResolver,
		wire.Bind(new(usecase.FactoryResolver), new(*factory.Resolver)),
		interactive.NewNetworkPicker,
		wire.Bind(new(usecase.NetworkPicker), new(*interactive.NetworkPicker)),

		// Use cases
		usecase.NewPredictToken,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
