package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/domain"
	"github.com/mintcast-org/mintcast/internal/predictor"
)

// PredictTokenParams contains parameters for a token address prediction
type PredictTokenParams struct {
	// Token is the fully populated token configuration.
	Token domain.TokenConfig

	// Network overrides the network from RuntimeConfig when set.
	Network string

	// Factory bypasses network resolution entirely when set, for callers
	// that already know the deployer address.
	Factory *common.Address
}

// PredictTokenResult is the rendered outcome of a prediction.
type PredictTokenResult struct {
	Token        domain.TokenConfig
	Network      *domain.Network
	Deployer     common.Address
	Address      common.Address
	Salt         common.Hash
	InitCodeHash common.Hash
}

// PredictToken is the use case for predicting a token's deployment address
// before the deployment transaction exists.
type PredictToken struct {
	config   *config.RuntimeConfig
	resolver FactoryResolver
	picker   NetworkPicker
	sink     ProgressSink
	log      *slog.Logger
}

// NewPredictToken creates a new PredictToken use case
func NewPredictToken(
	cfg *config.RuntimeConfig,
	resolver FactoryResolver,
	picker NetworkPicker,
	sink ProgressSink,
	log *slog.Logger,
) *PredictToken {
	return &PredictToken{
		config:   cfg,
		resolver: resolver,
		picker:   picker,
		sink:     sink,
		log:      log,
	}
}

// Run resolves the deployer for the target network and computes the
// predicted address. The prediction itself is pure; everything fallible here
// is input resolution.
func (uc *PredictToken) Run(ctx context.Context, params PredictTokenParams) (*PredictTokenResult, error) {
	result := &PredictTokenResult{Token: params.Token}

	if params.Factory != nil {
		result.Deployer = *params.Factory
	} else {
		network, err := uc.resolveNetwork(ctx, params.Network)
		if err != nil {
			return nil, err
		}
		result.Network = network
		result.Deployer = network.Factory
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "predicting",
		Message: "Computing deployment address",
		Spinner: true,
	})

	uc.log.Debug("predicting token address",
		"deployer", result.Deployer,
		"admin", params.Token.Admin,
		"name", params.Token.Name,
		"creationCode", predictor.CreationCodeVersion,
	)

	prediction, err := predictor.Predict(result.Deployer, params.Token)
	if err != nil {
		return nil, err
	}
	result.Address = prediction.Address
	result.Salt = prediction.Salt
	result.InitCodeHash = prediction.InitCodeHash

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Address computed",
	})

	return result, nil
}

func (uc *PredictToken) resolveNetwork(ctx context.Context, override string) (*domain.Network, error) {
	name := override
	if name == "" {
		name = uc.config.Network
	}
	if name != "" {
		return uc.resolver.Resolve(ctx, name)
	}

	// No network anywhere: fall back to an interactive pick.
	return uc.picker.Pick(ctx, uc.resolver.List(ctx))
}
