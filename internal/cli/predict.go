package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintcast-org/mintcast/internal/cli/render"
	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/domain"
	"github.com/mintcast-org/mintcast/internal/usecase"
)

// NewPredictCmd creates the predict command
func NewPredictCmd() *cobra.Command {
	var (
		configFile  string
		factoryAddr string
		adminAddr   string
		saltHex     string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the deployment address of a token",
		Long: `Predict the CREATE2 address the factory will assign to a token.

The token can be described with flags or a YAML file (--config); flags win
when both are given. The factory is resolved from the target network, or
passed directly with --factory.`,
		Example: `  mintcast predict -n base --name hullo --symbol hullo \
      --admin 0x052DCF6cB9dDD12C3F1350344CF6cE64E61bCd38 \
      --salt 0x000000000000000000000000000000005e95d213a71de2a3918637b124818091

  mintcast predict -n mainnet --config token.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate inputs before touching the app so malformed
			// fixed-width fields fail fast at the boundary.
			token, err := buildTokenConfig(cmd, configFile, adminAddr, saltHex)
			if err != nil {
				return err
			}

			params := usecase.PredictTokenParams{Token: *token}
			if factoryAddr != "" {
				factory, err := domain.ParseAddress(factoryAddr)
				if err != nil {
					return fmt.Errorf("--factory: %w", err)
				}
				params.Factory = &factory
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.PredictToken.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewPredictRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Token config file (YAML)")
	cmd.Flags().String("name", "", "Token name")
	cmd.Flags().String("symbol", "", "Token symbol")
	cmd.Flags().StringVar(&adminAddr, "admin", "", "Token admin address (20-byte hex)")
	cmd.Flags().StringVar(&saltHex, "salt", "", "Caller-chosen salt (32-byte hex)")
	cmd.Flags().String("image", "", "Token image URI")
	cmd.Flags().String("metadata", "", "Token metadata payload")
	cmd.Flags().String("token-context", "", "Token provenance context payload")
	cmd.Flags().Uint64("originating-chain-id", 0, "Chain the deployment request originates from")
	cmd.Flags().StringVar(&factoryAddr, "factory", "", "Factory address, bypassing network resolution")

	return cmd
}

// buildTokenConfig assembles the token description from --config and flags,
// with flags taking precedence over the file.
func buildTokenConfig(cmd *cobra.Command, configFile, adminAddr, saltHex string) (*domain.TokenConfig, error) {
	token := &domain.TokenConfig{}

	if configFile != "" {
		file, err := config.LoadTokenFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg, err := file.ToTokenConfig()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
		*token = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		token.Name, _ = flags.GetString("name")
	}
	if flags.Changed("symbol") {
		token.Symbol, _ = flags.GetString("symbol")
	}
	if flags.Changed("image") {
		token.Image, _ = flags.GetString("image")
	}
	if flags.Changed("metadata") {
		token.Metadata, _ = flags.GetString("metadata")
	}
	if flags.Changed("token-context") {
		token.Context, _ = flags.GetString("token-context")
	}
	if flags.Changed("originating-chain-id") {
		token.OriginatingChainID, _ = flags.GetUint64("originating-chain-id")
	}

	if adminAddr != "" {
		admin, err := domain.ParseAddress(adminAddr)
		if err != nil {
			return nil, fmt.Errorf("--admin: %w", err)
		}
		token.Admin = admin
	}
	if saltHex != "" {
		salt, err := domain.ParseSalt(saltHex)
		if err != nil {
			return nil, fmt.Errorf("--salt: %w", err)
		}
		token.Salt = salt
	}

	return token, nil
}
