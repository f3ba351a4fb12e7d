package cli

import (
	"github.com/spf13/cobra"

	"github.com/mintcast-org/mintcast/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List networks the factory is deployed on",
		Long: `List all networks with a known factory deployment.

Built-in entries can be replaced, and new chains added, through the
[factories] table in mintcast.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
