package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/mintcast-org/mintcast/internal/domain"
	"github.com/mintcast-org/mintcast/internal/usecase"
)

// NetworksRenderer renders the known factory deployments.
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{out: out, json: json}
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)

// Render renders the networks list
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	if r.json {
		return r.renderJSON(result.Networks)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"Network", "Chain ID", "Factory", "Explorer"})
	for _, n := range result.Networks {
		t.AppendRow(table.Row{n.Name, n.ChainID, n.Factory.Hex(), n.ExplorerURL})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	return nil
}

type networkJSON struct {
	Name        string `json:"name"`
	ChainID     uint64 `json:"chainId"`
	Factory     string `json:"factory"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

func (r *NetworksRenderer) renderJSON(networks []*domain.Network) error {
	out := lo.Map(networks, func(n *domain.Network, _ int) networkJSON {
		return networkJSON{
			Name:        n.Name,
			ChainID:     n.ChainID,
			Factory:     n.Factory.Hex(),
			ExplorerURL: n.ExplorerURL,
		}
	})

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
