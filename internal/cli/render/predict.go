package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mintcast-org/mintcast/internal/usecase"
)

// PredictRenderer renders prediction results for humans or machines.
type PredictRenderer struct {
	out  io.Writer
	json bool
}

// NewPredictRenderer creates a new predict renderer
func NewPredictRenderer(out io.Writer, json bool) *PredictRenderer {
	return &PredictRenderer{out: out, json: json}
}

var _ Renderer[*usecase.PredictTokenResult] = (*PredictRenderer)(nil)

// predictJSON is the machine-readable shape of a prediction.
type predictJSON struct {
	Address            string `json:"address"`
	Deployer           string `json:"deployer"`
	Salt               string `json:"salt"`
	InitCodeHash       string `json:"initCodeHash"`
	Network            string `json:"network,omitempty"`
	ChainID            uint64 `json:"chainId,omitempty"`
	Name               string `json:"name"`
	Symbol             string `json:"symbol"`
	Admin              string `json:"admin"`
	OriginatingChainID uint64 `json:"originatingChainId"`
}

// Render renders the prediction result
func (r *PredictRenderer) Render(result *usecase.PredictTokenResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	fmt.Fprintln(r.out, "🔮 Address Prediction")
	fmt.Fprintf(r.out, "📝 Token: %s (%s)\n", result.Token.Name, result.Token.Symbol)
	fmt.Fprintf(r.out, "👤 Admin: %s\n", result.Token.Admin.Hex())
	if result.Network != nil {
		fmt.Fprintf(r.out, "🌐 Network: %s (Chain ID: %d)\n", result.Network.Name, result.Network.ChainID)
	}
	fmt.Fprintf(r.out, "🏭 Factory: %s\n", result.Deployer.Hex())
	fmt.Fprintf(r.out, "📍 Predicted Address: %s\n", color.New(color.FgGreen, color.Bold).Sprint(result.Address.Hex()))
	fmt.Fprintf(r.out, "🧂 Salt: %s\n", result.Salt.Hex())
	fmt.Fprintf(r.out, "🔧 Init Code Hash: %s\n", result.InitCodeHash.Hex())

	if result.Network != nil && result.Network.ExplorerURL != "" {
		fmt.Fprintf(r.out, "🔍 %s/address/%s\n",
			color.New(color.Faint).Sprint(result.Network.ExplorerURL),
			result.Address.Hex())
	}

	return nil
}

func (r *PredictRenderer) renderJSON(result *usecase.PredictTokenResult) error {
	out := predictJSON{
		Address:            result.Address.Hex(),
		Deployer:           result.Deployer.Hex(),
		Salt:               result.Salt.Hex(),
		InitCodeHash:       result.InitCodeHash.Hex(),
		Name:               result.Token.Name,
		Symbol:             result.Token.Symbol,
		Admin:              result.Token.Admin.Hex(),
		OriginatingChainID: result.Token.OriginatingChainID,
	}
	if result.Network != nil {
		out.Network = result.Network.Name
		out.ChainID = result.Network.ChainID
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
