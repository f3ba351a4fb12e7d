// Package factory resolves which deployer contract executes CREATE2 on a
// given chain. The predictor core treats the deployer as an opaque input;
// everything chain-specific lives here.
package factory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/domain"
)

// The factory is itself deployed deterministically, so it lives at the same
// address on every supported chain. Per-chain deviations (forks, local anvil
// instances) come in through mintcast.toml overrides.
var defaultFactory = common.HexToAddress("0xE85A59c628F7d27878ACeB4bf3b35733630083a9")

// Resolver maps network names and chain IDs to factory deployments.
type Resolver struct {
	networks  map[string]*domain.Network
	byChainID map[uint64]*domain.Network
}

// NewResolver creates a resolver seeded with the built-in factory table and
// extended by any overrides from the runtime configuration.
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	r := &Resolver{
		networks:  make(map[string]*domain.Network),
		byChainID: make(map[uint64]*domain.Network),
	}

	defaults := []domain.Network{
		{ChainID: 1, Name: "mainnet", Factory: defaultFactory, ExplorerURL: "https://etherscan.io"},
		{ChainID: 10, Name: "optimism", Factory: defaultFactory, ExplorerURL: "https://optimistic.etherscan.io"},
		{ChainID: 137, Name: "polygon", Factory: defaultFactory, ExplorerURL: "https://polygonscan.com"},
		{ChainID: 8453, Name: "base", Factory: defaultFactory, ExplorerURL: "https://basescan.org"},
		{ChainID: 42161, Name: "arbitrum", Factory: defaultFactory, ExplorerURL: "https://arbiscan.io"},
		{ChainID: 84532, Name: "base-sepolia", Factory: defaultFactory, ExplorerURL: "https://sepolia.basescan.org"},
		{ChainID: 11155111, Name: "sepolia", Factory: defaultFactory, ExplorerURL: "https://sepolia.etherscan.io"},
		{ChainID: 31337, Name: "anvil", Factory: defaultFactory},
	}
	for i := range defaults {
		r.add(&defaults[i])
	}

	for chainID, factory := range cfg.FactoryOverrides {
		if network, ok := r.byChainID[chainID]; ok {
			network.Factory = factory
			continue
		}
		r.add(&domain.Network{
			ChainID: chainID,
			Name:    fmt.Sprintf("chain-%d", chainID),
			Factory: factory,
		})
	}

	return r
}

func (r *Resolver) add(network *domain.Network) {
	r.networks[strings.ToLower(network.Name)] = network
	r.byChainID[network.ChainID] = network
}

// Resolve looks a network up by name or decimal chain ID. Unknown names get
// close-match suggestions; unknown chain IDs are a hard error, since guessing
// a factory address would quietly predict garbage.
func (r *Resolver) Resolve(ctx context.Context, input string) (*domain.Network, error) {
	if input == "" {
		return nil, domain.ErrNoNetwork
	}

	if network, ok := r.networks[strings.ToLower(input)]; ok {
		return network, nil
	}

	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		if network, ok := r.byChainID[chainID]; ok {
			return network, nil
		}
		return nil, fmt.Errorf("%w: no factory known for chain %d", domain.ErrUnknownNetwork, chainID)
	}

	return nil, domain.UnknownNetworkErr{
		Input:       input,
		Suggestions: r.suggest(input),
	}
}

// ByChainID returns the factory deployment for a chain ID.
func (r *Resolver) ByChainID(chainID uint64) (*domain.Network, error) {
	if network, ok := r.byChainID[chainID]; ok {
		return network, nil
	}
	return nil, fmt.Errorf("%w: no factory known for chain %d", domain.ErrUnknownNetwork, chainID)
}

// List returns all known factory deployments sorted by chain ID.
func (r *Resolver) List(ctx context.Context) []*domain.Network {
	networks := lo.Values(r.byChainID)
	sort.Slice(networks, func(i, j int) bool { return networks[i].ChainID < networks[j].ChainID })
	return networks
}

func (r *Resolver) suggest(input string) []string {
	names := lo.Keys(r.networks)
	matches := fuzzy.Find(strings.ToLower(input), names)
	suggestions := make([]string, 0, 3)
	for i, match := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}
