package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/domain"
)

// NetworkPicker prompts the user to choose a target network when none was
// given on the command line.
type NetworkPicker struct {
	config *config.RuntimeConfig
}

// NewNetworkPicker creates a new network picker
func NewNetworkPicker(cfg *config.RuntimeConfig) *NetworkPicker {
	return &NetworkPicker{config: cfg}
}

// Pick selects one network from the list, prompting interactively. In
// non-interactive mode selection is impossible and the caller gets
// ErrNoNetwork to surface as a usage error.
func (p *NetworkPicker) Pick(ctx context.Context, networks []*domain.Network) (*domain.Network, error) {
	if p.config.NonInteractive {
		return nil, fmt.Errorf("%w: pass --network in non-interactive mode", domain.ErrNoNetwork)
	}
	if len(networks) == 0 {
		return nil, domain.ErrNoNetwork
	}
	if len(networks) == 1 {
		return networks[0], nil
	}

	options := make([]string, len(networks))
	for i, n := range networks {
		options[i] = fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	prompt := promptui.Select{
		Label:             "Select target network",
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher: func(input string, index int) bool {
			if input == "" {
				return true
			}
			matches := fuzzy.Find(strings.ToLower(input), []string{strings.ToLower(options[index])})
			return len(matches) > 0
		},
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("network selection cancelled: %w", err)
	}
	return networks[index], nil
}
