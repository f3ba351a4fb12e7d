package usecase

import (
	"context"

	"github.com/mintcast-org/mintcast/internal/domain"
)

// ListNetworksResult contains the factory deployments known to the resolver.
type ListNetworksResult struct {
	Networks []*domain.Network
}

// ListNetworks is the use case for listing supported networks and their
// factory addresses.
type ListNetworks struct {
	resolver FactoryResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver FactoryResolver) *ListNetworks {
	return &ListNetworks{resolver: resolver}
}

// Run executes the list networks use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	return &ListNetworksResult{Networks: uc.resolver.List(ctx)}, nil
}
