package usecase

import (
	"context"

	"github.com/mintcast-org/mintcast/internal/domain"
)

// FactoryResolver maps network names and chain IDs to factory deployments.
type FactoryResolver interface {
	Resolve(ctx context.Context, input string) (*domain.Network, error)
	ByChainID(chainID uint64) (*domain.Network, error)
	List(ctx context.Context) []*domain.Network
}

// NetworkPicker interactively selects one of several networks.
type NetworkPicker interface {
	Pick(ctx context.Context, networks []*domain.Network) (*domain.Network, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}
