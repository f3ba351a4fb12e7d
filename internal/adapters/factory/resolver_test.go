package factory

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintcast-org/mintcast/internal/config"
	"github.com/mintcast-org/mintcast/internal/domain"
)

func TestResolveByName(t *testing.T) {
	r := NewResolver(&config.RuntimeConfig{})
	ctx := context.Background()

	network, err := r.Resolve(ctx, "base")
	require.NoError(t, err)
	assert.Equal(t, uint64(8453), network.ChainID)
	assert.NotEqual(t, common.Address{}, network.Factory)

	// Lookup is case-insensitive
	upper, err := r.Resolve(ctx, "BASE")
	require.NoError(t, err)
	assert.Equal(t, network, upper)
}

func TestResolveByChainID(t *testing.T) {
	r := NewResolver(&config.RuntimeConfig{})

	network, err := r.Resolve(context.Background(), "8453")
	require.NoError(t, err)
	assert.Equal(t, "base", network.Name)

	byID, err := r.ByChainID(8453)
	require.NoError(t, err)
	assert.Equal(t, network, byID)
}

func TestResolveUnknown(t *testing.T) {
	r := NewResolver(&config.RuntimeConfig{})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoNetwork)

	_, err = r.Resolve(ctx, "999999")
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)

	// A near-miss name should come back with a suggestion
	_, err = r.Resolve(ctx, "bse")
	require.ErrorIs(t, err, domain.ErrUnknownNetwork)
	assert.Contains(t, err.Error(), "base")
}

func TestResolverOverrides(t *testing.T) {
	anvilFactory := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	forkFactory := common.HexToAddress("0x2222222222222222222222222222222222222222")

	r := NewResolver(&config.RuntimeConfig{
		FactoryOverrides: map[uint64]common.Address{
			31337: anvilFactory, // replace a known network's factory
			99999: forkFactory,  // add a brand new chain
		},
	})
	ctx := context.Background()

	anvil, err := r.Resolve(ctx, "anvil")
	require.NoError(t, err)
	assert.Equal(t, anvilFactory, anvil.Factory)

	fork, err := r.Resolve(ctx, "99999")
	require.NoError(t, err)
	assert.Equal(t, forkFactory, fork.Factory)
	assert.Equal(t, "chain-99999", fork.Name)
}

func TestListSorted(t *testing.T) {
	r := NewResolver(&config.RuntimeConfig{})

	networks := r.List(context.Background())
	require.NotEmpty(t, networks)
	for i := 1; i < len(networks); i++ {
		assert.Less(t, networks[i-1].ChainID, networks[i].ChainID)
	}
}
