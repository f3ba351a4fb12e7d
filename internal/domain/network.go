package domain

import "github.com/ethereum/go-ethereum/common"

// Network describes a chain the token factory is deployed on.
type Network struct {
	// Name is the short identifier used on the command line (e.g. "base").
	Name string

	// ChainID is the EIP-155 chain ID.
	ChainID uint64

	// Factory is the deployer contract that executes CREATE2 on this chain.
	Factory common.Address

	// ExplorerURL is the block explorer base URL, if known.
	ExplorerURL string
}
