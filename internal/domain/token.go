package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TokenConfig describes the token a caller intends to deploy through the
// factory. It carries exactly the fields the factory feeds into the token
// constructor; the predictor never validates string contents or lengths,
// since the factory is the authority on what is deployable.
type TokenConfig struct {
	// Name and Symbol are passed through verbatim. Empty values are legal.
	Name   string
	Symbol string

	// Admin is the token administrator. The zero address is a valid admin.
	Admin common.Address

	// Salt is the caller-chosen component of the CREATE2 salt. Any bit
	// pattern is valid; the factory mixes it with Admin before deploying.
	Salt [32]byte

	// Image, Metadata and Context are opaque payloads the factory stores
	// on the token (image URI, JSON metadata, provenance context).
	Image    string
	Metadata string
	Context  string

	// OriginatingChainID is the chain the deployment request originated
	// from, which is not necessarily the chain being deployed to.
	OriginatingChainID uint64
}

// ParseAddress decodes a 0x-prefixed hex string into an address, rejecting
// any input that is not exactly 20 bytes. common.HexToAddress silently
// truncates or pads, which is exactly the failure mode a wrong predicted
// address grows out of, so boundary parsing is strict.
func ParseAddress(s string) (common.Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: %q is %d bytes, want %d", ErrInvalidAddress, s, len(b), common.AddressLength)
	}
	return common.BytesToAddress(b), nil
}

// ParseSalt decodes a 0x-prefixed hex string into a 32-byte salt. Short or
// long inputs are rejected rather than padded.
func ParseSalt(s string) ([32]byte, error) {
	var salt [32]byte
	b, err := hexutil.Decode(s)
	if err != nil {
		return salt, fmt.Errorf("%w: %q: %v", ErrInvalidSalt, s, err)
	}
	if len(b) != len(salt) {
		return salt, fmt.Errorf("%w: %q is %d bytes, want %d", ErrInvalidSalt, s, len(b), len(salt))
	}
	copy(salt[:], b)
	return salt, nil
}
