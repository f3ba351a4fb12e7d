package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidAddress is returned when an address field is not exactly 20 bytes
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidSalt is returned when a salt field is not exactly 32 bytes
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrUnknownNetwork is returned when no factory is known for a network
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoNetwork is returned when no network was specified and none can be prompted for
	ErrNoNetwork = errors.New("no network specified")
)

// UnknownNetworkErr carries close-match suggestions for a failed network lookup.
type UnknownNetworkErr struct {
	Input       string
	Suggestions []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network %q", e.Input)
	}
	return fmt.Sprintf("unknown network %q (did you mean %s?)", e.Input, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkErr) Unwrap() error {
	return ErrUnknownNetwork
}
