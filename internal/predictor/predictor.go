// Package predictor computes, off-chain, the address the token factory will
// assign to a new token deployed through CREATE2. The computation is a pure
// function of the deployer address and the token configuration: it performs
// no I/O, keeps no state, and is safe for concurrent use.
package predictor

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mintcast-org/mintcast/internal/domain"
)

// Result carries the predicted address together with the intermediate values
// integrators usually want to display or cross-check.
type Result struct {
	Address      common.Address
	Salt         common.Hash
	InitCodeHash common.Hash
}

// Predict computes the CREATE2 address the factory at deployer will assign
// to a token deployed with cfg:
//
//	initCodeHash = keccak256(creationCode ++ abiEncodedConstructorArgs)
//	address      = keccak256(0xff ++ deployer ++ salt ++ initCodeHash)[12:]
//
// Identical inputs always yield identical output; the result is directly
// verifiable against the factory's on-chain deployments.
func Predict(deployer common.Address, cfg domain.TokenConfig) (*Result, error) {
	args, err := EncodeConstructorArgs(cfg)
	if err != nil {
		return nil, err
	}

	initCode := make([]byte, 0, len(tokenCreationCode)+len(args))
	initCode = append(initCode, tokenCreationCode...)
	initCode = append(initCode, args...)
	initCodeHash := crypto.Keccak256Hash(initCode)

	salt := DeriveSalt(cfg.Admin, cfg.Salt)

	return &Result{
		Address:      crypto.CreateAddress2(deployer, salt, initCodeHash.Bytes()),
		Salt:         salt,
		InitCodeHash: initCodeHash,
	}, nil
}
