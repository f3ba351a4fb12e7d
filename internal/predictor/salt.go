package predictor

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DeriveSalt reproduces the factory's salt derivation: the CREATE2 salt is
// keccak256(abi.encode(admin, salt)), i.e. the admin left-padded to a full
// word followed by the raw 32-byte salt. Every admin/salt pair is accepted,
// including the zero address and an all-zero salt.
func DeriveSalt(admin common.Address, salt [32]byte) common.Hash {
	return crypto.Keccak256Hash(common.LeftPadBytes(admin.Bytes(), 32), salt[:])
}
