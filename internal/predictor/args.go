package predictor

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/mintcast-org/mintcast/internal/domain"
)

var (
	stringType, _  = abi.NewType("string", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)
	addressType, _ = abi.NewType("address", "", nil)
)

// constructorArgs pins the token constructor signature:
//
//	constructor(string name, string symbol, uint256 supply, address admin,
//	            string image, string metadata, string context,
//	            uint256 originatingChainId)
//
// Field order and the dynamic/static split are part of the hashed init code.
// Reordering a field here produces a syntactically valid encoding that hashes
// to the wrong address, so this list is version-locked to the factory
// alongside the embedded creation code.
var constructorArgs = abi.Arguments{
	{Name: "name_", Type: stringType},
	{Name: "symbol_", Type: stringType},
	{Name: "supply_", Type: uint256Type},
	{Name: "admin_", Type: addressType},
	{Name: "image_", Type: stringType},
	{Name: "metadata_", Type: stringType},
	{Name: "context_", Type: stringType},
	{Name: "originatingChainId_", Type: uint256Type},
}

// EncodeConstructorArgs produces the exact byte sequence the factory appends
// to the creation code before hashing. Inputs are encoded as-is; empty
// strings become zero-length dynamic fields. The supply word is the frozen
// factory constant, not caller input.
func EncodeConstructorArgs(cfg domain.TokenConfig) ([]byte, error) {
	packed, err := constructorArgs.Pack(
		cfg.Name,
		cfg.Symbol,
		TokenSupply,
		cfg.Admin,
		cfg.Image,
		cfg.Metadata,
		cfg.Context,
		new(big.Int).SetUint64(cfg.OriginatingChainID),
	)
	if err != nil {
		return nil, fmt.Errorf("packing constructor args: %w", err)
	}
	return packed, nil
}
