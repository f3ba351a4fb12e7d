package predictor

import (
	_ "embed"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// CreationCodeVersion identifies the factory release the embedded creation
// code was captured from. Bump it together with token_v1.hex whenever the
// factory is redeployed; a stale constant silently predicts wrong addresses.
const CreationCodeVersion = "token/v1"

// TokenSupply is the fixed total supply the factory hard-codes into every
// token constructor: 100 billion tokens with 18 decimals. It is part of the
// hashed init code, so it must match the factory constant exactly.
var TokenSupply, _ = new(big.Int).SetString("100000000000000000000000000000", 10)

//go:embed token_v1.hex
var tokenCreationCodeHex string

// tokenCreationCode is the creation bytecode the factory prepends to the
// ABI-encoded constructor arguments when it executes CREATE2.
var tokenCreationCode = common.FromHex(strings.TrimSpace(tokenCreationCodeHex))

// CreationCode returns a copy of the embedded token creation bytecode.
func CreationCode() []byte {
	out := make([]byte, len(tokenCreationCode))
	copy(out, tokenCreationCode)
	return out
}
