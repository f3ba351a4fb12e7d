package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	"github.com/mintcast-org/mintcast/internal/domain"
)

// projectFile models mintcast.toml:
//
//	[factories]
//	8453  = "0xE85A59c628F7d27878ACeB4bf3b35733630083a9"
//	31337 = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
type projectFile struct {
	Factories map[string]string `toml:"factories"`
}

// LoadFactoryOverrides reads per-chain factory addresses from mintcast.toml
// in projectRoot. A missing file yields an empty map; a malformed entry is an
// error, since a mistyped factory address silently shifts every prediction.
func LoadFactoryOverrides(projectRoot string) (map[uint64]common.Address, error) {
	overrides := make(map[uint64]common.Address)

	path := filepath.Join(projectRoot, "mintcast.toml")
	if _, err := os.Stat(path); err != nil {
		return overrides, nil
	}

	var file projectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for rawChainID, rawAddr := range file.Factories {
		chainID, err := strconv.ParseUint(rawChainID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain ID %q in %s: %w", rawChainID, path, err)
		}
		addr, err := domain.ParseAddress(rawAddr)
		if err != nil {
			return nil, fmt.Errorf("factory for chain %d in %s: %w", chainID, path, err)
		}
		overrides[chainID] = addr
	}

	return overrides, nil
}
