package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mintcast-org/mintcast/internal/domain"
)

// TokenFile is the YAML description of a token passed via --config:
//
//	name: hullo
//	symbol: hullo
//	admin: "0x052DCF6cB9dDD12C3F1350344CF6cE64E61bCd38"
//	salt: "0x000000000000000000000000000000005e95d213a71de2a3918637b124818091"
//	image: "ipfs://..."
//	originating_chain_id: 1
type TokenFile struct {
	Name               string `yaml:"name"`
	Symbol             string `yaml:"symbol"`
	Admin              string `yaml:"admin"`
	Salt               string `yaml:"salt"`
	Image              string `yaml:"image"`
	Metadata           string `yaml:"metadata"`
	Context            string `yaml:"context"`
	OriginatingChainID uint64 `yaml:"originating_chain_id"`
}

// LoadTokenFile reads and parses a token config file.
func LoadTokenFile(path string) (*TokenFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token config: %w", err)
	}

	var file TokenFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &file, nil
}

// ToTokenConfig converts the file into a domain config, parsing the
// fixed-width fields strictly. Admin and salt may be omitted entirely (zero
// values are legal inputs to the predictor) but a present value must decode
// to exactly 20 respectively 32 bytes.
func (f *TokenFile) ToTokenConfig() (domain.TokenConfig, error) {
	cfg := domain.TokenConfig{
		Name:               f.Name,
		Symbol:             f.Symbol,
		Image:              f.Image,
		Metadata:           f.Metadata,
		Context:            f.Context,
		OriginatingChainID: f.OriginatingChainID,
	}

	if f.Admin != "" {
		admin, err := domain.ParseAddress(f.Admin)
		if err != nil {
			return domain.TokenConfig{}, fmt.Errorf("admin: %w", err)
		}
		cfg.Admin = admin
	}

	if f.Salt != "" {
		salt, err := domain.ParseSalt(f.Salt)
		if err != nil {
			return domain.TokenConfig{}, fmt.Errorf("salt: %w", err)
		}
		cfg.Salt = salt
	}

	return cfg, nil
}
