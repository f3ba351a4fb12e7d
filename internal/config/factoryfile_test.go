package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFactoryOverrides(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "mintcast.toml"), []byte(`
[factories]
31337 = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
8453  = "0x1111111111111111111111111111111111111111"
`), 0o644))

	overrides, err := LoadFactoryOverrides(root)
	require.NoError(t, err)
	assert.Len(t, overrides, 2)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), overrides[31337])
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), overrides[8453])
}

func TestLoadFactoryOverridesMissingFile(t *testing.T) {
	overrides, err := LoadFactoryOverrides(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestLoadFactoryOverridesRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "non-numeric chain id",
			toml: "[factories]\nbase = \"0x5FbDB2315678afecb367f032d93F642f64180aa3\"\n",
		},
		{
			name: "truncated factory address",
			toml: "[factories]\n8453 = \"0x5FbDB231\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, "mintcast.toml"), []byte(tt.toml), 0o644))

			_, err := LoadFactoryOverrides(root)
			assert.Error(t, err)
		})
	}
}

func TestProvider(t *testing.T) {
	root := t.TempDir()
	v := SetupViper(root)
	v.Set("network", "base")
	v.Set("debug", true)

	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, "base", cfg.Network)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.NonInteractive)
	assert.Empty(t, cfg.FactoryOverrides)
}
