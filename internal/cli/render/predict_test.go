package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintcast-org/mintcast/internal/domain"
	"github.com/mintcast-org/mintcast/internal/usecase"
)

func sampleResult() *usecase.PredictTokenResult {
	return &usecase.PredictTokenResult{
		Token: domain.TokenConfig{
			Name:               "hullo",
			Symbol:             "hullo",
			Admin:              common.HexToAddress("0x052DCF6cB9dDD12C3F1350344CF6cE64E61bCd38"),
			OriginatingChainID: 1,
		},
		Network: &domain.Network{
			Name:        "base",
			ChainID:     8453,
			Factory:     common.HexToAddress("0xE85A59c628F7d27878ACeB4bf3b35733630083a9"),
			ExplorerURL: "https://basescan.org",
		},
		Deployer:     common.HexToAddress("0xE85A59c628F7d27878ACeB4bf3b35733630083a9"),
		Address:      common.HexToAddress("0x235faA9417E15813F5BdbA747037B78CC8F463c2"),
		Salt:         common.HexToHash("0x194b8e7fd3d663e07fea5121e9df3b0e8e4feccfd68ed18ea759f9d47ed9a6d3"),
		InitCodeHash: common.HexToHash("0x43e65a560c6acbe5789779453b2a47bf03defedf2b24a0f822f796d1e4b017e2"),
	}
}

func TestPredictRendererText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPredictRenderer(&buf, false).Render(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "0x235faA9417E15813F5BdbA747037B78CC8F463c2")
	assert.Contains(t, out, "hullo")
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "0x194b8e7fd3d663e07fea5121e9df3b0e8e4feccfd68ed18ea759f9d47ed9a6d3")
}

func TestPredictRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPredictRenderer(&buf, true).Render(sampleResult()))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "0x235faA9417E15813F5BdbA747037B78CC8F463c2", out["address"])
	assert.Equal(t, "base", out["network"])
	assert.Equal(t, float64(8453), out["chainId"])
	assert.Equal(t, float64(1), out["originatingChainId"])
}

func TestNetworksRendererTable(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.ListNetworksResult{Networks: []*domain.Network{sampleResult().Network}}
	require.NoError(t, NewNetworksRenderer(&buf, false).Render(result))

	out := buf.String()
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "8453")
	assert.Contains(t, out, "0xE85A59c628F7d27878ACeB4bf3b35733630083a9")
}

func TestNetworksRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf, false).Render(&usecase.ListNetworksResult{}))
	assert.Contains(t, buf.String(), "No networks configured")
}
