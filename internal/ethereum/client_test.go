package ethereum

import (
	"strings"
	"testing"

	"github.com/openfund/ofs/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	client, err := Init(config.ChainConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"))
	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("0x123"))
	assert.False(t, IsValidAddress("71C7656EC7ab88b098defB751B7401B5f6d8976F"))
}

func TestIsValidTxHash(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 32)
	assert.True(t, IsValidTxHash(valid))
	assert.True(t, IsValidTxHash("0x"+strings.Repeat("AB", 32)))

	assert.False(t, IsValidTxHash(""))
	assert.False(t, IsValidTxHash("0x1234"))
	assert.False(t, IsValidTxHash(strings.Repeat("ab", 33)))
	assert.False(t, IsValidTxHash("0x"+strings.Repeat("g", 64)))
}
