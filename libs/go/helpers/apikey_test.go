package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	key, prefix, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, APIKeyPrefix+"_"))
	assert.True(t, strings.HasPrefix(key, prefix))
	assert.Len(t, prefix, len(APIKeyPrefix)+1+8)

	other, _, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestHashAndCompareAPIKey(t *testing.T) {
	key, _, err := GenerateAPIKey()
	require.NoError(t, err)

	hash, err := HashAPIKey(key)
	require.NoError(t, err)

	assert.NoError(t, CompareAPIKeyHash(key, hash))
	assert.Error(t, CompareAPIKeyHash(key+"x", hash))
}

func TestExtractKeyPrefix(t *testing.T) {
	assert.Equal(t, "invalid", ExtractKeyPrefix("nounderscore"))
	assert.Equal(t, "amp_abc", ExtractKeyPrefix("amp_abc"))
	assert.Equal(t, "amp_abcdefgh", ExtractKeyPrefix("amp_abcdefghijk_l"))
}
