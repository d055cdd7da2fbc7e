package utils_test

import (
	"testing"

	"github.com/credvault/alt_credit_scoring_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecret_RoundTrip(t *testing.T) {
	hash, err := utils.HashSecret("client-secret-123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "client-secret-123", hash)

	assert.True(t, utils.CheckSecretHash("client-secret-123", hash))
	assert.False(t, utils.CheckSecretHash("wrong-secret", hash))
}

func TestCheckSecretHash_MalformedHash(t *testing.T) {
	assert.False(t, utils.CheckSecretHash("client-secret-123", "not-a-bcrypt-hash"))
}
