package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	digest, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", digest)
	assert.True(t, VerifyPassword("pw123", digest))
	assert.False(t, VerifyPassword("pw124", digest))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pw123")
	require.NoError(t, err)
	second, err := HashPassword("pw123")
	require.NoError(t, err)

	// Same secret, different digests; only VerifyPassword may compare
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("pw123", first))
	assert.True(t, VerifyPassword("pw123", second))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("pw123", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("pw123", ""))
}
