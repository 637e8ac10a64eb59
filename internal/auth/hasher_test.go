package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pw", hash, "hash must not be the plaintext")

	assert.True(t, hasher.Verify("s3cret-pw", hash))
	assert.False(t, hasher.Verify("wrong-pw", hash))
}

func TestHasher_HashIsRandomized(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-input")
	require.NoError(t, err)
	second, err := hasher.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salts must differ per call")
	assert.True(t, hasher.Verify("same-input", first))
	assert.True(t, hasher.Verify("same-input", second))
}

func TestHasher_VerifyFailsClosedOnMalformedHash(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		assert.False(t, hasher.Verify("anything", malformed))
	}
}

func TestNewHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
