package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:           7,
		Username:     "cashier",
		PasswordHash: "$2a$10$should-never-appear",
		FullName:     "Casey Cashier",
		Address:      "12 Market St",
		PhoneNumber:  "555-0101",
		Role:         "staff",
		Photo:        "default_user.png",
		CreatedAt:    time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second),
		UpdatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")
	user := testUser()

	token, issued, err := codec.Issue(user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Username, claims.User.Username)
	assert.Equal(t, user.FullName, claims.User.FullName)
	assert.Equal(t, user.Role, claims.User.Role)
	assert.Empty(t, claims.User.PasswordHash, "hash must be scrubbed from claims")
	assert.Empty(t, issued.User.PasswordHash)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestCodec_ParseRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	token, _, err := codec.Issue(testUser(), time.Hour)
	require.NoError(t, err)

	// Mutate one character at every position; each mutation must fail with
	// the same opaque error as any other validation failure. Case swaps (and
	// 'A' for non-letters) change high bits of the base64 group, so even the
	// final character's mutation survives lenient padding-bit decoding.
	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		switch c := mutated[i]; {
		case c >= 'a' && c <= 'z':
			mutated[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			mutated[i] = c - 'A' + 'a'
		default:
			mutated[i] = 'A'
		}
		_, err := codec.Parse(string(mutated))
		assert.ErrorIs(t, err, ErrInvalidToken, "position %d", i)
	}
}

func TestCodec_ParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewCodec("secret-one").Issue(testUser(), time.Hour)
	require.NoError(t, err)

	_, err = NewCodec("secret-two").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_ParseRejectsExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret")

	// Valid signature, expiry in the past.
	token, _, err := codec.Issue(testUser(), -time.Second)
	require.NoError(t, err)

	_, err = codec.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expiry must map to the same error class as tampering")
}

func TestCodec_ParseRejectsGarbage(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, input := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := codec.Parse(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
