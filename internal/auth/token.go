package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront-api/internal/domain"
)

// ErrInvalidToken is the single error returned for every token validation
// failure. Bad signature, missing claims and expiry all collapse into it so
// the caller cannot tell which check rejected the token.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload of a session token: a scrubbed snapshot of
// the user plus the registered expiry claim. A token is self-contained; the
// guard never goes back to the credential store to validate one.
type Claims struct {
	User domain.User `json:"user_data"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) Codec {
	return Codec{secret: []byte(secret)}
}

// Issue mints a signed token for the user expiring ttl from now. The
// password hash is scrubbed before the snapshot is embedded.
func (c Codec) Issue(user domain.User, ttl time.Duration) (string, Claims, error) {
	now := time.Now()
	claims := Claims{
		User: user.Scrubbed(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, claims, nil
}

// Parse verifies the token's signature, claim presence and expiry, in that
// order, and returns its claims. Any failure returns ErrInvalidToken.
func (c Codec) Parse(tokenString string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}
