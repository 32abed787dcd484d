package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints stateless HS256 bearer tokens. This service only issues
// tokens; verification of inbound tokens is left to downstream consumers.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer around the process-wide signing secret.
// Rotating the secret silently invalidates every previously issued token.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the given user id and whose expiry is
// the configured TTL from now.
func (i *TokenIssuer) Issue(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
	})
	return token.SignedString(i.secret)
}
