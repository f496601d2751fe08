package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of generated bearer tokens.
const DefaultTokenTTL = 15 * time.Minute

// GenerateJWT creates a signed RS256 bearer token for the configured
// application, valid for DefaultTokenTTL.
func (c *Credentials) GenerateJWT() (string, error) {
	return c.GenerateJWTWithTTL(DefaultTokenTTL)
}

// GenerateJWTWithTTL creates a signed RS256 bearer token with an explicit
// lifetime. The token carries application_id, iat, exp, and a random jti.
func (c *Credentials) GenerateJWTWithTTL(ttl time.Duration) (string, error) {
	if !c.Supports(MethodJWT) {
		return "", &MissingCredentialsError{Accepted: []Method{MethodJWT}}
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(c.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to parse private key: %w", err)
	}

	now := timeNow()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"application_id": c.ApplicationID,
		"iat":            now.Unix(),
		"exp":            now.Add(ttl).Unix(),
		"jti":            uuid.NewString(),
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
