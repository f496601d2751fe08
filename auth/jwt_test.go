package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrivateKey(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	return key, pemBytes
}

func TestGenerateJWT(t *testing.T) {
	key, pemBytes := testPrivateKey(t)
	creds := NewApplication("app-id", pemBytes)

	signed, err := creds.GenerateJWT()
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "app-id", claims["application_id"])

	_, err = uuid.Parse(claims["jti"].(string))
	assert.NoError(t, err, "jti should be a UUID")

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(DefaultTokenTTL/time.Second), exp-iat)
}

func TestGenerateJWTWithTTL(t *testing.T) {
	_, pemBytes := testPrivateKey(t)
	creds := NewApplication("app-id", pemBytes)

	signed, err := creds.GenerateJWTWithTTL(time.Minute)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(60), exp-iat)
}

func TestGenerateJWTErrors(t *testing.T) {
	t.Run("no application credentials", func(t *testing.T) {
		_, err := NewKeySecret("key", "secret").GenerateJWT()
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("malformed private key", func(t *testing.T) {
		_, err := NewApplication("app-id", []byte("not a pem")).GenerateJWT()
		assert.Error(t, err)
	})
}

func TestNewApplicationFromFile(t *testing.T) {
	_, pemBytes := testPrivateKey(t)

	path := filepath.Join(t.TempDir(), "private.key")
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))

	creds, err := NewApplicationFromFile("app-id", path)
	require.NoError(t, err)
	assert.True(t, creds.Supports(MethodJWT))

	_, err = NewApplicationFromFile("app-id", path+".missing")
	assert.Error(t, err)
}
