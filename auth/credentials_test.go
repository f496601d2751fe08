package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports(t *testing.T) {
	tests := []struct {
		name      string
		creds     *Credentials
		jwt       bool
		signature bool
		keySecret bool
	}{
		{
			name:      "key and secret",
			creds:     NewKeySecret("key", "secret"),
			keySecret: true,
		},
		{
			name:      "key secret and signature secret",
			creds:     NewKeySecretSignature("key", "secret", "sig"),
			signature: true,
			keySecret: true,
		},
		{
			name:      "key and signature secret",
			creds:     NewKeySignature("key", "sig", SignatureSHA256),
			signature: true,
		},
		{
			name:  "application",
			creds: NewApplication("app-id", []byte("pem")),
			jwt:   true,
		},
		{
			name:  "empty",
			creds: &Credentials{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.jwt, tt.creds.Supports(MethodJWT))
			assert.Equal(t, tt.signature, tt.creds.Supports(MethodSignature))
			assert.Equal(t, tt.keySecret, tt.creds.Supports(MethodKeySecret))
		})
	}
}

func TestSelectPrecedence(t *testing.T) {
	full := &Credentials{
		APIKey:          "key",
		APISecret:       "secret",
		SignatureSecret: "sig",
		ApplicationID:   "app-id",
		PrivateKey:      []byte("pem"),
	}

	t.Run("jwt wins when everything is configured", func(t *testing.T) {
		m, err := full.Select()
		require.NoError(t, err)
		assert.Equal(t, MethodJWT, m)
	})

	t.Run("signature outranks key secret", func(t *testing.T) {
		m, err := NewKeySecretSignature("key", "secret", "sig").Select()
		require.NoError(t, err)
		assert.Equal(t, MethodSignature, m)
	})

	t.Run("accepted set restricts selection", func(t *testing.T) {
		m, err := full.Select(MethodKeySecret, MethodSignature)
		require.NoError(t, err)
		assert.Equal(t, MethodSignature, m)

		m, err = full.Select(MethodKeySecret)
		require.NoError(t, err)
		assert.Equal(t, MethodKeySecret, m)
	})

	t.Run("unsupported accepted set fails", func(t *testing.T) {
		_, err := NewKeySecret("key", "secret").Select(MethodJWT)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingCredentials)

		var missing *MissingCredentialsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []Method{MethodJWT}, missing.Accepted)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   *Credentials
		wantErr bool
	}{
		{
			name:  "key secret is complete",
			creds: NewKeySecret("key", "secret"),
		},
		{
			name:  "application is complete",
			creds: NewApplication("app-id", []byte("pem")),
		},
		{
			name:    "nothing configured",
			creds:   &Credentials{},
			wantErr: true,
		},
		{
			name:    "secret without key",
			creds:   &Credentials{APISecret: "secret", ApplicationID: "app-id", PrivateKey: []byte("pem")},
			wantErr: true,
		},
		{
			name:    "application id without private key",
			creds:   &Credentials{APIKey: "key", APISecret: "secret", ApplicationID: "app-id"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "jwt", MethodJWT.String())
	assert.Equal(t, "signature", MethodSignature.String())
	assert.Equal(t, "key-secret", MethodKeySecret.String())
}
