package auth

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return time.Unix(1718000000, 0) }
	t.Cleanup(func() { timeNow = orig })
}

func TestSignParams(t *testing.T) {
	fixedClock(t)

	for _, method := range []SignatureMethod{
		SignatureMD5Hash, SignatureMD5HMAC, SignatureSHA1, SignatureSHA256, SignatureSHA512,
	} {
		t.Run(string(method), func(t *testing.T) {
			creds := NewKeySignature("key", "sig-secret", method)

			params := url.Values{}
			params.Set("to", "447700900000")
			params.Set("text", "hello & welcome")
			require.NoError(t, creds.SignParams(params))

			assert.Equal(t, "key", params.Get("api_key"))
			assert.Equal(t, "1718000000", params.Get("timestamp"))
			assert.NotEmpty(t, params.Get("sig"))

			ok, err := creds.VerifySignature(params)
			require.NoError(t, err)
			assert.True(t, ok, "signature should verify against the same secret")
		})
	}
}

func TestSignParamsDeterministic(t *testing.T) {
	fixedClock(t)
	creds := NewKeySignature("key", "sig-secret", SignatureSHA256)

	a := url.Values{"to": {"1"}, "text": {"x"}}
	b := url.Values{"text": {"x"}, "to": {"1"}}
	require.NoError(t, creds.SignParams(a))
	require.NoError(t, creds.SignParams(b))

	assert.Equal(t, a.Get("sig"), b.Get("sig"), "parameter order must not affect the signature")
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	fixedClock(t)
	creds := NewKeySignature("key", "sig-secret", SignatureMD5Hash)

	params := url.Values{"to": {"447700900000"}}
	require.NoError(t, creds.SignParams(params))

	params.Set("to", "447700900001")
	ok, err := creds.VerifySignature(params)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	fixedClock(t)
	signer := NewKeySignature("key", "sig-secret", SignatureSHA256)
	verifier := NewKeySignature("key", "other-secret", SignatureSHA256)

	params := url.Values{"to": {"447700900000"}}
	require.NoError(t, signer.SignParams(params))

	ok, err := verifier.VerifySignature(params)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySignatureMissingSig(t *testing.T) {
	creds := NewKeySignature("key", "sig-secret", SignatureSHA256)
	ok, err := creds.VerifySignature(url.Values{"to": {"1"}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignParamsWithoutSecret(t *testing.T) {
	err := NewKeySecret("key", "secret").SignParams(url.Values{})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestParseSignatureMethod(t *testing.T) {
	tests := []struct {
		in       string
		expected SignatureMethod
		wantErr  bool
	}{
		{in: "", expected: SignatureMD5Hash},
		{in: "md5hash", expected: SignatureMD5Hash},
		{in: "MD5", expected: SignatureMD5HMAC},
		{in: " sha256 ", expected: SignatureSHA256},
		{in: "sha512", expected: SignatureSHA512},
		{in: "rot13", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSignatureMethod(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
