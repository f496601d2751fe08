package auth

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Method identifies an authentication mechanism.
type Method int

const (
	// MethodJWT authenticates with a bearer token generated from an
	// application ID and private key.
	MethodJWT Method = iota
	// MethodSignature authenticates by signing request parameters with a
	// shared signature secret.
	MethodSignature
	// MethodKeySecret authenticates with the account API key and secret.
	MethodKeySecret
)

// String returns a human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodJWT:
		return "jwt"
	case MethodSignature:
		return "signature"
	case MethodKeySecret:
		return "key-secret"
	default:
		return "unknown"
	}
}

// precedence lists methods from most to least preferred. When an endpoint
// accepts several methods and the credentials support more than one, the
// earliest entry wins.
var precedence = []Method{MethodJWT, MethodSignature, MethodKeySecret}

// Credentials holds one of the supported credential combinations. Zero
// fields mean the corresponding capability is absent; Supports and Select
// derive what the set can do.
type Credentials struct {
	APIKey          string
	APISecret       string
	SignatureSecret string
	SignatureMethod SignatureMethod
	ApplicationID   string
	PrivateKey      []byte
}

// NewKeySecret builds credentials from an API key and secret.
func NewKeySecret(apiKey, apiSecret string) *Credentials {
	return &Credentials{APIKey: apiKey, APISecret: apiSecret}
}

// NewKeySecretSignature builds credentials from an API key, secret, and
// signature secret using the default hash method.
func NewKeySecretSignature(apiKey, apiSecret, signatureSecret string) *Credentials {
	return &Credentials{
		APIKey:          apiKey,
		APISecret:       apiSecret,
		SignatureSecret: signatureSecret,
		SignatureMethod: SignatureMD5Hash,
	}
}

// NewKeySignature builds credentials from an API key, signature secret,
// and explicit hash method.
func NewKeySignature(apiKey, signatureSecret string, method SignatureMethod) *Credentials {
	return &Credentials{
		APIKey:          apiKey,
		SignatureSecret: signatureSecret,
		SignatureMethod: method,
	}
}

// NewApplication builds credentials from an application ID and a PEM-encoded
// private key.
func NewApplication(applicationID string, privateKey []byte) *Credentials {
	return &Credentials{ApplicationID: applicationID, PrivateKey: privateKey}
}

// NewApplicationFromFile builds credentials from an application ID and a
// path to a PEM-encoded private key file.
func NewApplicationFromFile(applicationID, privateKeyPath string) (*Credentials, error) {
	key, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	return NewApplication(applicationID, key), nil
}

// Supports reports whether the credential set can satisfy the given method.
func (c *Credentials) Supports(m Method) bool {
	switch m {
	case MethodJWT:
		return c.ApplicationID != "" && len(c.PrivateKey) > 0
	case MethodSignature:
		return c.APIKey != "" && c.SignatureSecret != ""
	case MethodKeySecret:
		return c.APIKey != "" && c.APISecret != ""
	default:
		return false
	}
}

// Select picks the highest-precedence method the credentials support from
// the accepted set. An empty accepted set means any method is acceptable.
// The order of the accepted set does not matter; precedence is always
// JWT, then signature secret, then key/secret.
func (c *Credentials) Select(accepted ...Method) (Method, error) {
	for _, m := range precedence {
		if len(accepted) > 0 && !containsMethod(accepted, m) {
			continue
		}
		if c.Supports(m) {
			return m, nil
		}
	}
	return 0, &MissingCredentialsError{Accepted: accepted}
}

// Validate checks the credential set holds at least one complete
// combination and that partially-filled combinations are rejected.
func (c *Credentials) Validate() error {
	if !c.Supports(MethodJWT) && !c.Supports(MethodSignature) && !c.Supports(MethodKeySecret) {
		return &MissingCredentialsError{}
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.APISecret,
			validation.When(c.APIKey == "", validation.Empty.Error("api secret set without api key"))),
		validation.Field(&c.SignatureSecret,
			validation.When(c.APIKey == "", validation.Empty.Error("signature secret set without api key"))),
		validation.Field(&c.PrivateKey,
			validation.When(c.ApplicationID == "", validation.Empty.Error("private key set without application id"))),
		validation.Field(&c.ApplicationID,
			validation.When(len(c.PrivateKey) == 0, validation.Empty.Error("application id set without private key"))),
	)
}

func containsMethod(ms []Method, m Method) bool {
	for _, v := range ms {
		if v == m {
			return true
		}
	}
	return false
}
