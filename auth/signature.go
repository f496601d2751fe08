package auth

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SignatureMethod selects the hash used when signing request parameters.
type SignatureMethod string

const (
	// SignatureMD5Hash digests the parameter string with the secret
	// appended. This is the default method.
	SignatureMD5Hash SignatureMethod = "md5hash"
	// SignatureMD5HMAC signs with HMAC-MD5.
	SignatureMD5HMAC SignatureMethod = "md5"
	// SignatureSHA1 signs with HMAC-SHA1.
	SignatureSHA1 SignatureMethod = "sha1"
	// SignatureSHA256 signs with HMAC-SHA256.
	SignatureSHA256 SignatureMethod = "sha256"
	// SignatureSHA512 signs with HMAC-SHA512.
	SignatureSHA512 SignatureMethod = "sha512"
)

// ParseSignatureMethod converts a configuration string into a
// SignatureMethod. An empty string selects the default.
func ParseSignatureMethod(s string) (SignatureMethod, error) {
	switch SignatureMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", SignatureMD5Hash:
		return SignatureMD5Hash, nil
	case SignatureMD5HMAC:
		return SignatureMD5HMAC, nil
	case SignatureSHA1:
		return SignatureSHA1, nil
	case SignatureSHA256:
		return SignatureSHA256, nil
	case SignatureSHA512:
		return SignatureSHA512, nil
	default:
		return "", fmt.Errorf("unknown signature method %q", s)
	}
}

// overridable in tests
var timeNow = time.Now

// SignParams adds api_key, timestamp, and sig parameters to params in
// place. The signature covers every parameter present after api_key and
// timestamp are set: parameters are sorted by name and concatenated as
// "&name=value" with '&' and '=' inside values replaced by '_', then
// hashed with the configured method.
func (c *Credentials) SignParams(params url.Values) error {
	if !c.Supports(MethodSignature) {
		return &MissingCredentialsError{Accepted: []Method{MethodSignature}}
	}

	params.Set("api_key", c.APIKey)
	params.Set("timestamp", strconv.FormatInt(timeNow().Unix(), 10))
	params.Del("sig")

	sig, err := signatureFor(params, c.SignatureSecret, c.signatureMethod())
	if err != nil {
		return err
	}
	params.Set("sig", sig)
	return nil
}

// VerifySignature checks the sig parameter of an inbound parameter set
// against the signature secret. The sig parameter itself is excluded from
// the signed string.
func (c *Credentials) VerifySignature(params url.Values) (bool, error) {
	if !c.Supports(MethodSignature) {
		return false, &MissingCredentialsError{Accepted: []Method{MethodSignature}}
	}

	supplied := params.Get("sig")
	if supplied == "" {
		return false, nil
	}

	cloned := url.Values{}
	for k, vs := range params {
		if k == "sig" {
			continue
		}
		cloned[k] = vs
	}

	expected, err := signatureFor(cloned, c.SignatureSecret, c.signatureMethod())
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(strings.ToLower(supplied)), []byte(expected)), nil
}

func (c *Credentials) signatureMethod() SignatureMethod {
	if c.SignatureMethod == "" {
		return SignatureMD5Hash
	}
	return c.SignatureMethod
}

func signatureFor(params url.Values, secret string, method SignatureMethod) (string, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		value := strings.NewReplacer("&", "_", "=", "_").Replace(params.Get(name))
		sb.WriteByte('&')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	signed := sb.String()

	if method == SignatureMD5Hash {
		sum := md5.Sum([]byte(signed + secret))
		return hex.EncodeToString(sum[:]), nil
	}

	var newHash func() hash.Hash
	switch method {
	case SignatureMD5HMAC:
		newHash = md5.New
	case SignatureSHA1:
		newHash = sha1.New
	case SignatureSHA256:
		newHash = sha256.New
	case SignatureSHA512:
		newHash = sha512.New
	default:
		return "", fmt.Errorf("unknown signature method %q", method)
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write([]byte(signed))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
