package voice

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/rest"
)

func testPrivateKey(t *testing.T) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport, err := rest.NewClient(auth.NewApplication("app-id", testPrivateKey(t)), zerolog.Nop(),
		rest.WithAPIHost(server.URL))
	require.NoError(t, err)

	return NewClient(transport, zerolog.Nop())
}

func TestCreateCall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/calls", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))

		var req CreateCallRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.To, 1)
		assert.Equal(t, "447700900000", req.To[0].Number)

		w.Write([]byte(`{"uuid":"call-1","status":"started","direction":"outbound"}`))
	})

	resp, err := client.CreateCall(context.Background(), CreateCallRequest{
		To:        []Endpoint{PhoneEndpoint("447700900000")},
		From:      PhoneEndpoint("447700900001"),
		AnswerURL: []string{"https://example.com/answer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "call-1", resp.UUID)
	assert.Equal(t, "started", resp.Status)
}

func TestCreateCallMissingDestination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.CreateCall(context.Background(), CreateCallRequest{From: PhoneEndpoint("447700900001")})
	assert.ErrorIs(t, err, ErrMissingDestination)
}

func TestCreateCallWithoutJWTCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	t.Cleanup(server.Close)

	transport, err := rest.NewClient(auth.NewKeySecret("key", "secret"), zerolog.Nop(),
		rest.WithAPIHost(server.URL))
	require.NoError(t, err)
	client := NewClient(transport, zerolog.Nop())

	_, err = client.CreateCall(context.Background(), CreateCallRequest{
		To: []Endpoint{PhoneEndpoint("447700900000")},
	})
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}

func TestGetCall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/calls/call-1", r.URL.Path)
		w.Write([]byte(`{"uuid":"call-1","status":"completed","duration":"42"}`))
	})

	call, err := client.GetCall(context.Background(), "call-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", call.Status)
	assert.Equal(t, "42", call.Duration)
}

func TestListCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(r.URL.Query().Get("record_index"))
		require.NoError(t, err)

		// Three records split across two pages.
		switch index {
		case 0:
			w.Write([]byte(`{"count":3,"page_size":100,"record_index":0,"_embedded":{"calls":[{"uuid":"call-1"},{"uuid":"call-2"}]}}`))
		default:
			w.Write([]byte(`{"count":3,"page_size":100,"record_index":2,"_embedded":{"calls":[{"uuid":"call-3"}]}}`))
		}
	})

	calls, err := client.ListCalls(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, "call-3", calls[2].UUID)
}

func TestHangup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/calls/call-1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hangup", body["action"])

		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Hangup(context.Background(), "call-1"))
	assert.ErrorIs(t, client.Hangup(context.Background(), ""), ErrMissingUUID)
}
