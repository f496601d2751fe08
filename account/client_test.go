package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/rest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport, err := rest.NewClient(auth.NewKeySecret("key", "secret"), zerolog.Nop(),
		rest.WithRESTHost(server.URL))
	require.NoError(t, err)

	return NewClient(transport, zerolog.Nop())
}

func TestGetBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/get-balance", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "secret", r.URL.Query().Get("api_secret"))

		w.Write([]byte(`{"value":10.28,"autoReload":false}`))
	})

	balance, err := client.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.28, balance.Value)
	assert.False(t, balance.AutoReload)
}

func TestTopUp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/top-up", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "trx-1", r.PostForm.Get("trx"))
		w.Write([]byte("{}"))
	})

	require.NoError(t, client.TopUp(context.Background(), "trx-1"))
}

func TestTopUpMissingTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	assert.ErrorIs(t, client.TopUp(context.Background(), ""), ErrMissingTransaction)
}

func TestUpdateSettings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/settings", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://example.com/inbound", r.PostForm.Get("moCallBackUrl"))
		assert.Empty(t, r.PostForm.Get("drCallBackUrl"))

		w.Write([]byte(`{"mo-callback-url":"https://example.com/inbound","max-outbound-request":30}`))
	})

	settings, err := client.UpdateSettings(context.Background(), "https://example.com/inbound", "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/inbound", settings.InboundURL)
	assert.Equal(t, 30, settings.MaxOutboundRequest)
}
