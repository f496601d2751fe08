package numbers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexmo-community/nexmo-go/auth"
	"github.com/nexmo-community/nexmo-go/filter"
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

func TestListOwned(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/numbers", r.URL.Path)

		switch r.URL.Query().Get("index") {
		case "1":
			w.Write([]byte(`{"count":3,"numbers":[{"msisdn":"447700900000","country":"GB"},{"msisdn":"447700900001","country":"GB"}]}`))
		default:
			w.Write([]byte(`{"count":3,"numbers":[{"msisdn":"447700900002","country":"GB"}]}`))
		}
	})

	nums, err := client.ListOwned(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, nums, 3)
	assert.Equal(t, "447700900002", nums[2].MSISDN)
}

func TestListOwnedWithFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "44", r.URL.Query().Get("pattern"))
		assert.Equal(t, "0", r.URL.Query().Get("search_pattern"))
		w.Write([]byte(`{"count":0,"numbers":[]}`))
	})

	f := filter.New().Set("pattern", "44").SetInt("search_pattern", 0)
	nums, err := client.ListOwned(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, nums)
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/number/search", r.URL.Path)
		assert.Equal(t, "GB", r.URL.Query().Get("country"))

		w.Write([]byte(`{"count":1,"numbers":[{"msisdn":"447700900010","country":"GB","type":"mobile-lvn","cost":"1.25","features":["SMS","VOICE"]}]}`))
	})

	nums, err := client.Search(context.Background(), "GB", nil)
	require.NoError(t, err)
	require.Len(t, nums, 1)
	assert.Equal(t, "mobile-lvn", nums[0].Type)
	assert.Contains(t, nums[0].Features, "VOICE")
}

func TestSearchMissingCountry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Search(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrMissingCountry)
}

func TestBuy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/number/buy", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "GB", r.PostForm.Get("country"))
		assert.Equal(t, "447700900010", r.PostForm.Get("msisdn"))

		w.Write([]byte(`{"error-code":"200","error-code-label":"success"}`))
	})

	require.NoError(t, client.Buy(context.Background(), "GB", "447700900010"))
}

func TestBuyInBodyError(t *testing.T) {
	// Order failures come back inside an HTTP 200.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error-code":"420","error-code-label":"method failed"}`))
	})

	err := client.Buy(context.Background(), "GB", "447700900010")
	require.Error(t, err)

	var orderErr *OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, "420", orderErr.Code)
	assert.Equal(t, "447700900010", orderErr.MSISDN)
}

func TestCancel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/number/cancel", r.URL.Path)
		w.Write([]byte(`{"error-code":"200"}`))
	})

	require.NoError(t, client.Cancel(context.Background(), "GB", "447700900010"))
}

func TestOrderValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	assert.ErrorIs(t, client.Buy(context.Background(), "", "447700900010"), ErrMissingCountry)
	assert.ErrorIs(t, client.Buy(context.Background(), "GB", ""), ErrMissingMSISDN)
}
