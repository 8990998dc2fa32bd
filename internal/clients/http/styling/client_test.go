package styling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

func TestListStyles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/style", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]contracts.ShirtStyle{{Name: "style1", ImageURL: "style1Image"}})
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/", nil)
	require.NoError(t, err)
	styles, err := client.ListStyles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []contracts.ShirtStyle{{Name: "style1", ImageURL: "style1Image"}}, styles)
}

func TestMake_SendsStyleAndQuantity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/style/style1/make", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("quantity"))
		_ = json.NewEncoder(w).Encode(contracts.DeliveryStatus{OrderNum: "o", TrackingNum: "t", Message: "shirts delivery dispatched"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)
	status, err := client.Make(context.Background(), "style1", 3)
	require.NoError(t, err)
	require.Equal(t, "shirts delivery dispatched", status.Message)
}

func TestMake_PropagatesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)
	_, err = client.Make(context.Background(), "style1", 1)
	require.Equal(t, http.StatusServiceUnavailable, transport.StatusCode(err))
}
