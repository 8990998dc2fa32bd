package delivery

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

func TestDispatch_PostsBatchToOrderPath(t *testing.T) {
	var gotPath string
	var gotBatch contracts.PackedShirts
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBatch))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(contracts.DeliveryStatus{OrderNum: "o-1", TrackingNum: "t-1", Message: "shirts delivery dispatched"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)
	batch := contracts.PackedShirts{Shirts: []contracts.Shirt{{Style: contracts.ShirtStyle{Name: "style1", ImageURL: "style1Image"}}}}
	status, err := client.Dispatch(context.Background(), "o-1", batch)
	require.NoError(t, err)
	require.Equal(t, "/delivery/dispatch/o-1", gotPath)
	require.Equal(t, batch, gotBatch)
	require.Equal(t, "t-1", status.TrackingNum)
}

func TestDispatch_EscapesOrderNumber(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)
	_, err = client.Dispatch(context.Background(), "a b/c", contracts.PackedShirts{})
	require.NoError(t, err)
	require.Equal(t, "/delivery/dispatch/a%20b%2Fc", gotPath)
}

func TestDispatch_PropagatesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)
	_, err = client.Dispatch(context.Background(), "o-1", contracts.PackedShirts{})
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, transport.StatusCode(err))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(" ", nil)
	require.Error(t, err)
}
