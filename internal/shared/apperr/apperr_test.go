package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "bad_request", err: BadRequest("Invalid Order Num"), want: http.StatusBadRequest},
		{name: "unavailable", err: Unavailable("Failed to make shirts!"), want: http.StatusServiceUnavailable},
		{name: "upstream_keeps_status", err: Upstream(http.StatusBadRequest, "Failed to make shirts!"), want: http.StatusBadRequest},
		{name: "upstream_without_status", err: Upstream(0, "Failed to order shirts!"), want: http.StatusBadGateway},
		{name: "wrapped", err: fmt.Errorf("make: %w", Unavailable("x")), want: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestUpstreamMessage(t *testing.T) {
	err := Upstream(http.StatusServiceUnavailable, "Failed to order shirts!")
	require.Equal(t, "HTTP 503: Failed to order shirts!", err.Error())
	require.Equal(t, KindUpstream, KindOf(err))
}

func TestLabel(t *testing.T) {
	require.Equal(t, "", Label(nil))
	require.Equal(t, "bad_request", Label(BadRequest("x")))
	require.Equal(t, "timeout", Label(context.DeadlineExceeded))
	require.Equal(t, "internal", Label(errors.New("x")))
}
