// Package delivery is the Styling stage's client for the Delivery stage API.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Client calls POST /delivery/dispatch/{orderNum}.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient instantiates the delivery client. A nil httpClient gets the traced default.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	parsed, err := transport.BaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("delivery client: %w", err)
	}
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(transport.DefaultTimeout)
	}
	return &Client{baseURL: parsed, httpClient: httpClient}, nil
}

// Dispatch hands a packed batch to Delivery under the given order number.
// Non-2xx answers come back as *transport.StatusError.
func (c *Client) Dispatch(ctx context.Context, orderNum string, batch contracts.PackedShirts) (*contracts.DeliveryStatus, error) {
	if c == nil || c.httpClient == nil {
		return nil, errors.New("delivery client not configured")
	}
	segment, err := runtime.StyleParamWithLocation("simple", false, "orderNum", runtime.ParamLocationPath, orderNum)
	if err != nil {
		return nil, fmt.Errorf("encode order number: %w", err)
	}
	body, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}
	target := c.baseURL.JoinPath("delivery", "dispatch")
	endpoint := target.String() + "/" + segment
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var status contracts.DeliveryStatus
	if err := transport.DoJSON(c.httpClient, req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
