// Package styling is the Shopping stage's client for the Styling stage API.
package styling

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Client calls GET /style and GET /style/{id}/make.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient instantiates the styling client. A nil httpClient gets the traced default.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	parsed, err := transport.BaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("styling client: %w", err)
	}
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(transport.DefaultTimeout)
	}
	return &Client{baseURL: parsed, httpClient: httpClient}, nil
}

// ListStyles fetches the style catalog.
func (c *Client) ListStyles(ctx context.Context) ([]contracts.ShirtStyle, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath("style").String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build list styles request: %w", err)
	}
	var styles []contracts.ShirtStyle
	if err := transport.DoJSON(c.httpClient, req, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}

// Make asks Styling to manufacture quantity shirts of styleID and forward them to Delivery.
func (c *Client) Make(ctx context.Context, styleID string, quantity int) (*contracts.DeliveryStatus, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	segment, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, styleID)
	if err != nil {
		return nil, fmt.Errorf("encode style id: %w", err)
	}
	endpoint := c.baseURL.JoinPath("style").String() + "/" + segment + "/make"
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build make request: %w", err)
	}
	var status contracts.DeliveryStatus
	if err := transport.DoJSON(c.httpClient, req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ensure() error {
	if c == nil || c.httpClient == nil {
		return errors.New("styling client not configured")
	}
	return nil
}
