package styling

import (
	"context"
	"errors"

	stylingclient "github.com/Apurer/go-gin-fulfillment/internal/clients/http/styling"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Gateway implements the outbound styling port over HTTP.
type Gateway struct {
	client *stylingclient.Client
}

// NewGateway wires a styling HTTP client into the port adapter.
func NewGateway(client *stylingclient.Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) ListStyles(ctx context.Context) ([]contracts.ShirtStyle, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("styling gateway not configured")
	}
	return g.client.ListStyles(ctx)
}

func (g *Gateway) Make(ctx context.Context, styleName string, quantity int) (*contracts.DeliveryStatus, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("styling gateway not configured")
	}
	return g.client.Make(ctx, styleName, quantity)
}

var _ ports.StylingGateway = (*Gateway)(nil)
