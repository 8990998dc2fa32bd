package delivery

import (
	"context"
	"errors"

	deliveryclient "github.com/Apurer/go-gin-fulfillment/internal/clients/http/delivery"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/http/mapper"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Gateway implements the outbound delivery port over HTTP.
type Gateway struct {
	client *deliveryclient.Client
}

// NewGateway wires a delivery HTTP client into the port adapter.
func NewGateway(client *deliveryclient.Client) *Gateway {
	return &Gateway{client: client}
}

// Dispatch posts the batch to the Delivery stage.
func (g *Gateway) Dispatch(ctx context.Context, orderNum string, batch domain.PackedShirts) (*contracts.DeliveryStatus, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("delivery gateway not configured")
	}
	return g.client.Dispatch(ctx, orderNum, mapper.FromPackedShirts(batch))
}

var _ ports.DeliveryGateway = (*Gateway)(nil)
