package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// StylingGateway is the outbound port to the Styling stage.
type StylingGateway interface {
	ListStyles(ctx context.Context) ([]contracts.ShirtStyle, error)
	Make(ctx context.Context, styleName string, quantity int) (*contracts.DeliveryStatus, error)
}
