package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// DeliveryGateway hands manufactured batches to the Delivery stage.
type DeliveryGateway interface {
	Dispatch(ctx context.Context, orderNum string, batch domain.PackedShirts) (*contracts.DeliveryStatus, error)
}
