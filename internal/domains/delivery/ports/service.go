package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Service exposes the Delivery stage use cases to adapters.
type Service interface {
	Dispatch(ctx context.Context, orderNum string, shirts []domain.Shirt) (*contracts.DeliveryStatus, error)
	Return(ctx context.Context, orderNum string) (*contracts.ReturnReceipt, error)
	Deliveries(ctx context.Context, limit int) ([]domain.Record, error)
}
