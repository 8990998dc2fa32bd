package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Service exposes the Shopping stage use cases to adapters.
type Service interface {
	ListMenu(ctx context.Context) ([]contracts.ShirtStyle, error)
	Order(ctx context.Context, order domain.Order) (*contracts.DeliveryStatus, error)
}
