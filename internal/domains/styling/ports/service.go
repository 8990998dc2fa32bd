package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// Service exposes the Styling stage use cases to adapters.
type Service interface {
	ListStyles(ctx context.Context) ([]domain.ShirtStyle, error)
	Make(ctx context.Context, styleID string, quantity int) (*contracts.DeliveryStatus, error)
}
