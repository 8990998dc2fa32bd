package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
)

// Courier hands a drained batch over for physical delivery.
type Courier interface {
	Name() string
	Deliver(ctx context.Context, batch domain.Batch) error
}
