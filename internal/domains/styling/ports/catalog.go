package ports

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
)

// Catalog is the read-only list of styles offered by the Styling stage.
type Catalog interface {
	ListStyles(ctx context.Context) ([]domain.ShirtStyle, error)
}
