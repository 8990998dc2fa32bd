package memory

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/ports"
)

var _ ports.Catalog = (*Catalog)(nil)

// Catalog is the static style list seeded at process start.
type Catalog struct {
	styles []domain.ShirtStyle
}

// NewCatalog seeds the catalog with the given styles, or the default pair when none are given.
func NewCatalog(styles ...domain.ShirtStyle) *Catalog {
	if len(styles) == 0 {
		styles = DefaultStyles()
	}
	return &Catalog{styles: append([]domain.ShirtStyle(nil), styles...)}
}

// DefaultStyles returns the demo catalog.
func DefaultStyles() []domain.ShirtStyle {
	return []domain.ShirtStyle{
		domain.NewShirtStyle("style1", "style1Image"),
		domain.NewShirtStyle("style2", "style2Image"),
	}
}

// ListStyles returns a copy in insertion order.
func (c *Catalog) ListStyles(_ context.Context) ([]domain.ShirtStyle, error) {
	return append([]domain.ShirtStyle(nil), c.styles...), nil
}
