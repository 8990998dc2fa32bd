package mapper

import (
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// FromDomainStyle converts a catalog style to its wire shape.
func FromDomainStyle(style domain.ShirtStyle) contracts.ShirtStyle {
	return contracts.ShirtStyle{Name: style.Name, ImageURL: style.ImageRef}
}

// FromDomainStyles converts a style list, never returning nil so the JSON body is [].
func FromDomainStyles(styles []domain.ShirtStyle) []contracts.ShirtStyle {
	out := make([]contracts.ShirtStyle, 0, len(styles))
	for _, style := range styles {
		out = append(out, FromDomainStyle(style))
	}
	return out
}

// FromPackedShirts converts a manufactured batch to the dispatch payload.
func FromPackedShirts(batch domain.PackedShirts) contracts.PackedShirts {
	shirts := make([]contracts.Shirt, 0, len(batch.Shirts))
	for _, shirt := range batch.Shirts {
		shirts = append(shirts, contracts.Shirt{Style: FromDomainStyle(shirt.Style)})
	}
	return contracts.PackedShirts{Shirts: shirts}
}
