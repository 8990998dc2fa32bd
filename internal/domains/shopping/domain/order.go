package domain

import "errors"

var (
	ErrMissingStyle     = errors.New("styleName is required")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Order is a customer request for quantity shirts of one style.
// The style name is kept exactly as the customer sent it.
type Order struct {
	StyleName string
	Quantity  int
}

// Validate checks the shape of the order. Catalog membership is not checked.
func (o Order) Validate() error {
	if o.StyleName == "" {
		return ErrMissingStyle
	}
	if o.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
