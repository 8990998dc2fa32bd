package domain

import "errors"

// ImageSuffix is appended to a style id to synthesize the image reference of a manufactured shirt.
const ImageSuffix = "Image"

var ErrNegativeQuantity = errors.New("quantity must not be negative")

// ShirtStyle is an immutable catalog style. Identity is the name.
type ShirtStyle struct {
	Name     string
	ImageRef string
}

// NewShirtStyle constructs a style value.
func NewShirtStyle(name, imageRef string) ShirtStyle {
	return ShirtStyle{Name: name, ImageRef: imageRef}
}

// ManufacturedStyle builds the style stamped on shirts made for styleID.
// It is derived from the id alone and never looked up in the catalog.
func ManufacturedStyle(styleID string) ShirtStyle {
	return NewShirtStyle(styleID, styleID+ImageSuffix)
}

// Shirt always references exactly one style.
type Shirt struct {
	Style ShirtStyle
}

// PackedShirts is one manufacturing batch.
type PackedShirts struct {
	Shirts []Shirt
}

// Len returns the number of shirts in the batch.
func (p PackedShirts) Len() int {
	return len(p.Shirts)
}

// Manufacture makes quantity shirts of styleID, each carrying its own style copy.
func Manufacture(styleID string, quantity int) (PackedShirts, error) {
	if quantity < 0 {
		return PackedShirts{}, ErrNegativeQuantity
	}
	shirts := make([]Shirt, 0, quantity)
	for i := 0; i < quantity; i++ {
		shirts = append(shirts, Shirt{Style: ManufacturedStyle(styleID)})
	}
	return PackedShirts{Shirts: shirts}, nil
}
