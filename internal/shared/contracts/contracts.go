// Package contracts holds the JSON shapes exchanged between the fulfillment stages.
package contracts

// ShirtStyle is a catalog entry on the wire.
type ShirtStyle struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Shirt is a single manufactured item.
type Shirt struct {
	Style ShirtStyle `json:"style"`
}

// PackedShirts is one manufacturing batch.
type PackedShirts struct {
	Shirts []Shirt `json:"shirts"`
}

// Order is the client-facing shopping request.
type Order struct {
	StyleName string `json:"styleName"`
	Quantity  int    `json:"quantity"`
}

// DeliveryStatus acknowledges a dispatched batch.
type DeliveryStatus struct {
	OrderNum    string `json:"orderNum"`
	TrackingNum string `json:"trackingNum"`
	Message     string `json:"message"`
}

// ReturnReceipt acknowledges a return request.
type ReturnReceipt struct {
	OrderNum string `json:"orderNum"`
	Message  string `json:"message"`
}

// DeliveryRecord is a ledger entry for a drained batch.
type DeliveryRecord struct {
	BatchID     string   `json:"batchId"`
	OrderNum    string   `json:"orderNum"`
	ShirtCount  int      `json:"shirtCount"`
	Styles      []string `json:"styles"`
	Courier     string   `json:"courier"`
	DeliveredAt string   `json:"deliveredAt"`
}
