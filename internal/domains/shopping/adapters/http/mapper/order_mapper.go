package mapper

import (
	shoppingdomain "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// ToDomainOrder converts a transport order into the shopping domain model.
// Validation is left to the service so the outage roll happens first.
func ToDomainOrder(order contracts.Order) shoppingdomain.Order {
	return shoppingdomain.Order{StyleName: order.StyleName, Quantity: order.Quantity}
}
