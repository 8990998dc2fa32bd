package fulfillmentserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	shoppingmapper "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/adapters/http/mapper"
	shoppingports "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// ShoppingAPI wires HTTP transport with the shopping bounded context service.
type ShoppingAPI struct {
	service shoppingports.Service
}

// NewShoppingAPI creates a ShoppingAPI backed by the provided service.
func NewShoppingAPI(service shoppingports.Service) ShoppingAPI {
	return ShoppingAPI{service: service}
}

// Get /shop/menu
// List the styles customers can order
func (api *ShoppingAPI) Menu(c *gin.Context) {
	styles, err := api.service.ListMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, styles)
}

// Post /shop/order
// Place an order
func (api *ShoppingAPI) Order(c *gin.Context) {
	var payload contracts.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	status, err := api.service.Order(c.Request.Context(), shoppingmapper.ToDomainOrder(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
