package fulfillmentserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	stylingmapper "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/http/mapper"
	stylingports "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/ports"
)

// StylingAPI wires HTTP transport with the styling bounded context service.
type StylingAPI struct {
	service stylingports.Service
}

// NewStylingAPI creates a StylingAPI backed by the provided service.
func NewStylingAPI(service stylingports.Service) StylingAPI {
	return StylingAPI{service: service}
}

// Get /style
// List the style catalog
func (api *StylingAPI) ListStyles(c *gin.Context) {
	styles, err := api.service.ListStyles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stylingmapper.FromDomainStyles(styles))
}

// Get /style/:styleId/make
// Manufacture shirts and forward them to Delivery
func (api *StylingAPI) MakeShirts(c *gin.Context) {
	raw, ok := c.GetQuery("quantity")
	if !ok {
		respondBadRequest(c, "quantity is required")
		return
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "quantity must be an integer")
		return
	}
	status, err := api.service.Make(c.Request.Context(), c.Param("styleId"), quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
