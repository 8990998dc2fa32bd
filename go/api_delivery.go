package fulfillmentserver

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	deliverymapper "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/http/mapper"
	deliveryports "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

// DeliveryAPI wires HTTP transport with the delivery bounded context service.
type DeliveryAPI struct {
	service deliveryports.Service
}

// NewDeliveryAPI creates a DeliveryAPI backed by the provided service.
func NewDeliveryAPI(service deliveryports.Service) DeliveryAPI {
	return DeliveryAPI{service: service}
}

// Post /delivery/dispatch/:orderNum
// Queue a manufactured batch for the next drain
func (api *DeliveryAPI) Dispatch(c *gin.Context) {
	var payload contracts.PackedShirts
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, err.Error())
		return
	}
	status, err := api.service.Dispatch(c.Request.Context(), c.Param("orderNum"), deliverymapper.ToDomainShirts(&payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Post /delivery/return/:orderNum
// Acknowledge a returned order
func (api *DeliveryAPI) Return(c *gin.Context) {
	receipt, err := api.service.Return(c.Request.Context(), c.Param("orderNum"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Get /delivery/deliveries
// List recently delivered batches
func (api *DeliveryAPI) ListDeliveries(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}
	records, err := api.service.Deliveries(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliverymapper.FromDomainRecords(records))
}
