package fulfillmentserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewDeliveryRouter returns the Delivery stage engine.
func NewDeliveryRouter(serviceName string, api DeliveryAPI) *gin.Engine {
	return NewRouterWithGinEngine(newEngine(serviceName), []Route{
		{"Dispatch", http.MethodPost, "/delivery/dispatch/:orderNum", api.Dispatch},
		{"Return", http.MethodPost, "/delivery/return/:orderNum", api.Return},
		{"ListDeliveries", http.MethodGet, "/delivery/deliveries", api.ListDeliveries},
	})
}

// NewStylingRouter returns the Styling stage engine.
func NewStylingRouter(serviceName string, api StylingAPI) *gin.Engine {
	return NewRouterWithGinEngine(newEngine(serviceName), []Route{
		{"ListStyles", http.MethodGet, "/style", api.ListStyles},
		{"MakeShirts", http.MethodGet, "/style/:styleId/make", api.MakeShirts},
	})
}

// NewShoppingRouter returns the Shopping stage engine.
func NewShoppingRouter(serviceName string, api ShoppingAPI) *gin.Engine {
	return NewRouterWithGinEngine(newEngine(serviceName), []Route{
		{"Menu", http.MethodGet, "/shop/menu", api.Menu},
		{"Order", http.MethodPost, "/shop/order", api.Order},
	})
}

// NewRouterWithGinEngine adds the routes plus /healthz to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, routes []Route) *gin.Engine {
	for _, route := range routes {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	router.GET("/healthz", Healthz)
	router.NoRoute(respondNoRoute)
	return router
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DefaultHandleFunc is used for routes registered without a handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// newEngine installs tracing before any route so every handler runs inside the server span.
func newEngine(serviceName string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if serviceName != "" {
		router.Use(otelgin.Middleware(serviceName))
	}
	return router
}
