package stages

import (
	"context"
	"fmt"

	fulfillmentserver "github.com/Apurer/go-gin-fulfillment/go"
	stylingclient "github.com/Apurer/go-gin-fulfillment/internal/clients/http/styling"
	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	shoppingstyling "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/adapters/external/styling"
	shoppingobs "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/adapters/observability"
	shoppingapp "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/application"
)

// ShoppingServiceName identifies the shopping process in traces and logs.
const ShoppingServiceName = "shopping-stage"

// RunShopping boots the Shopping stage HTTP API.
func RunShopping(ctx context.Context, cfg Config) error {
	instruments, cleanup, err := bootstrap(ctx, ShoppingServiceName)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := instruments.Log()

	client, err := stylingclient.NewClient(cfg.StylingURL, transport.NewHTTPClient(cfg.ClientTimeout))
	if err != nil {
		return fmt.Errorf("configure styling client: %w", err)
	}
	service := shoppingobs.New(
		shoppingapp.NewService(shoppingstyling.NewGateway(client),
			shoppingapp.WithFaultPolicy(faultPolicy(cfg, logger))),
		shoppingobs.WithLogger(logger),
		shoppingobs.WithTracer(instruments.Tracer("internal.shopping.application")),
		shoppingobs.WithMeter(instruments.Meter("internal.shopping.application")),
	)
	router := fulfillmentserver.NewShoppingRouter(ShoppingServiceName, fulfillmentserver.NewShoppingAPI(service))
	return serve(ctx, "Shopping stage", cfg.Addr(), router, logger)
}
