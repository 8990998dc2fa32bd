package stages

import (
	"context"
	"fmt"

	fulfillmentserver "github.com/Apurer/go-gin-fulfillment/go"
	deliveryclient "github.com/Apurer/go-gin-fulfillment/internal/clients/http/delivery"
	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	stylingdelivery "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/external/delivery"
	stylingmemory "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/memory"
	stylingobs "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/observability"
	stylingapp "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/application"
)

// StylingServiceName identifies the styling process in traces and logs.
const StylingServiceName = "styling-stage"

// RunStyling boots the Styling stage HTTP API.
func RunStyling(ctx context.Context, cfg Config) error {
	instruments, cleanup, err := bootstrap(ctx, StylingServiceName)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := instruments.Log()

	client, err := deliveryclient.NewClient(cfg.DeliveryURL, transport.NewHTTPClient(cfg.ClientTimeout))
	if err != nil {
		return fmt.Errorf("configure delivery client: %w", err)
	}
	service := stylingobs.New(
		stylingapp.NewService(stylingmemory.NewCatalog(), stylingdelivery.NewGateway(client),
			stylingapp.WithFaultPolicy(faultPolicy(cfg, logger))),
		stylingobs.WithLogger(logger),
		stylingobs.WithTracer(instruments.Tracer("internal.styling.application")),
		stylingobs.WithMeter(instruments.Meter("internal.styling.application")),
	)
	router := fulfillmentserver.NewStylingRouter(StylingServiceName, fulfillmentserver.NewStylingAPI(service))
	return serve(ctx, "Styling stage", cfg.Addr(), router, logger)
}
