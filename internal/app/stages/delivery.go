package stages

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	fulfillmentserver "github.com/Apurer/go-gin-fulfillment/go"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/couriers"
	deliverymemory "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/memory"
	deliveryobs "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/observability"
	deliverypostgres "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/persistence/postgres"
	deliveryapp "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/application"
	deliveryports "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-fulfillment/internal/platform/postgres"
)

// DeliveryServiceName identifies the delivery process in traces and logs.
const DeliveryServiceName = "delivery-stage"

// RunDelivery boots the Delivery stage: HTTP API plus the periodic drain worker.
// Either one failing stops the other; on shutdown the drainer empties the queue once more.
func RunDelivery(ctx context.Context, cfg Config) error {
	instruments, cleanup, err := bootstrap(ctx, DeliveryServiceName)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := instruments.Log()

	ledger, closeLedger := buildLedger(ctx, cfg, logger)
	defer closeLedger()
	courier, closeCourier := buildCourier(cfg, instruments)
	defer closeCourier()

	queue := deliverymemory.NewDispatchQueue()
	meter := instruments.Meter("internal.delivery.application")
	if err := deliveryobs.RegisterQueueDepth(meter, queue); err != nil {
		logger.Warn("failed to register queue depth gauge", slog.String("error", err.Error()))
	}
	service := deliveryobs.New(
		deliveryapp.NewService(queue,
			deliveryapp.WithFaultPolicy(faultPolicy(cfg, logger)),
			deliveryapp.WithLedger(ledger)),
		deliveryobs.WithLogger(logger),
		deliveryobs.WithTracer(instruments.Tracer("internal.delivery.application")),
		deliveryobs.WithMeter(meter),
	)
	drainer := deliveryapp.NewDrainer(queue, courier,
		deliveryapp.WithInterval(cfg.DrainInterval),
		deliveryapp.WithDrainLedger(ledger),
		deliveryapp.WithDrainLogger(logger),
		deliveryapp.WithDrainMeter(meter),
	)
	router := fulfillmentserver.NewDeliveryRouter(DeliveryServiceName, fulfillmentserver.NewDeliveryAPI(service))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serve(gctx, "Delivery stage", cfg.Addr(), router, logger)
	})
	g.Go(func() error {
		return drainer.Run(gctx)
	})
	return g.Wait()
}

func buildLedger(ctx context.Context, cfg Config, logger *slog.Logger) (deliveryports.Ledger, func()) {
	db, closeDB := platformpostgres.OpenLedger(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return deliverymemory.NewLedger(), closeDB
	}
	return deliverypostgres.NewLedger(db), closeDB
}

func buildCourier(cfg Config, instruments *platformobservability.Instruments) (deliveryports.Courier, func()) {
	logger := instruments.Log()
	temporalClient, err := ConnectTemporal(cfg, instruments, "temporal-client")
	if err != nil {
		logger.Warn("Temporal courier unavailable, delivering through the log courier", slog.String("error", err.Error()))
		return couriers.NewLogCourier(logger), func() {}
	}
	logger.Info("Temporal courier enabled", slog.String("namespace", cfg.TemporalNamespace))
	return couriers.NewTemporalCourier(temporalClient), temporalClient.Close
}
