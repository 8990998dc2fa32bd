package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-fulfillment/internal/app/stages"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/couriers"
	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	courieractivities "github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/activities/couriers"
	courierworkflows "github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/workflows/couriers"
)

func main() {
	ctx := context.Background()
	const serviceName = "courier-worker"
	cfg, err := stages.LoadConfig(stages.DefaultDeliveryPort)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			instruments.Log().Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Log()

	temporalClient, err := stages.ConnectTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	handoff := courieractivities.NewActivities(couriers.NewLogCourier(logger))
	w := worker.New(temporalClient, courierworkflows.CourierHandoffTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(courierworkflows.CourierHandoffWorkflow, workflow.RegisterOptions{Name: courierworkflows.CourierHandoffWorkflowName})
	w.RegisterActivityWithOptions(handoff.HandOffBatch, activity.RegisterOptions{Name: courieractivities.HandOffBatchActivityName})

	logger.Info("worker listening", slog.String("taskQueue", courierworkflows.CourierHandoffTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
