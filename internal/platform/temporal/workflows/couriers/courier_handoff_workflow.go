package couriers

import (
	"go.temporal.io/sdk/workflow"

	courieractivities "github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/activities/couriers"
	"github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/sequences"
)

const (
	// CourierHandoffWorkflowName is the public identifier for registering the workflow.
	CourierHandoffWorkflowName = "couriers.workflows.Handoff"
	// CourierHandoffTaskQueue is the queue consumed by the courier worker.
	CourierHandoffTaskQueue = "COURIER_HANDOFF"
)

// CourierHandoffWorkflow hands a drained batch to a courier with retries.
func CourierHandoffWorkflow(ctx workflow.Context, input courieractivities.HandoffInput) (*courieractivities.HandoffResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("CourierHandoffWorkflow started", withTraceID(input.TraceID, "batchId", input.BatchID, "orderNum", input.OrderNum)...)
	result, err := sequences.RunCourierHandoffSequence(ctx, input)
	if err != nil {
		logger.Error("CourierHandoffWorkflow failed", withTraceID(input.TraceID, "batchId", input.BatchID, "error", err)...)
		return nil, err
	}
	logger.Info("CourierHandoffWorkflow completed", withTraceID(input.TraceID, "batchId", input.BatchID, "shirts", result.Shirts)...)
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
