package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	courieractivities "github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/activities/couriers"
)

// RunCourierHandoffSequence executes the handoff activity for one batch.
func RunCourierHandoffSequence(ctx workflow.Context, input courieractivities.HandoffInput) (*courieractivities.HandoffResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("courier handoff sequence started", "batchId", input.BatchID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}

	var result courieractivities.HandoffResult
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), courieractivities.HandOffBatchActivityName, input).Get(ctx, &result)
	if err != nil {
		logger.Error("courier handoff sequence failed", "batchId", input.BatchID, "error", err)
		return nil, err
	}
	logger.Info("courier handoff sequence completed", "batchId", input.BatchID, "shirts", result.Shirts)
	return &result, nil
}
