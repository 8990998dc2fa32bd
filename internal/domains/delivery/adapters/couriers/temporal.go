package couriers

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	courieractivities "github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/activities/couriers"
	courierworkflows "github.com/Apurer/go-gin-fulfillment/internal/platform/temporal/workflows/couriers"
)

var _ ports.Courier = (*TemporalCourier)(nil)

// TemporalCourierName identifies the Temporal courier in the ledger.
const TemporalCourierName = "temporal"

// TemporalCourier starts a handoff workflow per batch and returns once it is accepted.
// The courier worker performs the handoff asynchronously.
type TemporalCourier struct {
	client    client.Client
	taskQueue string
}

// NewTemporalCourier wires a Temporal client into the courier.
func NewTemporalCourier(c client.Client) *TemporalCourier {
	return &TemporalCourier{client: c, taskQueue: courierworkflows.CourierHandoffTaskQueue}
}

func (c *TemporalCourier) Name() string { return TemporalCourierName }

func (c *TemporalCourier) Deliver(ctx context.Context, batch domain.Batch) error {
	if c == nil || c.client == nil {
		return errors.New("temporal courier not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        handoffWorkflowID(batch),
		TaskQueue: c.taskQueue,
	}
	input := courieractivities.NewHandoffInput(batch, platformobservability.TraceID(ctx))
	if _, err := c.client.ExecuteWorkflow(ctx, options, courierworkflows.CourierHandoffWorkflow, input); err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return fmt.Errorf("start courier handoff: %w", err)
	}
	return nil
}

func handoffWorkflowID(batch domain.Batch) string {
	return fmt.Sprintf("courier-handoff-%s", batch.ID)
}
