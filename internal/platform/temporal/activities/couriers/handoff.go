package couriers

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

// HandOffBatchActivityName hands one drained batch to the courier bound to the worker.
const HandOffBatchActivityName = "couriers.activities.HandOffBatch"

// HandoffShirt is the serialisable form of a shirt inside a workflow payload.
type HandoffShirt struct {
	StyleName string
	ImageRef  string
}

// HandoffInput carries a drained batch through the workflow.
type HandoffInput struct {
	BatchID  string
	OrderNum string
	Shirts   []HandoffShirt
	QueuedAt time.Time
	TraceID  string
}

// NewHandoffInput converts a batch into the workflow payload.
func NewHandoffInput(batch domain.Batch, traceID string) HandoffInput {
	shirts := make([]HandoffShirt, 0, batch.Len())
	for _, shirt := range batch.Shirts {
		shirts = append(shirts, HandoffShirt{StyleName: shirt.StyleName, ImageRef: shirt.ImageRef})
	}
	return HandoffInput{
		BatchID:  batch.ID,
		OrderNum: batch.OrderNum,
		Shirts:   shirts,
		QueuedAt: batch.QueuedAt,
		TraceID:  traceID,
	}
}

// Batch converts the payload back into the delivery domain batch.
func (in HandoffInput) Batch() domain.Batch {
	shirts := make([]domain.Shirt, 0, len(in.Shirts))
	for _, shirt := range in.Shirts {
		shirts = append(shirts, domain.Shirt{StyleName: shirt.StyleName, ImageRef: shirt.ImageRef})
	}
	return domain.Batch{ID: in.BatchID, OrderNum: in.OrderNum, Shirts: shirts, QueuedAt: in.QueuedAt}
}

// HandoffResult reports what the courier accepted.
type HandoffResult struct {
	BatchID string
	Courier string
	Shirts  int
}

// Activities binds a courier to the Temporal worker.
type Activities struct {
	courier ports.Courier
}

// NewActivities wires the courier that performs the physical handoff.
func NewActivities(courier ports.Courier) *Activities {
	return &Activities{courier: courier}
}

// HandOffBatch delivers the batch. A retried attempt after a completed handoff is skipped.
func (a *Activities) HandOffBatch(ctx context.Context, input HandoffInput) (*HandoffResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.courier == nil {
		logger.Error("courier handoff activity not initialized", "batchId", input.BatchID)
		return nil, errors.New("courier handoff activity not initialized")
	}

	var hb handoffHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	result := &HandoffResult{BatchID: input.BatchID, Courier: a.courier.Name(), Shirts: len(input.Shirts)}
	if hb.Completed {
		logger.Info("HandOffBatch already completed in prior attempt; skipping", "batchId", input.BatchID)
		return result, nil
	}

	logger.Info("HandOffBatch activity started", "batchId", input.BatchID, "orderNum", input.OrderNum, "shirts", len(input.Shirts))
	if err := a.courier.Deliver(ctx, input.Batch()); err != nil {
		logger.Error("HandOffBatch activity failed", "batchId", input.BatchID, "error", err)
		return nil, err
	}
	activity.RecordHeartbeat(ctx, handoffHeartbeat{Completed: true})
	logger.Info("HandOffBatch activity completed", "batchId", input.BatchID)
	return result, nil
}

type handoffHeartbeat struct {
	Completed bool
}
