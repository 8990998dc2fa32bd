package observability

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

// RegisterQueueDepth publishes the dispatch queue length as an observable gauge.
func RegisterQueueDepth(m metric.Meter, queue ports.DispatchQueue) error {
	if m == nil || queue == nil {
		return nil
	}
	_, err := m.Int64ObservableGauge("delivery.queue.depth",
		metric.WithDescription("Number of batches waiting in the dispatch queue"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(queue.Len()))
			return nil
		}))
	return err
}
