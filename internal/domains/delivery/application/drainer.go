package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

const (
	// DefaultDrainInterval matches the fixed rate the pipeline has always drained at.
	DefaultDrainInterval = 30 * time.Second
	// FinalDrainTimeout bounds the drain performed on shutdown.
	FinalDrainTimeout = 5 * time.Second
)

// DrainReport summarises one drain pass.
type DrainReport struct {
	Batches int
	Shirts  int
	Failed  int
}

// Drainer empties the dispatch queue on a fixed schedule and hands each batch to the courier.
type Drainer struct {
	queue    ports.DispatchQueue
	courier  ports.Courier
	ledger   ports.Ledger
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	metrics  drainMetrics
}

type DrainerOption func(*Drainer)

func WithInterval(interval time.Duration) DrainerOption {
	return func(d *Drainer) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

func WithDrainLedger(ledger ports.Ledger) DrainerOption {
	return func(d *Drainer) {
		d.ledger = ledger
	}
}

func WithDrainLogger(logger *slog.Logger) DrainerOption {
	return func(d *Drainer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithDrainMeter(m metric.Meter) DrainerOption {
	return func(d *Drainer) {
		d.metrics = newDrainMetrics(m)
	}
}

func WithDrainClock(now func() time.Time) DrainerOption {
	return func(d *Drainer) {
		if now != nil {
			d.now = now
		}
	}
}

func NewDrainer(queue ports.DispatchQueue, courier ports.Courier, opts ...DrainerOption) *Drainer {
	d := &Drainer{
		queue:    queue,
		courier:  courier,
		interval: DefaultDrainInterval,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Interval returns the configured drain period.
func (d *Drainer) Interval() time.Duration {
	return d.interval
}

// Run drains every interval until ctx is cancelled, then drains once more so batches
// accepted just before shutdown still reach a courier.
func (d *Drainer) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.InfoContext(ctx, "delivery drainer started", slog.Duration("interval", d.interval))
	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FinalDrainTimeout)
			report := d.Drain(finalCtx)
			cancel()
			d.logger.Info("delivery drainer stopped",
				slog.Int("batches", report.Batches),
				slog.Int("shirts", report.Shirts))
			return nil
		case <-ticker.C:
			d.Drain(ctx)
		}
	}
}

// Drain polls the queue until it is observed empty. Batches appended while draining are
// picked up by the same pass; the drain never waits for new entries.
func (d *Drainer) Drain(ctx context.Context) DrainReport {
	var report DrainReport
	depth := d.queue.Len()
	if depth > 0 {
		d.logger.InfoContext(ctx, "processing dispatch queue", slog.Int("depth", depth))
	}
	for {
		if ctx.Err() != nil {
			d.logger.WarnContext(ctx, "drain interrupted", slog.Int("remaining", d.queue.Len()))
			return report
		}
		batch, ok := d.queue.Poll()
		if !ok {
			return report
		}
		if err := d.deliver(ctx, batch); err != nil {
			report.Failed++
			continue
		}
		report.Batches++
		report.Shirts += batch.Len()
	}
}

func (d *Drainer) deliver(ctx context.Context, batch domain.Batch) error {
	if d.courier == nil {
		return errors.New("courier not configured")
	}
	if err := d.courier.Deliver(ctx, batch); err != nil {
		d.metrics.recordFailure(ctx, d.courier.Name())
		d.logger.ErrorContext(ctx, "courier handoff failed",
			slog.String("batchId", batch.ID),
			slog.String("orderNum", batch.OrderNum),
			slog.Int("shirts", batch.Len()),
			slog.String("error", err.Error()))
		return err
	}
	d.metrics.recordDelivered(ctx, d.courier.Name(), batch.Len())
	if d.ledger == nil {
		return nil
	}
	record := domain.NewRecord(batch, d.courier.Name(), d.now())
	if err := d.ledger.Record(ctx, record); err != nil {
		// The courier already has the batch, so a ledger miss is not a delivery failure.
		d.logger.WarnContext(ctx, "failed to record delivery",
			slog.String("batchId", batch.ID),
			slog.String("error", err.Error()))
	}
	return nil
}

type drainMetrics struct {
	delivered metric.Int64Counter
	failures  metric.Int64Counter
}

func newDrainMetrics(m metric.Meter) drainMetrics {
	if m == nil {
		return drainMetrics{}
	}
	delivered, _ := m.Int64Counter("delivery.drain.shirts_delivered", metric.WithDescription("Number of shirts handed to couriers"))
	failures, _ := m.Int64Counter("delivery.drain.courier_failures", metric.WithDescription("Number of batches a courier rejected"))
	return drainMetrics{delivered: delivered, failures: failures}
}

func (m drainMetrics) recordDelivered(ctx context.Context, courier string, shirts int) {
	if m.delivered != nil {
		m.delivered.Add(ctx, int64(shirts), metric.WithAttributes(attribute.String("courier", courier)))
	}
}

func (m drainMetrics) recordFailure(ctx context.Context, courier string) {
	if m.failures != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("courier", courier)))
	}
}
