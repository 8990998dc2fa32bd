package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

const tracerName = "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/observability/service"

// Service decorates the delivery service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Dispatch(ctx context.Context, orderNum string, shirts []domain.Shirt) (*contracts.DeliveryStatus, error) {
	ctx, span := s.tracer.Start(ctx, "DeliveryService.Dispatch",
		trace.WithAttributes(attribute.String("delivery.order_num", orderNum), attribute.Int("shirt.quantity", len(shirts))))
	defer span.End()

	status, err := s.inner.Dispatch(ctx, orderNum, shirts)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to dispatch shirts", slog.String("orderNum", orderNum))
	}
	s.metrics.recordDispatched(ctx, len(shirts))
	span.SetAttributes(attribute.String("delivery.tracking_num", status.TrackingNum))
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "shirts queued for delivery",
			slog.String("orderNum", orderNum),
			slog.String("trackingNum", status.TrackingNum),
			slog.Int("shirts", len(shirts)))
	}
	return status, nil
}

func (s *Service) Return(ctx context.Context, orderNum string) (*contracts.ReturnReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "DeliveryService.Return",
		trace.WithAttributes(attribute.String("delivery.order_num", orderNum)))
	defer span.End()

	receipt, err := s.inner.Return(ctx, orderNum)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to return order", slog.String("orderNum", orderNum))
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, receipt.Message, slog.String("orderNum", orderNum))
	}
	return receipt, nil
}

func (s *Service) Deliveries(ctx context.Context, limit int) ([]domain.Record, error) {
	ctx, span := s.tracer.Start(ctx, "DeliveryService.Deliveries", trace.WithAttributes(attribute.Int("delivery.ledger.limit", limit)))
	defer span.End()

	records, err := s.inner.Deliveries(ctx, limit)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list deliveries")
	}
	span.SetAttributes(attribute.Int("delivery.ledger.count", len(records)))
	return records, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	platformobservability.TagSpanError(span, err.Error())
	s.metrics.recordFailure(ctx, apperr.Label(err))
	if s.logger == nil {
		return err
	}
	level := slog.LevelError
	if kind := apperr.KindOf(err); kind == apperr.KindBadRequest || kind == apperr.KindUnavailable {
		level = slog.LevelWarn
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, level, msg, attrs...)
	return err
}

type serviceMetrics struct {
	dispatched metric.Int64Counter
	failures   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	dispatched, _ := m.Int64Counter("delivery.service.shirts_queued", metric.WithDescription("Number of shirts accepted into the dispatch queue"))
	failures, _ := m.Int64Counter("delivery.service.failures", metric.WithDescription("Number of failed delivery requests by kind"))
	return serviceMetrics{dispatched: dispatched, failures: failures}
}

func (m serviceMetrics) recordDispatched(ctx context.Context, shirts int) {
	if m.dispatched != nil {
		m.dispatched.Add(ctx, int64(shirts))
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, kind string) {
	if m.failures != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("failure.kind", kind)))
	}
}

var _ ports.Service = (*Service)(nil)
