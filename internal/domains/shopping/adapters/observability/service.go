package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/ports"
	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

const tracerName = "github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/adapters/observability/service"

// Service decorates the shopping service with tracing, logging, and metrics.
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

func (s *Service) ListMenu(ctx context.Context) ([]contracts.ShirtStyle, error) {
	ctx, span := s.tracer.Start(ctx, "ShoppingService.ListMenu")
	defer span.End()

	styles, err := s.inner.ListMenu(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to fetch menu")
	}
	span.SetAttributes(attribute.Int("shopping.menu.count", len(styles)))
	return styles, nil
}

func (s *Service) Order(ctx context.Context, order domain.Order) (*contracts.DeliveryStatus, error) {
	ctx, span := s.tracer.Start(ctx, "ShoppingService.Order",
		trace.WithAttributes(attribute.String("shirt.style", order.StyleName), attribute.Int("shirt.quantity", order.Quantity)))
	defer span.End()

	status, err := s.inner.Order(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("style", order.StyleName))
	}
	s.metrics.recordOrder(ctx, order.StyleName)
	span.SetAttributes(attribute.String("delivery.order_num", status.OrderNum))
	if s.logger != nil {
		s.logger.InfoContext(ctx, "order placed",
			slog.String("style", order.StyleName),
			slog.Int("quantity", order.Quantity),
			slog.String("orderNum", status.OrderNum))
	}
	return status, nil
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
	orders   metric.Int64Counter
	failures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	orders, _ := m.Int64Counter("shopping.service.orders", metric.WithDescription("Number of orders accepted by style"))
	failures, _ := m.Int64Counter("shopping.service.failures", metric.WithDescription("Number of failed shopping requests by kind"))
	return serviceMetrics{orders: orders, failures: failures}
}

func (m serviceMetrics) recordOrder(ctx context.Context, style string) {
	if m.orders != nil {
		m.orders.Add(ctx, 1, metric.WithAttributes(attribute.String("shirt.style", style)))
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, kind string) {
	if m.failures != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("failure.kind", kind)))
	}
}

var _ ports.Service = (*Service)(nil)
