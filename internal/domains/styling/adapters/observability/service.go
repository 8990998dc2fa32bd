package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/ports"
	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

const tracerName = "github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/observability/service"

// Service decorates the styling service with tracing, logging, and metrics.
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

// New wraps the core styling service.
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

func (s *Service) ListStyles(ctx context.Context) ([]domain.ShirtStyle, error) {
	ctx, span := s.tracer.Start(ctx, "StylingService.ListStyles")
	defer span.End()

	styles, err := s.inner.ListStyles(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list styles")
	}
	span.SetAttributes(attribute.Int("styling.styles.count", len(styles)))
	return styles, nil
}

func (s *Service) Make(ctx context.Context, styleID string, quantity int) (*contracts.DeliveryStatus, error) {
	ctx, span := s.tracer.Start(ctx, "StylingService.Make",
		trace.WithAttributes(attribute.String("shirt.style", styleID), attribute.Int("shirt.quantity", quantity)))
	defer span.End()

	s.logInfo(ctx, "making shirts", slog.String("style", styleID), slog.Int("quantity", quantity))
	status, err := s.inner.Make(ctx, styleID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to make shirts", slog.String("style", styleID))
	}
	s.metrics.recordMade(ctx, styleID, quantity)
	span.SetAttributes(attribute.String("delivery.order_num", status.OrderNum))
	s.logInfo(ctx, "shirts made and dispatched",
		slog.String("style", styleID),
		slog.Int("quantity", quantity),
		slog.String("orderNum", status.OrderNum),
		slog.String("trackingNum", status.TrackingNum))
	return status, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// handleError logs the failure where it surfaces and tags the span with error=<message>.
// Client-side and simulated failures log at warn, everything else at error.
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
	shirtsMade metric.Int64Counter
	failures   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	shirtsMade, _ := m.Int64Counter("styling.service.shirts_made", metric.WithDescription("Number of shirts manufactured and dispatched"))
	failures, _ := m.Int64Counter("styling.service.failures", metric.WithDescription("Number of failed styling requests by kind"))
	return serviceMetrics{shirtsMade: shirtsMade, failures: failures}
}

func (m serviceMetrics) recordMade(ctx context.Context, style string, quantity int) {
	if m.shirtsMade != nil {
		m.shirtsMade.Add(ctx, int64(quantity), metric.WithAttributes(attribute.String("shirt.style", style)))
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, kind string) {
	if m.failures != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("failure.kind", kind)))
	}
}

var _ ports.Service = (*Service)(nil)
