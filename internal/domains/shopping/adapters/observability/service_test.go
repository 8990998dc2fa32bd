package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

type stubService struct {
	err error
}

func (s stubService) ListMenu(context.Context) ([]contracts.ShirtStyle, error) {
	return []contracts.ShirtStyle{{Name: "style1"}}, nil
}

func (s stubService) Order(context.Context, domain.Order) (*contracts.DeliveryStatus, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &contracts.DeliveryStatus{OrderNum: "o"}, nil
}

func TestOrder_UpstreamFailureLogsAtError(t *testing.T) {
	var buf bytes.Buffer
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	svc := New(stubService{err: apperr.Upstream(503, "Failed to order shirts!")},
		WithTracer(provider.Tracer("test")),
		WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	_, err := svc.Order(context.Background(), domain.Order{StyleName: "style1", Quantity: 1})
	require.EqualError(t, err, "HTTP 503: Failed to order shirts!")
	require.Contains(t, buf.String(), `"level":"ERROR"`)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Contains(t, spans[0].Attributes(), attribute.String("error", "HTTP 503: Failed to order shirts!"))
}

func TestOrder_InjectedFailureLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	svc := New(stubService{err: apperr.Unavailable("Failed to order shirts!")},
		WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	_, err := svc.Order(context.Background(), domain.Order{StyleName: "style1", Quantity: 1})
	require.Error(t, err)
	require.Contains(t, buf.String(), `"level":"WARN"`)
}
