package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
)

type stubService struct {
	err error
}

func (s stubService) ListStyles(context.Context) ([]domain.ShirtStyle, error) {
	return []domain.ShirtStyle{{Name: "style1"}}, nil
}

func (s stubService) Make(_ context.Context, _ string, _ int) (*contracts.DeliveryStatus, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &contracts.DeliveryStatus{OrderNum: "o", TrackingNum: "t"}, nil
}

func TestMake_TagsSpanOnFailure(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	svc := New(stubService{err: apperr.Unavailable("Failed to make shirts!")}, WithTracer(provider.Tracer("test")))

	_, err := svc.Make(context.Background(), "style1", 2)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "StylingService.Make", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Contains(t, spans[0].Attributes(), attribute.String("error", "Failed to make shirts!"))
}

func TestMake_PassesThroughSuccess(t *testing.T) {
	svc := New(stubService{})
	status, err := svc.Make(context.Background(), "style1", 2)
	require.NoError(t, err)
	require.Equal(t, "o", status.OrderNum)
}
