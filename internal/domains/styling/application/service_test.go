package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/adapters/memory"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/faults"
)

type fakeDelivery struct {
	calls    int
	orderNum string
	batch    domain.PackedShirts
	err      error
}

func (f *fakeDelivery) Dispatch(_ context.Context, orderNum string, batch domain.PackedShirts) (*contracts.DeliveryStatus, error) {
	f.calls++
	f.orderNum = orderNum
	f.batch = batch
	if f.err != nil {
		return nil, f.err
	}
	return &contracts.DeliveryStatus{OrderNum: orderNum, TrackingNum: "track-1", Message: "shirts delivery dispatched"}, nil
}

func newTestService(delivery *fakeDelivery, policy faults.Policy) *Service {
	return NewService(memory.NewCatalog(), delivery,
		WithFaultPolicy(policy),
		WithOrderNumbers(func() string { return "order-1" }),
	)
}

func TestMake_ManufacturesAndDispatches(t *testing.T) {
	delivery := &fakeDelivery{}
	svc := newTestService(delivery, faults.Never)

	status, err := svc.Make(context.Background(), "style1", 3)
	require.NoError(t, err)
	require.Equal(t, "shirts delivery dispatched", status.Message)
	require.Equal(t, "order-1", delivery.orderNum)
	require.Equal(t, 3, delivery.batch.Len())
	for _, shirt := range delivery.batch.Shirts {
		require.Equal(t, domain.ShirtStyle{Name: "style1", ImageRef: "style1Image"}, shirt.Style)
	}
}

func TestMake_AcceptsStylesMissingFromCatalog(t *testing.T) {
	delivery := &fakeDelivery{}
	svc := newTestService(delivery, faults.Never)

	_, err := svc.Make(context.Background(), "neon", 1)
	require.NoError(t, err)
	require.Equal(t, "neonImage", delivery.batch.Shirts[0].Style.ImageRef)
}

func TestMake_InjectedFailureSkipsDownstream(t *testing.T) {
	delivery := &fakeDelivery{}
	policy := faults.NewSequence(true)
	svc := newTestService(delivery, policy)

	_, err := svc.Make(context.Background(), "style1", 2)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperr.KindUnavailable, appErr.Kind)
	require.Equal(t, MsgMakeFailed, appErr.Message)
	require.Zero(t, delivery.calls)
	require.Equal(t, []int{MakeRollDenominator}, policy.Rolls())
}

func TestMake_WrapsDeliveryFailure(t *testing.T) {
	delivery := &fakeDelivery{err: &transport.StatusError{StatusCode: http.StatusBadRequest, Detail: "No shirts to deliver"}}
	svc := newTestService(delivery, faults.Never)

	_, err := svc.Make(context.Background(), "style1", 0)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperr.KindUpstream, appErr.Kind)
	require.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Equal(t, "HTTP 400: Failed to make shirts!", appErr.Error())
}

func TestMake_TransportFailureIsFiveHundredClass(t *testing.T) {
	delivery := &fakeDelivery{err: errors.New("connection refused")}
	svc := newTestService(delivery, faults.Never)

	_, err := svc.Make(context.Background(), "style1", 1)
	require.Equal(t, http.StatusBadGateway, apperr.HTTPStatus(err))
}

func TestListStyles_NeverRollsFaults(t *testing.T) {
	svc := newTestService(&fakeDelivery{}, faults.Always)
	styles, err := svc.ListStyles(context.Background())
	require.NoError(t, err)
	require.Len(t, styles, 2)
}
