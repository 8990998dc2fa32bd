package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/styling/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/faults"
)

// Service manufactures shirts and forwards them to Delivery.
type Service struct {
	catalog     ports.Catalog
	delivery    ports.DeliveryGateway
	faults      faults.Policy
	newOrderNum func() string
}

type Option func(*Service)

// WithFaultPolicy overrides the random fault policy.
func WithFaultPolicy(policy faults.Policy) Option {
	return func(s *Service) {
		if policy != nil {
			s.faults = policy
		}
	}
}

// WithOrderNumbers overrides the order number generator.
func WithOrderNumbers(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.newOrderNum = next
		}
	}
}

func NewService(catalog ports.Catalog, delivery ports.DeliveryGateway, opts ...Option) *Service {
	s := &Service{
		catalog:     catalog,
		delivery:    delivery,
		faults:      faults.NewRandom(),
		newOrderNum: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) ListStyles(ctx context.Context) ([]domain.ShirtStyle, error) {
	return s.catalog.ListStyles(ctx)
}

// Make rolls for a simulated outage, manufactures the batch under a fresh order number
// and returns Delivery's acknowledgement.
func (s *Service) Make(ctx context.Context, styleID string, quantity int) (*contracts.DeliveryStatus, error) {
	if s.faults.ShouldFail(MakeRollDenominator) {
		return nil, apperr.Unavailable(MsgMakeFailed)
	}
	batch, err := domain.Manufacture(styleID, quantity)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	if s.delivery == nil {
		return nil, errors.New("delivery gateway not configured")
	}
	status, err := s.delivery.Dispatch(ctx, s.newOrderNum(), batch)
	if err != nil {
		return nil, apperr.Upstream(transport.StatusCode(err), MsgMakeFailed)
	}
	return status, nil
}

var _ ports.Service = (*Service)(nil)
