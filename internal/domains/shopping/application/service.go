package application

import (
	"context"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/shopping/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/faults"
)

// Service fronts the pipeline for customers and proxies to Styling.
type Service struct {
	styling ports.StylingGateway
	faults  faults.Policy
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

func NewService(styling ports.StylingGateway, opts ...Option) *Service {
	s := &Service{styling: styling, faults: faults.NewRandom()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListMenu returns Styling's catalog. There is no local fault roll.
func (s *Service) ListMenu(ctx context.Context) ([]contracts.ShirtStyle, error) {
	styles, err := s.styling.ListStyles(ctx)
	if err != nil {
		return nil, apperr.Upstream(transport.StatusCode(err), MsgMenuFailed)
	}
	if styles == nil {
		styles = []contracts.ShirtStyle{}
	}
	return styles, nil
}

// Order rolls for a simulated outage before asking Styling to make the shirts.
func (s *Service) Order(ctx context.Context, order domain.Order) (*contracts.DeliveryStatus, error) {
	if s.faults.ShouldFail(OrderRollDenominator) {
		return nil, apperr.Unavailable(MsgOrderFailed)
	}
	if err := order.Validate(); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	status, err := s.styling.Make(ctx, order.StyleName, order.Quantity)
	if err != nil {
		return nil, apperr.Upstream(transport.StatusCode(err), MsgOrderFailed)
	}
	return status, nil
}

var _ ports.Service = (*Service)(nil)
