package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/contracts"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/faults"
)

// Service accepts manufactured batches into the dispatch queue and answers returns.
type Service struct {
	queue  ports.DispatchQueue
	ledger ports.Ledger
	faults faults.Policy
	newID  func() string
	now    func() time.Time
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

// WithLedger exposes delivered batches through Deliveries.
func WithLedger(ledger ports.Ledger) Option {
	return func(s *Service) {
		s.ledger = ledger
	}
}

// WithIDs overrides the generator used for tracking numbers and batch ids.
func WithIDs(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.newID = next
		}
	}
}

// WithClock overrides the enqueue timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(queue ports.DispatchQueue, opts ...Option) *Service {
	s := &Service{
		queue:  queue,
		faults: faults.NewRandom(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Dispatch enqueues the batch for the next drain. The three fault rolls are taken in order
// and stop at the first one that fires; the empty checks apply regardless of the rolls.
func (s *Service) Dispatch(_ context.Context, orderNum string, shirts []domain.Shirt) (*contracts.DeliveryStatus, error) {
	if s.faults.ShouldFail(DispatchRollDenominator) {
		return nil, apperr.Unavailable(MsgDispatchFailed)
	}
	if s.faults.ShouldFail(OrderNumRollDenominator) || orderNum == "" {
		return nil, apperr.BadRequest(MsgInvalidOrderNum)
	}
	if s.faults.ShouldFail(ShirtsRollDenominator) || len(shirts) == 0 {
		return nil, apperr.BadRequest(MsgNoShirts)
	}
	batch, err := domain.NewBatch(s.newID(), orderNum, shirts, s.now())
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	s.queue.Enqueue(batch)
	return &contracts.DeliveryStatus{
		OrderNum:    orderNum,
		TrackingNum: s.newID(),
		Message:     MsgDispatched,
	}, nil
}

// Return acknowledges a return request. It does not touch the queue.
func (s *Service) Return(_ context.Context, orderNum string) (*contracts.ReturnReceipt, error) {
	if orderNum == "" {
		return nil, apperr.BadRequest(MsgInvalidOrderNum)
	}
	return &contracts.ReturnReceipt{
		OrderNum: orderNum,
		Message:  fmt.Sprintf(returnedMessageTmpl, orderNum),
	}, nil
}

// Deliveries lists the most recent ledger entries.
func (s *Service) Deliveries(ctx context.Context, limit int) ([]domain.Record, error) {
	if s.ledger == nil {
		return []domain.Record{}, nil
	}
	if limit <= 0 {
		limit = DefaultLedgerLimit
	}
	records, err := s.ledger.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return records, nil
}

var _ ports.Service = (*Service)(nil)
