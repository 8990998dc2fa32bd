package domain

import (
	"errors"
	"time"
)

var (
	ErrEmptyOrderNum = errors.New("order number is required")
	ErrEmptyBatch    = errors.New("batch has no shirts")
)

// Shirt is a manufactured shirt as seen by Delivery.
type Shirt struct {
	StyleName string
	ImageRef  string
}

// Batch is one queued manufacturing batch. It is never mutated once enqueued.
type Batch struct {
	ID       string
	OrderNum string
	Shirts   []Shirt
	QueuedAt time.Time
}

// NewBatch validates the inputs and copies shirts so later caller mutation cannot reach the queue.
func NewBatch(id, orderNum string, shirts []Shirt, queuedAt time.Time) (Batch, error) {
	if orderNum == "" {
		return Batch{}, ErrEmptyOrderNum
	}
	if len(shirts) == 0 {
		return Batch{}, ErrEmptyBatch
	}
	return Batch{
		ID:       id,
		OrderNum: orderNum,
		Shirts:   append([]Shirt(nil), shirts...),
		QueuedAt: queuedAt,
	}, nil
}

// Len returns the number of shirts in the batch.
func (b Batch) Len() int {
	return len(b.Shirts)
}

// StyleNames lists the distinct style names in first-seen order.
func (b Batch) StyleNames() []string {
	seen := make(map[string]struct{}, len(b.Shirts))
	names := make([]string, 0, len(b.Shirts))
	for _, shirt := range b.Shirts {
		if _, ok := seen[shirt.StyleName]; ok {
			continue
		}
		seen[shirt.StyleName] = struct{}{}
		names = append(names, shirt.StyleName)
	}
	return names
}

// Record is the ledger entry written after a batch is handed to a courier.
type Record struct {
	BatchID     string
	OrderNum    string
	ShirtCount  int
	Styles      []string
	Courier     string
	DeliveredAt time.Time
}

// NewRecord summarises a delivered batch.
func NewRecord(batch Batch, courier string, deliveredAt time.Time) Record {
	return Record{
		BatchID:     batch.ID,
		OrderNum:    batch.OrderNum,
		ShirtCount:  batch.Len(),
		Styles:      batch.StyleNames(),
		Courier:     courier,
		DeliveredAt: deliveredAt,
	}
}
