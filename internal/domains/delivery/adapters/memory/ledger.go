package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger is an in-memory delivery ledger used when no database is configured.
type Ledger struct {
	mu      sync.RWMutex
	records []domain.Record
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Record(_ context.Context, record domain.Record) error {
	clone := record
	clone.Styles = append([]string(nil), record.Styles...)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, clone)
	return nil
}

// List returns up to limit records, newest first.
func (l *Ledger) List(_ context.Context, limit int) ([]domain.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.records)
	if limit > 0 && limit < n {
		n = limit
	}
	list := make([]domain.Record, 0, n)
	for i := len(l.records) - 1; i >= 0 && len(list) < n; i-- {
		clone := l.records[i]
		clone.Styles = append([]string(nil), clone.Styles...)
		list = append(list, clone)
	}
	return list, nil
}

func (l *Ledger) PurgeBefore(_ context.Context, cutoff time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.records[:0]
	var purged int64
	for _, record := range l.records {
		if record.DeliveredAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, record)
	}
	l.records = kept
	return purged, nil
}
