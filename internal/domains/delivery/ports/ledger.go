package ports

import (
	"context"
	"time"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
)

// Ledger keeps a record of delivered batches, newest first on List.
type Ledger interface {
	Record(ctx context.Context, record domain.Record) error
	List(ctx context.Context, limit int) ([]domain.Record, error)
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
