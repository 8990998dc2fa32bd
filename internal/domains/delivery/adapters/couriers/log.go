package couriers

import (
	"context"
	"io"
	"log/slog"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

var _ ports.Courier = (*LogCourier)(nil)

// LogCourierName identifies the log courier in the ledger.
const LogCourierName = "log"

// LogCourier "delivers" a batch by logging every shirt in it.
type LogCourier struct {
	logger *slog.Logger
}

func NewLogCourier(logger *slog.Logger) *LogCourier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LogCourier{logger: logger}
}

func (c *LogCourier) Name() string { return LogCourierName }

func (c *LogCourier) Deliver(ctx context.Context, batch domain.Batch) error {
	for _, shirt := range batch.Shirts {
		c.logger.LogAttrs(ctx, slog.LevelInfo, "Delivering shirt",
			slog.String("orderNum", batch.OrderNum),
			slog.String("style", shirt.StyleName),
			slog.String("image", shirt.ImageRef))
	}
	c.logger.LogAttrs(ctx, slog.LevelInfo, "shirts delivered",
		slog.String("batchId", batch.ID),
		slog.String("orderNum", batch.OrderNum),
		slog.Int("count", batch.Len()))
	return nil
}
