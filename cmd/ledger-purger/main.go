package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/go-gin-fulfillment/internal/app/stages"
	deliverypostgres "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/adapters/persistence/postgres"
	platformpostgres "github.com/Apurer/go-gin-fulfillment/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := stages.LoadConfig(stages.DefaultDeliveryPort)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.OpenLedger(ctx, cfg.PostgresDSN, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge the delivery ledger")
	}

	cutoff := time.Now().Add(-cfg.LedgerRetention())
	purged, err := deliverypostgres.NewLedger(db).PurgeBefore(ctx, cutoff)
	if err != nil {
		log.Fatalf("failed to purge delivery ledger: %v", err)
	}
	logger.Info("delivery ledger purge completed", slog.Int64("purged", purged), slog.Time("cutoff", cutoff))
}
