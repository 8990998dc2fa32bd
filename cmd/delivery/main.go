package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Apurer/go-gin-fulfillment/internal/app/stages"
)

func main() {
	cfg, err := stages.LoadConfig(stages.DefaultDeliveryPort)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := stages.RunDelivery(ctx, cfg); err != nil {
		log.Fatalf("delivery stage exited: %v", err)
	}
}
