package stages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	platformobservability "github.com/Apurer/go-gin-fulfillment/internal/platform/observability"
	"github.com/Apurer/go-gin-fulfillment/internal/shared/faults"
)

const shutdownTimeout = 5 * time.Second

// bootstrap initialises observability for a stage and returns a cleanup to defer.
func bootstrap(ctx context.Context, serviceName string) (*platformobservability.Instruments, func(), error) {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Log().Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}
	return instruments, cleanup, nil
}

// faultPolicy logs when fault injection is switched off.
func faultPolicy(cfg Config, logger *slog.Logger) faults.Policy {
	if cfg.FaultsDisabled {
		logger.Warn("fault injection disabled via FAULTS_DISABLED")
	}
	return faults.FromEnv(cfg.FaultsDisabled)
}

// serve runs handler on addr until ctx is cancelled, then shuts the server down gracefully.
func serve(ctx context.Context, name, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info(name+" listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error(name+" server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s: %w", name, err)
	}
	logger.Info(name+" stopped")
	return nil
}
