package stages

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-fulfillment/internal/clients/http/transport"
	deliveryapp "github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/application"
)

const (
	DefaultDeliveryPort = "8080"
	DefaultStylingPort  = "8082"
	DefaultShoppingPort = "8081"

	DefaultDeliveryURL = "http://localhost:8080"
	DefaultStylingURL  = "http://localhost:8082"

	DefaultLedgerRetentionHours = 24 * 7
)

// Config carries environment-driven settings shared by the stage processes.
// Each process reads only the fields it needs.
type Config struct {
	Port                 string
	StylingURL           string
	DeliveryURL          string
	ClientTimeout        time.Duration
	DrainInterval        time.Duration
	FaultsDisabled       bool
	PostgresDSN          string
	TemporalAddress      string
	TemporalNamespace    string
	TemporalDisabled     bool
	LedgerRetentionHours int
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
// defaultPort is used when PORT is unset.
func LoadConfig(defaultPort string) (Config, error) {
	cfg := Config{
		Port:                 envDefault("PORT", defaultPort),
		StylingURL:           envDefault("STYLING_URL", DefaultStylingURL),
		DeliveryURL:          envDefault("DELIVERY_URL", DefaultDeliveryURL),
		ClientTimeout:        transport.DefaultTimeout,
		DrainInterval:        deliveryapp.DefaultDrainInterval,
		FaultsDisabled:       isTruthy(os.Getenv("FAULTS_DISABLED")),
		PostgresDSN:          strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:      envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace:    envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:     isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		LedgerRetentionHours: DefaultLedgerRetentionHours,
	}
	var err error
	if cfg.ClientTimeout, err = envDuration("STAGE_CLIENT_TIMEOUT", cfg.ClientTimeout); err != nil {
		return Config{}, err
	}
	if cfg.DrainInterval, err = envDuration("DELIVERY_DRAIN_INTERVAL", cfg.DrainInterval); err != nil {
		return Config{}, err
	}
	if raw := strings.TrimSpace(os.Getenv("LEDGER_RETENTION_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("LEDGER_RETENTION_HOURS must be a positive integer")
		}
		cfg.LedgerRetentionHours = hours
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// LedgerRetention returns the retention window as a duration.
func (c Config) LedgerRetention() time.Duration {
	return time.Duration(c.LedgerRetentionHours) * time.Hour
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration such as 30s", key)
	}
	return d, nil
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
