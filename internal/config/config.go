package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration
type Config struct {
	OTELEndpoint    string `envconfig:"OTEL_ENDPOINT"`
	OTELServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"installment-pricing"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`

	Currency string `envconfig:"CURRENCY" default:"USD"`
	Locale   string `envconfig:"LOCALE" default:"en-US"`

	// FeatureFlagsFile is a YAML file with flag values; empty means no flags are set.
	FeatureFlagsFile string `envconfig:"FEATURE_FLAGS_FILE"`
	// DueTodayOverride set to "on" forces the due-today hero presentation.
	DueTodayOverride string `envconfig:"CKO_DUE_TODAY_TEST"`

	MaxInstallments int     `envconfig:"MAX_INSTALLMENTS" default:"48"`
	MaxAmount       float64 `envconfig:"MAX_AMOUNT" default:"10000000"`
}

// LoadConfig loads configuration from the environment
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// AmountCap returns the largest monetary amount accepted from callers
func (c *Config) AmountCap() float64 {
	return c.MaxAmount
}
