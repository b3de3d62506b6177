package workload

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tunables for the synthetic order generator
type Config struct {
	// Price range for the uniform scenarios
	MaxPrice int
	// Spread added to ask prices in the distinct-prices scenario
	AskOffset int
	// Mean and standard deviation of the normal-distribution scenario
	NormalMean   float64
	NormalStdDev float64
	// Largest order quantity the generator emits
	MaxSize int
}

// LoadConfig loads generator configuration from environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("WORKLOAD_MAX_PRICE", 1000)
	v.SetDefault("WORKLOAD_ASK_OFFSET", 1000)
	v.SetDefault("WORKLOAD_NORMAL_MEAN", 1000.0)
	v.SetDefault("WORKLOAD_NORMAL_STDDEV", 1.0)
	v.SetDefault("WORKLOAD_MAX_SIZE", 10)

	v.AutomaticEnv()

	cfg := &Config{
		MaxPrice:     v.GetInt("WORKLOAD_MAX_PRICE"),
		AskOffset:    v.GetInt("WORKLOAD_ASK_OFFSET"),
		NormalMean:   v.GetFloat64("WORKLOAD_NORMAL_MEAN"),
		NormalStdDev: v.GetFloat64("WORKLOAD_NORMAL_STDDEV"),
		MaxSize:      v.GetInt("WORKLOAD_MAX_SIZE"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.MaxPrice <= 0 {
		return fmt.Errorf("WORKLOAD_MAX_PRICE must be positive")
	}
	if cfg.AskOffset < 0 {
		return fmt.Errorf("WORKLOAD_ASK_OFFSET must not be negative")
	}
	if cfg.NormalStdDev <= 0 {
		return fmt.Errorf("WORKLOAD_NORMAL_STDDEV must be positive")
	}
	if cfg.MaxSize <= 0 {
		return fmt.Errorf("WORKLOAD_MAX_SIZE must be positive")
	}
	return nil
}
