// Package config loads runtime configuration from command line flags and an
// optional YAML file.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Engine struct {
		Backend   string `yaml:"backend"`
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"engine"`

	Benchmark struct {
		Orders   int    `yaml:"orders"`
		Scenario string `yaml:"scenario"`
		Seed     int64  `yaml:"seed"`
	} `yaml:"benchmark"`
}

// Default configuration values
var (
	configFile = flag.String("config", "", "Path to config file (YAML)")
	backend    = flag.String("backend", "redblack", "Price index backend: redblack, avl, sortedarray")
	orders     = flag.Int("orders", 100000, "Number of orders per benchmark run")
	scenario   = flag.String("scenario", "", "Run a single workload scenario (default: all)")
	seed       = flag.Int64("seed", 42, "Seed for the workload generator")
	logLevel   = flag.String("log_level", "info", "Log level: debug, info, warn, error")
	logFormat  = flag.String("log_format", "pretty", "Log format: json, pretty")
)

// LoadConfig loads the configuration from command line flags and optionally from a config file
func LoadConfig() (*Config, error) {
	flag.Parse()

	config := &Config{}
	config.Engine.Backend = *backend
	config.Engine.LogLevel = *logLevel
	config.Engine.LogFormat = *logFormat
	config.Benchmark.Orders = *orders
	config.Benchmark.Scenario = *scenario
	config.Benchmark.Seed = *seed

	if *configFile != "" {
		yamlFile, err := os.ReadFile(*configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(yamlFile, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		log.Printf("Loaded configuration from %s", *configFile)
	}

	return config, nil
}
