// Package config loads CLI configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the ainneve CLI
type Config struct {
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

// RedisConfig holds Redis connection parameters
type RedisConfig struct {
	Addr         string `yaml:"addr" env:"AINNEVE_REDIS_ADDR"`
	PoolSize     int    `yaml:"pool_size" env:"AINNEVE_REDIS_POOL_SIZE"`
	MinIdleConns int    `yaml:"min_idle_conns" env:"AINNEVE_REDIS_MIN_IDLE_CONNS"`
}

// LogConfig holds logging parameters
type LogConfig struct {
	Level string `yaml:"level" env:"AINNEVE_LOG_LEVEL"`
}

// Default returns the baseline configuration
func Default() *Config {
	return &Config{
		Redis: RedisConfig{Addr: "localhost:6379"},
		Log:   LogConfig{Level: "info"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty it must exist), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
