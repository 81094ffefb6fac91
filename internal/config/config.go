// Package config loads service configuration from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	yaml "gopkg.in/yaml.v3"
)

type Optimizer struct {
	Seed           int64   `yaml:"seed"`
	MaxIterations  int     `yaml:"maxIterations"`
	PopulationSize int     `yaml:"populationSize"`
	Tol            float64 `yaml:"tol"`
	Atol           float64 `yaml:"atol"`
}

type Config struct {
	Addr         string        `yaml:"addr"`
	AllowOrigins string        `yaml:"allowOrigins"`
	RateRPS      float64       `yaml:"rateRps"`
	RateBurst    int           `yaml:"rateBurst"`
	RedisURL     string        `yaml:"redisUrl"`
	CacheTTL     time.Duration `yaml:"cacheTtl"`
	Optimizer    Optimizer     `yaml:"optimizer"`
}

func Default() Config {
	return Config{
		Addr:      ":8080",
		RateRPS:   10,
		RateBurst: 20,
		CacheTTL:  5 * time.Minute,
		Optimizer: Optimizer{
			Seed:          42,
			MaxIterations: 100,
			Tol:           0.01,
			Atol:          0.01,
		},
	}
}

// Load builds the config from defaults, then the YAML file at CONFIG_PATH if
// set, then env overrides (PORT, ALLOW_ORIGINS, RATE_RPS, RATE_BURST,
// REDIS_URL).
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = v
	}
	if v := os.Getenv("RATE_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateRPS = f
		}
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateBurst = n
		}
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}

	if cfg.Optimizer.Seed == 0 {
		cfg.Optimizer.Seed = 42
	}
	return cfg, nil
}
