// Package api implements HTTP handlers and helpers for the CII optimization service.
package api

import (
	"ciinav/internal/advisor"
	"ciinav/internal/config"
)

type Server struct {
	Advisor *advisor.Advisor
	Cache   Cache
	Cfg     config.Config
}

// NewServer creates a Server. If no Redis URL is configured, responses are
// cached in-process.
func NewServer(cfg config.Config) (*Server, error) {
	a := advisor.New()
	a.Seed = cfg.Optimizer.Seed
	if cfg.Optimizer.MaxIterations > 0 {
		a.MaxIterations = cfg.Optimizer.MaxIterations
	}
	a.PopulationSize = cfg.Optimizer.PopulationSize
	if cfg.Optimizer.Tol > 0 {
		a.Tol = cfg.Optimizer.Tol
	}
	if cfg.Optimizer.Atol > 0 {
		a.Atol = cfg.Optimizer.Atol
	}

	var c Cache
	if cfg.RedisURL != "" {
		rc, err := NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		c = rc
	} else {
		c = NewMemoryCache(cfg.CacheTTL)
	}
	return &Server{Advisor: a, Cache: c, Cfg: cfg}, nil
}
