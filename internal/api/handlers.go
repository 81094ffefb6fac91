package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"ciinav/internal/buildinfo"
	"ciinav/internal/cii"
	"ciinav/internal/metrics"
	"ciinav/internal/model"
	"ciinav/internal/opt"
)

// OptimizeCIIHandler handles POST /v1/optimize/cii
func (s *Server) OptimizeCIIHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	var req model.OptimizeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.Optimizations.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := validateOptimizeRequest(&req); err != nil {
		metrics.Optimizations.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := cacheKey(body)
	if cached, ok := s.Cache.Get(r.Context(), key); ok {
		writeRaw(w, http.StatusOK, cached)
		return
	}

	res := s.Advisor.Optimize(req)
	if res.Message != "" {
		metrics.Optimizations.WithLabelValues("already_optimal").Inc()
	} else {
		metrics.Optimizations.WithLabelValues("optimized").Inc()
		metrics.SearchConverged.WithLabelValues(strconv.FormatBool(res.Converged)).Inc()
		if m, ok := opt.GetMetrics()[req.ShipInfo.ShipType]; ok {
			metrics.SearchGenerations.Observe(float64(m.Generations))
		}
	}

	out, err := json.Marshal(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = s.Cache.Set(r.Context(), key, out)
	writeRaw(w, http.StatusOK, out)
}

// FuelsHandler handles GET /v1/reference/fuels
func (s *Server) FuelsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fuels": cii.FuelTypes()})
}

// BaselinesHandler handles GET /v1/reference/baselines
func (s *Server) BaselinesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	type baselineOut struct {
		A float64 `json:"a"`
		C float64 `json:"c"`
	}
	out := map[string]baselineOut{}
	for k, b := range cii.Baselines() {
		out[k] = baselineOut{A: b.A, C: b.C}
	}
	writeJSON(w, http.StatusOK, map[string]any{"baselines": out})
}

// SearchMetricsHandler handles GET /v1/admin/search-metrics
func (s *Server) SearchMetricsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"searches": opt.GetMetrics()})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{
		"status":  "healthy",
		"service": "cii-optimizer",
		"version": buildinfo.Version,
	})
}

func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	// Check Redis connectivity when the shared cache is configured
	type pinger interface{ Ping(ctx context.Context) error }
	if p, ok := s.Cache.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache not ready: "+err.Error())
			return
		}
	}
	writeJSON(w, 200, map[string]string{"status": "ready"})
}

func (s *Server) DebugJSON(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"build": buildinfo.Info(),
		"time":  time.Now().UTC().Format(time.RFC3339),
		"config": map[string]any{
			"ADDR":          s.Cfg.Addr,
			"ALLOW_ORIGINS": s.Cfg.AllowOrigins,
			"RATE_RPS":      s.Cfg.RateRPS,
			"RATE_BURST":    s.Cfg.RateBurst,
			"SEED":          s.Cfg.Optimizer.Seed,
			"MAX_ITER":      s.Cfg.Optimizer.MaxIterations,
			"HAS_REDIS_URL": os.Getenv("REDIS_URL") != "",
		},
	}
	writeJSON(w, http.StatusOK, info)
}
