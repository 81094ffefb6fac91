package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ciinav/internal/api"
	"ciinav/internal/config"
	"ciinav/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}

	metrics.RegisterDefault()

	mux := http.NewServeMux()

	// Optimization
	mux.HandleFunc("/v1/optimize/cii", srv.OptimizeCIIHandler)

	// Reference tables
	mux.HandleFunc("/v1/reference/fuels", srv.FuelsHandler)
	mux.HandleFunc("/v1/reference/baselines", srv.BaselinesHandler)

	// Health
	mux.HandleFunc("/healthz", srv.HealthHandler)
	mux.HandleFunc("/readyz", srv.ReadyHandler)

	// Admin
	mux.HandleFunc("/v1/admin/search-metrics", srv.SearchMetricsHandler)
	mux.HandleFunc("/v1/debug", srv.DebugJSON)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	handler := api.LogMiddleware(
		api.CORSMiddleware(cfg.AllowOrigins,
			api.RateLimitMiddleware(cfg.RateRPS, cfg.RateBurst, mux)))

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("API listening on %s", cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
