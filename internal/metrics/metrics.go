package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Optimizations counts pipeline runs by outcome (optimized, already_optimal, error)
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cii_optimizations_total", Help: "CII optimization runs by outcome."},
		[]string{"outcome"},
	)
	// SearchGenerations tracks generations consumed per search run
	SearchGenerations = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "cii_search_generations", Help: "Generations per CII search run.", Buckets: []float64{1, 5, 10, 25, 50, 75, 100}},
	)
	// SearchConverged counts search runs by convergence flag
	SearchConverged = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cii_search_converged_total", Help: "CII search runs by convergence."},
		[]string{"converged"},
	)
)

// RegisterDefault registers collectors to the default registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(SearchGenerations)
		Registry.MustRegister(SearchConverged)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
