package opt

import "sync"

// Last-run search metrics per ship type, for the admin endpoint.

var (
	mu    sync.Mutex
	store = map[string]Metrics{}
)

func RecordMetrics(shipType string, m Metrics) {
	mu.Lock()
	store[shipType] = m
	mu.Unlock()
}

func GetMetrics() map[string]Metrics {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Metrics, len(store))
	for k, v := range store {
		out[k] = v
	}
	return out
}
