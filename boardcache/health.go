package boardcache

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/goliatone/go-board-cache/cache"
)

// Health states reported for the cache layer. Degraded is informational:
// the application keeps serving from the system of record.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// defaultHealthTimeout bounds the backend probe so a hung connection cannot
// stall the health endpoint.
const defaultHealthTimeout = 2 * time.Second

// HealthStatus is the reported condition of the cache layer.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthReporter probes backend connectivity on demand.
type HealthReporter struct {
	store   cache.Store
	timeout time.Duration
}

// NewHealthReporter builds a reporter over store.
func NewHealthReporter(store cache.Store) *HealthReporter {
	return &HealthReporter{store: store, timeout: defaultHealthTimeout}
}

// CheckHealth pings the backend within the probe timeout.
func (r *HealthReporter) CheckHealth(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.store.Ping(ctx); err != nil {
		return HealthStatus{Status: StatusDegraded, Message: err.Error()}
	}
	return HealthStatus{Status: StatusHealthy}
}

// Handler serves the health status as JSON. A degraded cache still answers
// 200: the layer is optional and its condition is diagnostic, not fatal.
func (r *HealthReporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		status := r.CheckHealth(req.Context())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	})
}
