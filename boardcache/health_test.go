package boardcache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthReporter_Healthy(t *testing.T) {
	reporter := NewHealthReporter(newFakeStore())

	status := reporter.CheckHealth(context.Background())
	if status.Status != StatusHealthy {
		t.Errorf("status = %q, want %q", status.Status, StatusHealthy)
	}
	if status.Message != "" {
		t.Errorf("message = %q, want empty", status.Message)
	}
}

func TestHealthReporter_Degraded(t *testing.T) {
	store := newFakeStore()
	store.setUnavailable(true)
	reporter := NewHealthReporter(store)

	status := reporter.CheckHealth(context.Background())
	if status.Status != StatusDegraded {
		t.Errorf("status = %q, want %q", status.Status, StatusDegraded)
	}
	if status.Message == "" {
		t.Error("degraded status should carry the probe error")
	}
}

func TestHealthReporter_Handler(t *testing.T) {
	store := newFakeStore()
	store.setUnavailable(true)
	reporter := NewHealthReporter(store)

	rec := httptest.NewRecorder()
	reporter.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/cache", nil))

	// Degraded is diagnostic, not an outage of the application.
	if rec.Code != http.StatusOK {
		t.Errorf("status code = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if status.Status != StatusDegraded {
		t.Errorf("body status = %q, want %q", status.Status, StatusDegraded)
	}
}
