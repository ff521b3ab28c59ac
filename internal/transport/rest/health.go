package rest

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// todoCounter is the part of the todo store the probes touch.
type todoCounter interface {
	Len() int
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	store   todoCounter
	version string
	started time.Time
	now     func() time.Time
	ready   atomic.Bool
}

// NewHealthHandler creates a HealthHandler. It reports not ready until
// SetReady(true) is called.
func NewHealthHandler(store todoCounter, version string) *HealthHandler {
	h := &HealthHandler{store: store, version: version, now: time.Now}
	h.started = h.now()
	return h
}

// SetReady flips the readiness probe. The server clears it while draining.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Todos   *int   `json:"todos,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Ready is the readiness probe: 200 while serving, 503 before start-up
// completes and during shutdown. Reading the store size confirms the store
// lock can be taken.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: h.now(),
		})
		return
	}

	_ = h.store.Len()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Health reports the store size with the time it took to read it, plus
// version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	n := h.store.Len()
	latency := time.Since(start)
	now := h.now()

	components := map[string]CompStatus{
		"store": {Status: "ok", Latency: latency.String(), Todos: &n},
	}

	overallStatus, status := "ok", http.StatusOK
	if !h.ready.Load() {
		overallStatus, status = "draining", http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Uptime:     now.Sub(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  now,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
