package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type todoCounterMock struct {
	n int
}

func (m *todoCounterMock) Len() int { return m.n }

func serve(t *testing.T, fn http.HandlerFunc, path string) (int, HealthResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	fn(rec, req)

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rec.Code, resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "test-version")

	code, resp := serve(t, h.Live, "/live")

	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady_NotYetReady(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "test-version")

	code, resp := serve(t, h.Ready, "/ready")

	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", code)
	}
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
}

func TestReady_Ready(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "test-version")
	h.SetReady(true)

	code, resp := serve(t, h.Ready, "/ready")

	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestReady_Draining(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "test-version")
	h.SetReady(true)
	h.SetReady(false)

	code, _ := serve(t, h.Ready, "/ready")

	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 while draining, got %d", code)
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{n: 3}, "v1.2.3")
	h.SetReady(true)

	code, resp := serve(t, h.Health, "/health")

	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if resp.Version != "v1.2.3" {
		t.Errorf("expected version 'v1.2.3', got %q", resp.Version)
	}
	store, ok := resp.Components["store"]
	if !ok {
		t.Fatal("expected 'store' component")
	}
	if store.Status != "ok" {
		t.Errorf("expected store status 'ok', got %q", store.Status)
	}
	if store.Todos == nil || *store.Todos != 3 {
		t.Errorf("expected 3 todos, got %v", store.Todos)
	}
	if store.Latency == "" {
		t.Error("expected non-empty latency")
	}
}

func TestHealth_EmptyStoreReportsZero(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "v1")
	h.SetReady(true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Components["store"].Todos == nil || *resp.Components["store"].Todos != 0 {
		t.Errorf("expected explicit zero todo count, got %s", rec.Body.String())
	}
}

func TestHealth_Draining(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "v1")

	code, resp := serve(t, h.Health, "/health")

	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", code)
	}
	if resp.Status != "draining" {
		t.Errorf("expected status 'draining', got %q", resp.Status)
	}
}

func TestHealth_Uptime(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&todoCounterMock{}, "v1")
	h.SetReady(true)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	h.started = start
	h.now = func() time.Time { return start.Add(90*time.Minute + 1500*time.Millisecond) }

	_, resp := serve(t, h.Health, "/health")

	if resp.Uptime != "1h30m1s" {
		t.Errorf("uptime = %q, want %q", resp.Uptime, "1h30m1s")
	}
	if !resp.Timestamp.Equal(start.Add(90*time.Minute + 1500*time.Millisecond)) {
		t.Errorf("timestamp should come from the handler clock, got %v", resp.Timestamp)
	}
}
