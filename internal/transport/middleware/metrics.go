package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// otherPath labels requests to paths outside the known route set.
const otherPath = "other"

// HTTPMetrics records request counts and latencies.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	routes   map[string]struct{}
}

// NewHTTPMetrics registers the HTTP collectors on reg. Only paths listed in
// routes get their own label value; everything else is reported as "other".
func NewHTTPMetrics(reg prometheus.Registerer, routes ...string) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		routes: make(map[string]struct{}, len(routes)),
	}
	for _, r := range routes {
		m.routes[r] = struct{}{}
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Middleware returns middleware that observes every request.
func (m *HTTPMetrics) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			path := m.label(r.URL.Path)
			m.requests.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
			m.duration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

func (m *HTTPMetrics) label(path string) string {
	if _, ok := m.routes[path]; ok {
		return path
	}
	return otherPath
}
