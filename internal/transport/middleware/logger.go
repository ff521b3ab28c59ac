package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// Logger returns middleware that writes one "http.request" line per request
// with method, path, status, response size, duration and request_id.
// Successful requests to quietPaths (health probes) are logged at debug level.
func Logger(logger *slog.Logger, quietPaths ...string) Middleware {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status == http.StatusTooManyRequests:
				level = slog.LevelWarn
			case sw.status < 400:
				if _, ok := quiet[r.URL.Path]; ok {
					level = slog.LevelDebug
				}
			}
			if !logger.Enabled(r.Context(), level) {
				return
			}

			logger.LogAttrs(r.Context(), level, "http.request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
