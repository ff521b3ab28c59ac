package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// panicBody mirrors the GraphQL error envelope so API clients can decode it.
type panicBody struct {
	Errors []panicError `json:"errors"`
}

type panicError struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions"`
}

// Recovery returns middleware that turns a handler panic into a logged
// 500 response with a GraphQL-shaped JSON body.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestID := ctxutil.RequestIDFromCtx(r.Context())
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", requestID),
				)

				ext := map[string]string{"code": "INTERNAL"}
				if requestID != "" {
					ext["requestId"] = requestID
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(panicBody{Errors: []panicError{{
					Message:    "internal server error",
					Extensions: ext,
				}}})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
