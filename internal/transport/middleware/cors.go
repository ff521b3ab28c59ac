package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/config"
)

// corsPolicy is the parsed form of config.CORSConfig.
type corsPolicy struct {
	anyOrigin   bool
	origins     map[string]struct{}
	methods     string
	headers     string
	maxAge      string
	credentials bool
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		origins:     make(map[string]struct{}),
		methods:     cfg.AllowedMethods,
		headers:     cfg.AllowedHeaders,
		maxAge:      strconv.Itoa(cfg.MaxAge),
		credentials: cfg.AllowCredentials,
	}
	for _, o := range cfg.Origins() {
		if o == "*" {
			p.anyOrigin = true
			continue
		}
		p.origins[strings.ToLower(o)] = struct{}{}
	}
	return p
}

func (p corsPolicy) allows(origin string) bool {
	if p.anyOrigin {
		return true
	}
	_, ok := p.origins[strings.ToLower(origin)]
	return ok
}

// CORS returns middleware that handles Cross-Origin Resource Sharing for
// the browser client. Allowed origins are echoed back; a preflight from an
// origin that is not allowed is answered with 403.
func CORS(cfg config.CORSConfig) Middleware {
	p := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && p.allows(origin)

			if allowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if p.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if origin != "" && !allowed {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				h := w.Header()
				h.Set("Access-Control-Allow-Methods", p.methods)
				h.Set("Access-Control-Allow-Headers", p.headers)
				h.Set("Access-Control-Max-Age", p.maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
