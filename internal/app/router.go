package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	todorepo "github.com/heartmarshall/todo-backend/internal/adapter/memory/todo"
	"github.com/heartmarshall/todo-backend/internal/config"
	todosvc "github.com/heartmarshall/todo-backend/internal/service/todo"
	"github.com/heartmarshall/todo-backend/internal/transport/graphql"
	"github.com/heartmarshall/todo-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
	"github.com/heartmarshall/todo-backend/internal/transport/web"
)

// Routes served by the application.
const (
	RouteGraphQL = "/graphql"
	RouteLive    = "/live"
	RouteReady   = "/ready"
	RouteHealth  = "/health"
	RouteMetrics = "/metrics"
)

// App holds the wired application graph.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	store    *todorepo.Repo
	health   *rest.HealthHandler
	limiter  *middleware.RateLimiter
	handler  http.Handler
}

// New builds the store, service, GraphQL schema and HTTP router from cfg.
// Call Close when the App is no longer used.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
		store:    todorepo.New(),
	}
	a.health = rest.NewHealthHandler(a.store, BuildVersion())

	a.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "todo_store_size",
			Help: "Number of todos currently held in memory.",
		}, func() float64 { return float64(a.store.Len()) }),
	)

	svc := todosvc.NewService(log, a.store, cfg.Todo, a.registry)

	schema, err := graphql.NewSchema(log, resolver.NewResolver(log, svc), cfg.GraphQL)
	if err != nil {
		return nil, fmt.Errorf("graphql schema: %w", err)
	}
	guard, err := graphql.NewComplexityGuard(graphql.SDL, cfg.GraphQL.ComplexityLimit)
	if err != nil {
		return nil, fmt.Errorf("graphql complexity: %w", err)
	}

	mux := http.NewServeMux()
	gqlHandler := graphql.NewHandler(log, schema, guard)
	mux.Handle("POST "+RouteGraphQL, gqlHandler)
	mux.Handle("GET "+RouteGraphQL, gqlHandler)
	mux.HandleFunc("GET "+RouteLive, a.health.Live)
	mux.HandleFunc("GET "+RouteReady, a.health.Ready)
	mux.HandleFunc("GET "+RouteHealth, a.health.Health)
	if !cfg.Metrics.Disabled {
		mux.Handle("GET "+RouteMetrics, rest.NewMetricsHandler(a.registry))
	}
	if !cfg.Web.Disabled {
		mux.Handle("GET /", web.Handler())
	}

	var (
		metricsMW   middleware.Middleware
		rateLimitMW middleware.Middleware
	)
	if !cfg.Metrics.Disabled {
		routes := []string{RouteGraphQL, RouteLive, RouteReady, RouteHealth, RouteMetrics, "/", "/app.js"}
		metricsMW = middleware.NewHTTPMetrics(a.registry, routes...).Middleware()
	}
	if !cfg.RateLimit.Disabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		rateLimitMW = a.limiter.Middleware()
	}

	a.handler = middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logger(log, RouteLive, RouteReady),
		metricsMW,
		middleware.CORS(cfg.CORS),
		rateLimitMW,
	)(mux)

	return a, nil
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Health exposes the health handler so callers can flip readiness.
func (a *App) Health() *rest.HealthHandler { return a.health }

// Registry returns the Prometheus registry used by the App.
func (a *App) Registry() *prometheus.Registry { return a.registry }

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}
