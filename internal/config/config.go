package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	GraphQL   GraphQLConfig   `yaml:"graphql"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Todo      TodoConfig      `yaml:"todo"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Web       WebConfig       `yaml:"web"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	IntrospectionEnabled bool `yaml:"introspection_enabled" env:"GRAPHQL_INTROSPECTION_ENABLED" env-default:"false"`
	ComplexityLimit      int  `yaml:"complexity_limit"      env:"GRAPHQL_COMPLEXITY_LIMIT"      env-default:"300"`
	MaxDepth             int  `yaml:"max_depth"             env:"GRAPHQL_MAX_DEPTH"             env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request throttling settings.
// Limiting is on unless Disabled is set.
type RateLimitConfig struct {
	Disabled          bool          `yaml:"disabled"            env:"RATE_LIMIT_DISABLED"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"600"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// TodoConfig holds todo service settings.
type TodoConfig struct {
	MaxTitleLength int `yaml:"max_title_length" env:"TODO_MAX_TITLE_LENGTH" env-default:"200"`
}

// MetricsConfig holds Prometheus exposition settings.
// Metrics are served unless Disabled is set.
type MetricsConfig struct {
	Disabled bool `yaml:"disabled" env:"METRICS_DISABLED"`
}

// WebConfig controls the bundled browser client.
// The client is served unless Disabled is set.
type WebConfig struct {
	Disabled bool `yaml:"disabled" env:"WEB_DISABLED"`
}

// Origins returns the trimmed, non-empty entries of AllowedOrigins.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Addr returns the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
