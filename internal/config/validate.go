package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be >= 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if c.GraphQL.ComplexityLimit <= 0 {
		return fmt.Errorf("graphql.complexity_limit must be > 0 (got %d)", c.GraphQL.ComplexityLimit)
	}
	if c.GraphQL.MaxDepth <= 0 {
		return fmt.Errorf("graphql.max_depth must be > 0 (got %d)", c.GraphQL.MaxDepth)
	}

	if c.Todo.MaxTitleLength <= 0 {
		return fmt.Errorf("todo.max_title_length must be > 0 (got %d)", c.Todo.MaxTitleLength)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.Disabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
