package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is taken from CONFIG_PATH (fallback DefaultPath).
// A missing file is an error only when CONFIG_PATH was set explicitly;
// otherwise configuration comes from ENV + defaults.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return loadEnv()
	}
	return cfg, err
}

// LoadFile reads the YAML file at path, applies ENV overrides and defaults,
// and validates the result.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
