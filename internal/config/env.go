package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the HTTP API settings read from the environment
type ServerConfig struct {
	Addr         string        `env:"LEY73_ADDR" envDefault:":8080"`
	ConfigFile   string        `env:"LEY73_CONFIG"` // Optional YAML file whose parameters section replaces the defaults
	ReadTimeout  time.Duration `env:"LEY73_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"LEY73_WRITE_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes int           `env:"LEY73_MAX_BODY_BYTES" envDefault:"65536"`
	Debug        bool          `env:"LEY73_DEBUG" envDefault:"false"`
}

// ParseEnv parses environment variables into the target struct.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads and checks the server settings
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Addr == "" {
		return ServerConfig{}, fmt.Errorf("LEY73_ADDR cannot be empty")
	}
	if cfg.MaxBodyBytes <= 0 {
		return ServerConfig{}, fmt.Errorf("LEY73_MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}
